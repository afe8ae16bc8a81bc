package storage

// Persisted keys. These literals are shared with data written by earlier releases and
// must not change.
const (
	KeyJobPreferences   = "jobTrackerPreferences"
	KeySavedJobs        = "job-notification-tracker-saved"
	KeyJobStatus        = "jobTrackerStatus"
	KeyStatusUpdates    = "jobTrackerStatusUpdates"
	KeyDigestPrefix     = "jobTrackerDigest_"
	KeyPlatformState    = "placementSuiteState"
	KeyAnalysisHistory  = "placement-readiness-history-v1"
	KeyTestChecklist    = "prp-test-checklist-v1"
	KeyJobTrackerTests  = "jobTrackerTestStatus"
	KeyLegacyResumeData = "resumeBuilderData"
	KeyLegacyTemplate   = "resumeBuilderTemplate"
	KeyLegacyTheme      = "resumeBuilderTheme"
)

// DigestKey returns the key holding the digest for a YYYY-MM-DD date.
func DigestKey(date string) string {
	return KeyDigestPrefix + date
}

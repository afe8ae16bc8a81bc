package types

// DailyDigest is the frozen top-10 shortlist for one calendar date (YYYY-MM-DD).
type DailyDigest struct {
	Date string      `json:"date"`
	Jobs []DigestJob `json:"jobs"`
}

// DigestJob is the slim projection of a listing stored in a digest.
type DigestJob struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Company    string         `json:"company"`
	Location   string         `json:"location"`
	Experience ExperienceBand `json:"experience"`
	MatchScore int            `json:"matchScore"`
	ApplyURL   string         `json:"applyUrl"`
}

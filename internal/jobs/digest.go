package jobs

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
)

// DigestSize is the number of jobs kept in a daily digest.
const DigestSize = 10

// DigestGetter returns the cached digest for a date, or nil.
type DigestGetter func(date string) *types.DailyDigest

// DigestSaver persists the digest generated for a date.
type DigestSaver func(date string, digest types.DailyDigest)

// DateString formats t as the local calendar date used for digest keys.
func DateString(t time.Time) string {
	return t.Format(time.DateOnly)
}

// CachedDigest returns the stored digest for date when it has the same date and at
// least one job, and nil otherwise.
func CachedDigest(date string, get DigestGetter) *types.DailyDigest {
	if get == nil {
		return nil
	}
	if existing := get(date); existing != nil && len(existing.Jobs) > 0 && existing.Date == date {
		return existing
	}
	return nil
}

// GenerateDigest returns the digest for date. A cached digest with the same date and
// at least one job is returned unchanged, even if preferences or the catalog changed
// since it was generated. Otherwise the catalog is ranked by score (descending), then
// postedDaysAgo (ascending), and the top ten are saved and returned. A nil profile
// yields nil and nothing is saved.
func GenerateDigest(date string, catalog []types.JobListing, prefs *types.PreferenceProfile, score ScoreFunc, get DigestGetter, save DigestSaver) *types.DailyDigest {
	if existing := CachedDigest(date, get); existing != nil {
		return existing
	}
	if prefs == nil {
		return nil
	}
	if score == nil {
		score = ComputeMatchScore
	}

	type ranked struct {
		job   types.JobListing
		score int
	}
	all := make([]ranked, len(catalog))
	for i, j := range catalog {
		all[i] = ranked{job: j, score: score(j, prefs)}
	}
	slices.SortStableFunc(all, func(a, b ranked) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.job.PostedDaysAgo, b.job.PostedDaysAgo)
	})

	digest := types.DailyDigest{Date: date, Jobs: []types.DigestJob{}}
	for _, r := range all[:min(DigestSize, len(all))] {
		digest.Jobs = append(digest.Jobs, types.DigestJob{
			ID:         r.job.ID,
			Title:      r.job.Title,
			Company:    r.job.Company,
			Location:   r.job.Location,
			Experience: r.job.Experience,
			MatchScore: r.score,
			ApplyURL:   r.job.ApplyURL,
		})
	}

	if save != nil {
		save(date, digest)
	}
	return &digest
}

// StoreDigestCache binds digest get/save to s under the per-date digest keys.
func StoreDigestCache(s storage.Store) (DigestGetter, DigestSaver) {
	get := func(date string) *types.DailyDigest {
		return storage.ReadJSON[*types.DailyDigest](s, storage.DigestKey(date), nil)
	}
	save := func(date string, digest types.DailyDigest) {
		storage.WriteJSON(s, storage.DigestKey(date), digest)
	}
	return get, save
}

// FormatDigestPlainText renders a digest for email or clipboard export. An empty
// digest renders as an empty string.
func FormatDigestPlainText(d *types.DailyDigest) string {
	if d == nil || len(d.Jobs) == 0 {
		return ""
	}

	lines := []string{"Top 10 Jobs For You — 9AM Digest", d.Date, ""}
	for i, j := range d.Jobs {
		lines = append(lines,
			fmt.Sprintf("%d. %s · %s", i+1, j.Title, j.Company),
			fmt.Sprintf("   Location: %s | Experience: %s", j.Location, j.Experience),
			fmt.Sprintf("   Match: %d%%", j.MatchScore),
		)
		if j.ApplyURL != "" {
			lines = append(lines, "   Apply: "+j.ApplyURL)
		}
		lines = append(lines, "")
	}
	lines = append(lines, "This digest was generated based on your preferences.")
	return strings.Join(lines, "\n")
}

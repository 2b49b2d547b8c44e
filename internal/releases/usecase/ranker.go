package usecase

import (
	"sort"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

const (
	DefaultQuality = "1080p"

	gib           int64 = 1 << 30
	largeRelease        = 10 * gib
	hugeRelease         = 20 * gib
	capturePenalty      = -50
)

var (
	fallbackQualityScore = map[string]int{
		"1080p": 80,
		"720p":  60,
		"4K":    50,
	}
	sourceScore = map[string]int{
		"BluRay": 30,
		"WEB-DL": 25,
		"WEBRip": 20,
		"HDTV":   15,
		"DVD":    10,
		"CAM":    capturePenalty,
		"HDTS":   capturePenalty,
	}
	codecScore = map[string]int{
		"x265": 10,
		"x264": 8,
	}
)

// Score rates a release against a quality preference; higher is better.
func Score(r *models.Release, preference string) int {
	if preference == "" {
		preference = DefaultQuality
	}
	score := 0
	if r.Quality != "" && r.Quality == preference {
		score += 100
	} else {
		score += fallbackQualityScore[r.Quality]
	}
	score += sourceScore[r.Source]
	score += codecScore[r.Codec]

	switch {
	case r.Size > hugeRelease:
		score -= 30
	case r.Size > largeRelease:
		score -= 15
	}
	return score
}

// Rank returns a copy of releases ordered by descending score with Score set.
// Ties keep feed order.
func Rank(releases []*models.Release, preference string) []*models.Release {
	ranked := make([]*models.Release, len(releases))
	for i, r := range releases {
		c := *r
		c.Score = Score(&c, preference)
		ranked[i] = &c
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// SelectBest returns the highest ranked release, or nil for an empty list.
func SelectBest(releases []*models.Release, preference string) *models.Release {
	if len(releases) == 0 {
		return nil
	}
	return Rank(releases, preference)[0]
}

func SelectByID(releases []*models.Release, id string) *models.Release {
	for _, r := range releases {
		if r.ID == id {
			return r
		}
	}
	return nil
}

package usecase

import (
	"testing"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBestPrefersExactQuality(t *testing.T) {
	releases := []*models.Release{
		{ID: "a", Quality: "1080p", Source: "BluRay", Codec: "x265", Size: 5 * gib},
		{ID: "b", Quality: "720p", Source: "WEB-DL", Codec: "x264", Size: 2 * gib},
	}
	assert.Equal(t, 140, Score(releases[0], "1080p"))
	assert.Equal(t, 113, Score(releases[1], "1080p"))

	best := SelectBest(releases, "1080p")
	require.NotNil(t, best)
	assert.Equal(t, "a", best.ID)

	for i := 0; i < 10; i++ {
		assert.Equal(t, "a", SelectBest(releases, "1080p").ID)
	}
}

func TestScoreSizePenalty(t *testing.T) {
	r := &models.Release{Quality: "1080p", Source: "BluRay", Codec: "x265"}

	r.Size = 10 * gib
	assert.Equal(t, 140, Score(r, "1080p"))

	r.Size = 10*gib + 1
	assert.Equal(t, 125, Score(r, "1080p"))

	r.Size = 20 * gib
	assert.Equal(t, 125, Score(r, "1080p"))

	r.Size = 20*gib + 1
	assert.Equal(t, 110, Score(r, "1080p"))
}

func TestScoreQualityFallback(t *testing.T) {
	assert.Equal(t, 100, Score(&models.Release{Quality: "4K"}, "4K"))
	assert.Equal(t, 50, Score(&models.Release{Quality: "4K"}, "1080p"))
	assert.Equal(t, 80, Score(&models.Release{Quality: "1080p"}, "720p"))
	assert.Equal(t, 60, Score(&models.Release{Quality: "720p"}, "4K"))
	assert.Equal(t, 0, Score(&models.Release{Quality: "480p"}, "1080p"))
	assert.Equal(t, 0, Score(&models.Release{}, "1080p"))
	assert.Equal(t, 100, Score(&models.Release{Quality: "1080p"}, ""))
}

func TestCapturePenaltyDominates(t *testing.T) {
	for _, quality := range []string{"720p", "1080p", "4K"} {
		for _, pref := range []string{"720p", "1080p", "4K"} {
			best := &models.Release{Quality: quality, Source: "CAM", Codec: "x265", Size: gib}
			worst := &models.Release{Quality: quality, Source: "HDTS", Codec: "x265", Size: gib}
			for _, good := range []string{"WEB-DL", "BluRay"} {
				clean := &models.Release{Quality: quality, Source: good, Size: 20*gib + 1}
				assert.Less(t, Score(best, pref), Score(clean, pref))
				assert.Less(t, Score(worst, pref), Score(clean, pref))
			}
		}
	}
}

func TestRankIsStableOnTies(t *testing.T) {
	releases := []*models.Release{
		{ID: "1", Quality: "720p", Source: "WEBRip"},
		{ID: "2", Quality: "1080p", Source: "BluRay"},
		{ID: "3", Quality: "720p", Source: "WEBRip"},
		{ID: "4", Quality: "720p", Source: "WEBRip"},
	}
	ranked := Rank(releases, "1080p")
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids)
	assert.Equal(t, 130, ranked[0].Score)
	assert.Equal(t, 0, releases[1].Score)
}

func TestSelectBestEmpty(t *testing.T) {
	assert.Nil(t, SelectBest(nil, "1080p"))
}

func TestSelectByID(t *testing.T) {
	releases := []*models.Release{{ID: "x"}, {ID: "y"}}
	assert.Equal(t, "y", SelectByID(releases, "y").ID)
	assert.Nil(t, SelectByID(releases, "z"))
}

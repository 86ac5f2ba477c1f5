package creative

import (
	"math/rand/v2"

	"github.com/use-agent/brandscout/models"
)

const (
	baseScore = 75
	minScore  = 70
	maxScore  = 98
)

// MatchScore rates how well a creative's inputs fit together, in [70, 98].
// It adds fixed bonuses for brand, region, platform and competitor signals,
// then a jitter in [-4, 3].
func MatchScore(rnd *rand.Rand, brand *models.Brand, region *models.RegionalProfile, platform string, insights *models.CompetitorAnalysis) int {
	score := baseScore + bonus(brand, region, platform, insights)
	score += rnd.IntN(8) - 4
	return min(max(score, minScore), maxScore)
}

func bonus(brand *models.Brand, region *models.RegionalProfile, platform string, insights *models.CompetitorAnalysis) int {
	b := 0
	if brand.PrimaryColor != "" && brand.SecondaryColor != nil && *brand.SecondaryColor != "" {
		b += 5
	}
	if brand.Tone != "" {
		b += 5
	}
	if len(brand.ProductImages) > 0 {
		b += 3
	}
	if len(region.CulturalMotifs) > 2 {
		b += 4
	}
	if len(region.TrendingColors) > 1 {
		b += 3
	}
	if len(region.SlangPhrases) > 0 {
		b += 3
	}
	if _, ok := DimensionsFor(platform); ok {
		b += 2
	}
	if insights != nil {
		b += 5
		if brand.PrimaryColor != "" && len(insights.Analysis.ColorPalette) > 0 {
			b += 2
		}
	}
	return b
}

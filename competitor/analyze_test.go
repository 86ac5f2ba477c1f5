package competitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/brandscout/models"
)

func loadTable(t *testing.T) *Table {
	t.Helper()
	table, err := Load()
	require.NoError(t, err)
	return table
}

func TestBundledTableCoverage(t *testing.T) {
	table := loadTable(t)
	assert.Equal(t, []string{
		"bakery-confectionery",
		"organic-healthy-foods",
		"packaged-foods",
		"regional-traditional-foods",
		"restaurant-fast-food",
	}, table.Categories())

	for _, cat := range table.Categories() {
		for _, region := range []string{"usa", "europe", "asia"} {
			cell, err := table.Lookup(cat, region)
			require.NoError(t, err, "%s/%s", cat, region)
			assert.NotEmpty(t, cell.SampleAds, "%s/%s", cat, region)
			assert.NotEmpty(t, cell.ColorPalette, "%s/%s", cat, region)
			assert.NotEmpty(t, cell.CopyPerformance.TopPerformingHeadlines, "%s/%s", cat, region)
		}
	}
}

func TestAnalyzeUnknownKeys(t *testing.T) {
	table := loadTable(t)

	_, err := table.Analyze("spaceships", "usa", "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Available categories: bakery-confectionery, organic-healthy-foods")

	_, err = table.Analyze("packaged-foods", "mars", "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Available regions: asia, europe, usa")
}

func TestAnalyzeRestaurantUSA(t *testing.T) {
	a, err := loadTable(t).Analyze("restaurant-fast-food", "usa", "INSTAGRAM")
	require.NoError(t, err)

	require.Len(t, a.Analysis.SampleAds, 1)
	assert.Equal(t, "Instagram", a.Analysis.SampleAds[0].Platform)
	assert.Equal(t,
		"Engagement patterns for restaurant-fast-food in usa show average CTR of 4.2% and engagement rate of 7.1%",
		a.Analysis.SuccessMetrics)

	ci := a.CompetitiveIntelligence
	assert.Equal(t, 8, ci.AdFrequency.AveragePostsPerWeek)
	assert.Equal(t, []string{"12-2 PM EST", "7-9 PM EST"}, ci.AdFrequency.PeakPostingTimes)
	assert.Equal(t, "Weekly", ci.AdFrequency.ContentRefreshRate)
	assert.Equal(t, "High", ci.BudgetEstimates.CompetitionLevel)
	assert.Equal(t, 65, ci.AudienceInsights.AudienceOverlap)
	assert.Equal(t, "restaurant-fast-food for the conscious consumer", ci.BrandDifferentiation.UniquePositioning[0])

	rec := a.ActionableRecommendations
	assert.Equal(t, []string{"#FF6B35", "#F7931E", "#FFD23F"}, rec.VisualStrategy.RecommendedColors)
	assert.Equal(t, "Focus on video content (70% of strategy)", rec.VisualStrategy.ContentFormatMix)
	assert.Equal(t, "Adopt bold, craving-inducing, and urgency-driven tone", rec.CopyStrategies.ToneAdjustments[0])
	assert.Equal(t, []string{"Try It Free"}, rec.CopyStrategies.CTARecommendations)
	assert.Equal(t, `Fresh Made Daily - Try: "Fresh Made Daily"`, rec.CopyStrategies.SuggestedHeadlines[0])
	assert.Equal(t, "Position as premium alternative in restaurant-fast-food space", rec.PositioningAdvice[0])
}

func TestAnalyzePlatformFallsBackToAllAds(t *testing.T) {
	table := loadTable(t)
	cell, err := table.Lookup("restaurant-fast-food", "usa")
	require.NoError(t, err)

	a, err := table.Analyze("restaurant-fast-food", "usa", "pinterest")
	require.NoError(t, err)
	assert.Equal(t, cell.SampleAds, a.Analysis.SampleAds)
}

func TestAnalyzeRegionalConstants(t *testing.T) {
	a, err := loadTable(t).Analyze("bakery-confectionery", "europe", "")
	require.NoError(t, err)
	ci := a.CompetitiveIntelligence
	assert.Equal(t, "Medium-High", ci.BudgetEstimates.CompetitionLevel)
	assert.Equal(t, []string{"11 AM-1 PM", "6-8 PM local"}, ci.AdFrequency.PeakPostingTimes)
	assert.Equal(t, 45, ci.AudienceInsights.AudienceOverlap)
	assert.Equal(t, []string{"25-45 professionals", "Small business owners"}, ci.AudienceInsights.TargetDemographics)
}

func TestIntelligenceByCategory(t *testing.T) {
	tests := []struct {
		category string
		posts    int
		spend    string
		cpe      string
		refresh  string
	}{
		{"fashion", 12, "$30K-150K/month", "$0.20-0.45", "Weekly"},
		{"beauty", 15, "$50K-200K/month", "$0.15-0.35", "Weekly"},
		{"tech", 8, "$20K-100K/month", "$0.20-0.45", "Every 2-3 weeks"},
		{"fitness", 8, "$20K-100K/month", "$0.20-0.45", "Weekly"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			ci := intelligence(tt.category, "asia")
			assert.Equal(t, tt.posts, ci.AdFrequency.AveragePostsPerWeek)
			assert.Equal(t, tt.spend, ci.BudgetEstimates.EstimatedSpend)
			assert.Equal(t, tt.cpe, ci.BudgetEstimates.CostPerEngagement)
			assert.Equal(t, tt.refresh, ci.AdFrequency.ContentRefreshRate)
			assert.Equal(t, "Medium", ci.BudgetEstimates.CompetitionLevel)
		})
	}
}

func TestSuggestHeadline(t *testing.T) {
	assert.Equal(t,
		`Your Day The Way You Want - Try: "My Day Your Perfect Way You Want"`,
		suggestHeadline("Your Day The Way You Want"))
}

func TestContentFormatMixTie(t *testing.T) {
	got := contentFormatMix(models.ContentFormatMix{Video: 30, Static: 40, Carousel: 40, UGC: 0})
	assert.Equal(t, "Focus on static content (40% of strategy)", got)
}

func TestParseRejectsEmptyTable(t *testing.T) {
	_, err := Parse([]byte("{}"))
	assert.Error(t, err)
	_, err = Parse([]byte("- not: a map"))
	assert.Error(t, err)
}

func TestPlatformTips(t *testing.T) {
	opts := models.PlatformOptimizations{
		Instagram: []string{"ig"},
		Facebook:  []string{"fb"},
		TikTok:    []string{"tt"},
		General:   []string{"all"},
	}
	assert.Equal(t, []string{"ig", "all"}, PlatformTips(opts, models.PlatformInstagramStory))
	assert.Equal(t, []string{"tt", "all"}, PlatformTips(opts, models.PlatformTikTokReel))
	assert.Equal(t, []string{"all"}, PlatformTips(opts, models.PlatformTwitterPost))
}

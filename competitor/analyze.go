package competitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/use-agent/brandscout/models"
)

// Analyze builds the competitor report for category and region. When
// platform is set, sample ads are narrowed to that platform unless none
// match.
func (t *Table) Analyze(category, region, platform string) (*models.CompetitorAnalysis, error) {
	cell, err := t.Lookup(category, region)
	if err != nil {
		return nil, err
	}

	ads := filterAds(cell.SampleAds, platform)
	return &models.CompetitorAnalysis{
		Analysis: models.MarketAnalysis{
			SampleAds:           ads,
			ColorPalette:        cell.ColorPalette,
			CopyTone:            cell.CopyTone,
			RegionalPreferences: cell.RegionalPreferences,
			SuccessMetrics:      successMetrics(category, region, ads),
			VisualTrends:        cell.VisualTrends,
			CopyPerformance:     cell.CopyPerformance,
			SeasonalTrends:      cell.SeasonalTrends,
			PricingStrategy:     cell.PricingStrategy,
		},
		CompetitiveIntelligence:   intelligence(category, region),
		ActionableRecommendations: recommendations(category, cell),
	}, nil
}

func filterAds(ads []models.CompetitorAd, platform string) []models.CompetitorAd {
	if platform == "" {
		return ads
	}
	var out []models.CompetitorAd
	for _, ad := range ads {
		if strings.EqualFold(ad.Platform, platform) {
			out = append(out, ad)
		}
	}
	if len(out) == 0 {
		return ads
	}
	return out
}

func successMetrics(category, region string, ads []models.CompetitorAd) string {
	var ctr, er float64
	for _, ad := range ads {
		ctr += ad.CTR
		er += ad.EngagementRate
	}
	if n := float64(len(ads)); n > 0 {
		ctr /= n
		er /= n
	}
	return fmt.Sprintf("Engagement patterns for %s in %s show average CTR of %s%% and engagement rate of %s%%",
		category, region, formatNumber(ctr), formatNumber(er))
}

// formatNumber prints the shortest decimal that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intelligence(category, region string) models.CompetitiveIntelligence {
	ci := models.CompetitiveIntelligence{
		AdFrequency: models.AdFrequency{
			AveragePostsPerWeek: 8,
			PeakPostingTimes:    []string{"11 AM-1 PM", "6-8 PM local"},
			ContentRefreshRate:  "Weekly",
		},
		BudgetEstimates: models.BudgetEstimates{
			EstimatedSpend:    "$20K-100K/month",
			CompetitionLevel:  "Medium",
			CostPerEngagement: "$0.20-0.45",
		},
		AudienceInsights: models.AudienceInsights{
			TargetDemographics: []string{"25-45 professionals", "Small business owners"},
			AudienceOverlap:    45,
			UniqueAudienceGaps: []string{
				"Eco-conscious segment underserved",
				"Mid-tier price point opportunity",
				"Senior demographics untapped",
			},
		},
		BrandDifferentiation: models.BrandDifferentiation{
			UniquePositioning: []string{
				category + " for the conscious consumer",
				"Community-first approach",
				"Sustainable practices focus",
			},
			CompetitiveAdvantages: []string{
				"Authentic storytelling opportunity",
				"Underserved demographics",
				"Quality-price sweet spot",
			},
			MarketGaps: []string{
				"Personalized experiences lacking",
				"Educational content underutilized",
				"Social responsibility messaging weak",
			},
		},
	}

	switch category {
	case "fashion":
		ci.AdFrequency.AveragePostsPerWeek = 12
		ci.BudgetEstimates.EstimatedSpend = "$30K-150K/month"
		ci.AudienceInsights.TargetDemographics = []string{"16-35 fashion-forward consumers", "Trend-conscious millennials"}
	case "beauty":
		ci.AdFrequency.AveragePostsPerWeek = 15
		ci.BudgetEstimates.EstimatedSpend = "$50K-200K/month"
		ci.BudgetEstimates.CostPerEngagement = "$0.15-0.35"
		ci.AudienceInsights.TargetDemographics = []string{"16-45 beauty enthusiasts", "Self-expression focused"}
	case "fitness":
		ci.AudienceInsights.TargetDemographics = []string{"18-35 health enthusiasts", "Professionals seeking work-life balance"}
	case "tech":
		ci.AdFrequency.ContentRefreshRate = "Every 2-3 weeks"
	}

	switch region {
	case "usa":
		ci.AdFrequency.PeakPostingTimes = []string{"12-2 PM EST", "7-9 PM EST"}
		ci.BudgetEstimates.CompetitionLevel = "High"
		ci.AudienceInsights.AudienceOverlap = 65
	case "europe":
		ci.BudgetEstimates.CompetitionLevel = "Medium-High"
	}
	return ci
}

var ctaByCategory = map[string]string{
	"fitness": "Start Your Transformation",
	"fashion": "Shop The Look",
	"beauty":  "Discover Your Glow",
}

func recommendations(category string, cell models.RegionalCompetitorData) models.ActionableRecommendations {
	headlines := make([]string, 0, len(cell.CopyPerformance.TopPerformingHeadlines))
	for _, h := range cell.CopyPerformance.TopPerformingHeadlines {
		headlines = append(headlines, suggestHeadline(h))
	}

	cta, ok := ctaByCategory[category]
	if !ok {
		cta = "Try It Free"
	}

	colors := cell.ColorPalette
	if len(colors) > 3 {
		colors = colors[:3]
	}

	return models.ActionableRecommendations{
		CopyStrategies: models.CopyStrategies{
			SuggestedHeadlines: headlines,
			ToneAdjustments: []string{
				"Adopt " + toneSummary(cell.CopyTone) + " tone",
				"Incorporate local cultural references",
				"Use platform-specific language patterns",
			},
			CTARecommendations: []string{cta},
		},
		VisualStrategy: models.VisualStrategy{
			RecommendedColors: colors,
			DesignDirection:   cell.VisualTrends.DesignPatterns,
			ContentFormatMix:  contentFormatMix(cell.VisualTrends.ContentFormats),
		},
		PlatformOptimizations: models.PlatformOptimizations{
			Instagram: []string{
				"Use Stories for behind-the-scenes content",
				"Leverage Reels for trending audio",
				"Optimize for mobile-first viewing",
			},
			Facebook: []string{
				"Focus on detailed captions with clear CTAs",
				"Use carousel format for product showcases",
				"Target lookalike audiences of competitors",
			},
			TikTok: []string{
				"Participate in trending challenges",
				"Use vertical video format exclusively",
				"Post during peak evening hours",
			},
			General: []string{
				"A/B test different creative formats weekly",
				"Maintain consistent brand voice across platforms",
				"Monitor competitor posting schedules",
			},
		},
		ContentGaps: []string{
			"Educational content opportunity",
			"User-generated content underutilized",
			"Seasonal trending moments missed",
			"Cross-platform storytelling potential",
		},
		PositioningAdvice: []string{
			"Position as premium alternative in " + category + " space",
			"Emphasize unique value proposition around sustainability",
			"Leverage local market insights for authentic messaging",
			"Create content series around lifestyle transformation",
		},
	}
}

// suggestHeadline pairs a competitor headline with a first-person rewrite.
func suggestHeadline(h string) string {
	rewrite := strings.Replace(h, "Your", "My", 1)
	rewrite = strings.Replace(rewrite, "The", "Your Perfect", 1)
	return fmt.Sprintf("%s - Try: \"%s\"", h, rewrite)
}

// toneSummary is the copy tone's first sentence, lowercased.
func toneSummary(tone string) string {
	first, _, _ := strings.Cut(tone, ".")
	return strings.ToLower(first)
}

// contentFormatMix names the format with the largest share. Ties go to the
// earlier of video, static, carousel, ugc.
func contentFormatMix(mix models.ContentFormatMix) string {
	formats := []struct {
		name  string
		share int
	}{
		{"video", mix.Video},
		{"static", mix.Static},
		{"carousel", mix.Carousel},
		{"ugc", mix.UGC},
	}
	top := formats[0]
	for _, f := range formats[1:] {
		if f.share > top.share {
			top = f
		}
	}
	return fmt.Sprintf("Focus on %s content (%d%% of strategy)", top.name, top.share)
}

// PlatformTips returns the optimization tips for the family of a creative
// platform (instagram_post uses the Instagram tips) followed by the general
// tips.
func PlatformTips(opts models.PlatformOptimizations, platform string) []string {
	var tips []string
	switch PlatformFamily(platform) {
	case "instagram":
		tips = append(tips, opts.Instagram...)
	case "facebook":
		tips = append(tips, opts.Facebook...)
	case "tiktok":
		tips = append(tips, opts.TikTok...)
	}
	return append(tips, opts.General...)
}

// PlatformFamily maps a creative platform to the platform name used in the
// sample ads ("instagram_story" → "instagram").
func PlatformFamily(platform string) string {
	family, _, _ := strings.Cut(platform, "_")
	return family
}

package models

// CompetitorAd is one sample ad in the competitor fixture table.
type CompetitorAd struct {
	ImageURL       string  `json:"imageUrl" yaml:"imageUrl"`
	Engagement     string  `json:"engagement" yaml:"engagement"`
	Platform       string  `json:"platform" yaml:"platform"`
	ContentFormat  string  `json:"contentFormat" yaml:"contentFormat"`
	CTR            float64 `json:"ctr" yaml:"ctr"`
	EngagementRate float64 `json:"engagementRate" yaml:"engagementRate"`
}

// ContentFormatMix is the percentage share of each ad format.
type ContentFormatMix struct {
	Video    int `json:"video" yaml:"video"`
	Static   int `json:"static" yaml:"static"`
	Carousel int `json:"carousel" yaml:"carousel"`
	UGC      int `json:"ugc" yaml:"ugc"`
}

type VisualTrends struct {
	DesignPatterns []string         `json:"designPatterns" yaml:"designPatterns"`
	LayoutStyles   []string         `json:"layoutStyles" yaml:"layoutStyles"`
	ContentFormats ContentFormatMix `json:"contentFormats" yaml:"contentFormats"`
}

type CopyPerformance struct {
	TopPerformingHeadlines []string `json:"topPerformingHeadlines" yaml:"topPerformingHeadlines"`
	CTRPatterns            []string `json:"ctrPatterns" yaml:"ctrPatterns"`
	EngagementDrivers      []string `json:"engagementDrivers" yaml:"engagementDrivers"`
}

type SeasonalTrends struct {
	PeakSeasons           []string `json:"peakSeasons" yaml:"peakSeasons"`
	TimingRecommendations string   `json:"timingRecommendations" yaml:"timingRecommendations"`
	CulturalInsights      []string `json:"culturalInsights" yaml:"culturalInsights"`
}

type PricingStrategy struct {
	CommonOffers       []string `json:"commonOffers" yaml:"commonOffers"`
	PricePositioning   string   `json:"pricePositioning" yaml:"pricePositioning"`
	PromotionalTactics []string `json:"promotionalTactics" yaml:"promotionalTactics"`
}

// RegionalCompetitorData is one (category, region) cell of the fixture table.
type RegionalCompetitorData struct {
	SampleAds           []CompetitorAd  `yaml:"sampleAds"`
	ColorPalette        []string        `yaml:"colorPalette"`
	CopyTone            string          `yaml:"copyTone"`
	RegionalPreferences string          `yaml:"regionalPreferences"`
	VisualTrends        VisualTrends    `yaml:"visualTrends"`
	CopyPerformance     CopyPerformance `yaml:"copyPerformance"`
	SeasonalTrends      SeasonalTrends  `yaml:"seasonalTrends"`
	PricingStrategy     PricingStrategy `yaml:"pricingStrategy"`
}

// AnalyzeCompetitorsRequest is the payload for POST /api/v1/analyze-competitors.
type AnalyzeCompetitorsRequest struct {
	BrandCategory string `json:"brandCategory" binding:"required"`
	Region        string `json:"region" binding:"required"`
	Platform      string `json:"platform,omitempty"`
}

// CompetitorAnalysis is the synthesized competitor report for a category and region.
type CompetitorAnalysis struct {
	Analysis                  MarketAnalysis            `json:"analysis"`
	CompetitiveIntelligence   CompetitiveIntelligence   `json:"competitiveIntelligence"`
	ActionableRecommendations ActionableRecommendations `json:"actionableRecommendations"`
}

type MarketAnalysis struct {
	SampleAds           []CompetitorAd  `json:"sampleAds"`
	ColorPalette        []string        `json:"colorPalette"`
	CopyTone            string          `json:"copyTone"`
	RegionalPreferences string          `json:"regionalPreferences"`
	SuccessMetrics      string          `json:"successMetrics"`
	VisualTrends        VisualTrends    `json:"visualTrends"`
	CopyPerformance     CopyPerformance `json:"copyPerformance"`
	SeasonalTrends      SeasonalTrends  `json:"seasonalTrends"`
	PricingStrategy     PricingStrategy `json:"pricingStrategy"`
}

type CompetitiveIntelligence struct {
	AdFrequency          AdFrequency          `json:"adFrequency"`
	BudgetEstimates      BudgetEstimates      `json:"budgetEstimates"`
	AudienceInsights     AudienceInsights     `json:"audienceInsights"`
	BrandDifferentiation BrandDifferentiation `json:"brandDifferentiation"`
}

type AdFrequency struct {
	AveragePostsPerWeek int      `json:"averagePostsPerWeek"`
	PeakPostingTimes    []string `json:"peakPostingTimes"`
	ContentRefreshRate  string   `json:"contentRefreshRate"`
}

type BudgetEstimates struct {
	EstimatedSpend    string `json:"estimatedSpend"`
	CompetitionLevel  string `json:"competitionLevel"`
	CostPerEngagement string `json:"costPerEngagement"`
}

type AudienceInsights struct {
	TargetDemographics []string `json:"targetDemographics"`
	AudienceOverlap    int      `json:"audienceOverlap"`
	UniqueAudienceGaps []string `json:"uniqueAudienceGaps"`
}

type BrandDifferentiation struct {
	UniquePositioning     []string `json:"uniquePositioning"`
	CompetitiveAdvantages []string `json:"competitiveAdvantages"`
	MarketGaps            []string `json:"marketGaps"`
}

type ActionableRecommendations struct {
	CopyStrategies        CopyStrategies        `json:"copyStrategies"`
	VisualStrategy        VisualStrategy        `json:"visualStrategy"`
	PlatformOptimizations PlatformOptimizations `json:"platformOptimizations"`
	ContentGaps           []string              `json:"contentGaps"`
	PositioningAdvice     []string              `json:"positioningAdvice"`
}

type CopyStrategies struct {
	SuggestedHeadlines []string `json:"suggestedHeadlines"`
	ToneAdjustments    []string `json:"toneAdjustments"`
	CTARecommendations []string `json:"cta_recommendations"`
}

type VisualStrategy struct {
	RecommendedColors []string `json:"recommendedColors"`
	DesignDirection   []string `json:"designDirection"`
	ContentFormatMix  string   `json:"contentFormatMix"`
}

type PlatformOptimizations struct {
	Instagram []string `json:"instagram"`
	Facebook  []string `json:"facebook"`
	TikTok    []string `json:"tiktok"`
	General   []string `json:"general"`
}

package models

import "time"

// Brand tones, in the order the tone classifier breaks ties.
const (
	ToneLuxury        = "luxury"
	ToneProfessional  = "professional"
	ToneFriendly      = "friendly"
	TonePlayful       = "playful"
	ToneCasual        = "casual"
	ToneAuthoritative = "authoritative"
)

// Tones lists every valid tone.
var Tones = []string{ToneLuxury, ToneProfessional, ToneFriendly, TonePlayful, ToneCasual, ToneAuthoritative}

// Ad platforms a creative can target.
const (
	PlatformInstagramPost  = "instagram_post"
	PlatformInstagramStory = "instagram_story"
	PlatformFacebookPost   = "facebook_post"
	PlatformTikTokReel     = "tiktok_reel"
	PlatformTwitterPost    = "twitter_post"
)

// ManualUploadPrompt marks creatives that were uploaded rather than generated.
const ManualUploadPrompt = "MANUAL_UPLOAD"

// Brand is a registered brand identity.
type Brand struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor *string   `json:"secondaryColor"`
	Tone           string    `json:"tone"`
	WebsiteURL     *string   `json:"websiteUrl"`
	LogoURL        *string   `json:"logoUrl"`
	ProductImages  []string  `json:"productImages"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateBrandRequest is the payload for POST /api/v1/brands.
type CreateBrandRequest struct {
	Name           string   `json:"name" binding:"required"`
	PrimaryColor   string   `json:"primaryColor" binding:"required,hexcolor,len=7"`
	SecondaryColor *string  `json:"secondaryColor" binding:"omitempty,hexcolor,len=7"`
	Tone           string   `json:"tone" binding:"required,oneof=luxury professional friendly playful casual authoritative"`
	WebsiteURL     *string  `json:"websiteUrl" binding:"omitempty,url"`
	LogoURL        *string  `json:"logoUrl" binding:"omitempty,url"`
	ProductImages  []string `json:"productImages" binding:"max=3,dive,url"`
}

// RegionalProfile describes a target market used to localize creatives.
type RegionalProfile struct {
	ID             string    `json:"id" yaml:"-"`
	Name           string    `json:"name" yaml:"name"`
	RegionCode     string    `json:"regionCode" yaml:"regionCode"`
	CulturalMotifs []string  `json:"culturalMotifs" yaml:"culturalMotifs"`
	TrendingColors []string  `json:"trendingColors" yaml:"trendingColors"`
	SlangPhrases   []string  `json:"slangPhrases" yaml:"slangPhrases"`
	CreatedAt      time.Time `json:"createdAt" yaml:"-"`
}

// Creative is a generated or manually uploaded ad creative.
type Creative struct {
	ID                string    `json:"id"`
	BrandID           string    `json:"brandId"`
	RegionalProfileID string    `json:"regionalProfileId"`
	Platform          string    `json:"platform"`
	PromptUsed        string    `json:"promptUsed"`
	ImageURL          string    `json:"imageUrl"`
	CopyText          string    `json:"copyText"`
	MatchScore        *int      `json:"matchScore"`
	CreatedAt         time.Time `json:"createdAt"`
	IsManualUpload    bool      `json:"isManualUpload"`
}

// CreativeResponse is a creative together with the competitor analysis
// that informed it (null for manual uploads or when analysis failed).
type CreativeResponse struct {
	Creative
	CompetitorInsights *CompetitorAnalysis `json:"competitorInsights"`
}

// GenerateCreativeRequest is the payload for POST /api/v1/generate-creative.
type GenerateCreativeRequest struct {
	BrandID           string `json:"brandId" binding:"required"`
	RegionalProfileID string `json:"regionalProfileId" binding:"required"`
	Platform          string `json:"platform" binding:"required,oneof=instagram_post instagram_story facebook_post tiktok_reel twitter_post"`
}

// ListCreativesQuery is the query string of GET /api/v1/creatives.
type ListCreativesQuery struct {
	BrandID  string `form:"brandId"`
	Platform string `form:"platform" binding:"omitempty,oneof=instagram_post instagram_story facebook_post tiktok_reel twitter_post"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Defaults applies default values to unset fields.
func (q *ListCreativesQuery) Defaults() {
	if q.Limit == 0 {
		q.Limit = 50
	}
}

// ManualCreativeForm is the multipart form of POST /api/v1/upload-manual-creative.
// Files are read separately from the "files" field.
type ManualCreativeForm struct {
	BrandID           string `form:"brandId" binding:"required"`
	RegionalProfileID string `form:"regionalProfileId" binding:"required"`
	Platform          string `form:"platform" binding:"required,oneof=instagram_post instagram_story facebook_post tiktok_reel twitter_post"`
	CopyText          string `form:"copyText" binding:"required"`
}

// UploadImageResponse is the response for POST /api/v1/upload-image.
type UploadImageResponse struct {
	DataURL string `json:"dataUrl"`
}

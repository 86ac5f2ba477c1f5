package models

// ScrapeBrandRequest is the payload for POST /api/v1/scrape-brand-info.
type ScrapeBrandRequest struct {
	// URL is the brand website to scrape. Must be an absolute URL.
	URL string `json:"url" binding:"required,url"`

	// MaxAge allows serving a cached result younger than this many
	// milliseconds. Zero disables the cache for this request.
	MaxAge int64 `json:"maxAge,omitempty" binding:"omitempty,min=0"`

	// FetchMode selects how the main page is retrieved.
	// "http" (default): single HTTP fetch.
	// "auto": HTTP first, escalate to the headless browser if it is slow or fails.
	// "browser": render with the headless browser only.
	// The browser modes fall back to "http" when no browser is running.
	FetchMode string `json:"fetchMode,omitempty" binding:"omitempty,oneof=auto http browser"`
}

// Defaults applies default values to unset fields.
func (r *ScrapeBrandRequest) Defaults() {
	if r.FetchMode == "" {
		r.FetchMode = "http"
	}
}

// ScrapeResult is the aggregated brand profile of one website. It is built
// once per scrape and never mutated afterwards.
type ScrapeResult struct {
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Logos       LogoSet       `json:"logos"`
	Colors      ColorSet      `json:"colors"`
	Fonts       FontSet       `json:"fonts"`
	Tone        *string       `json:"tone"`
	Products    ProductInfo   `json:"products"`
	Content     ContentInfo   `json:"content"`
	Social      SocialLinks   `json:"social"`
	Contact     ContactInfo   `json:"contact"`
	SEO         SEOInfo       `json:"seo"`
	Visuals     VisualAssets  `json:"visuals"`
	Technical   TechnicalInfo `json:"technical"`
}

// LogoSet holds absolute logo URLs.
type LogoSet struct {
	Primary    *string  `json:"primary"`
	Favicon    *string  `json:"favicon"`
	Variations []string `json:"variations"`
}

// ColorSet is the frequency-ranked palette found in inline styles and CSS.
type ColorSet struct {
	Primary   string   `json:"primary"`
	Secondary *string  `json:"secondary"`
	Palette   []string `json:"palette"`
	Gradients []string `json:"gradients"`
}

type FontSet struct {
	Primary  *string  `json:"primary"`
	Headings *string  `json:"headings"`
	Body     *string  `json:"body"`
	Detected []string `json:"detected"`
}

type ProductInfo struct {
	Images       []string `json:"images"`
	Categories   []string `json:"categories"`
	Descriptions []string `json:"descriptions"`
	Pricing      []string `json:"pricing"`
}

type ContentInfo struct {
	KeyMessages       []string `json:"keyMessages"`
	ValuePropositions []string `json:"valuePropositions"`
	Taglines          []string `json:"taglines"`
	Keywords          []string `json:"keywords"`
	Headings          []string `json:"headings"`
}

// SocialLinks holds the first profile link found per platform.
type SocialLinks struct {
	Facebook  *string  `json:"facebook"`
	Twitter   *string  `json:"twitter"`
	Instagram *string  `json:"instagram"`
	LinkedIn  *string  `json:"linkedin"`
	YouTube   *string  `json:"youtube"`
	TikTok    *string  `json:"tiktok"`
	Other     []string `json:"other"`
}

type ContactInfo struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type SEOInfo struct {
	Title           *string           `json:"title"`
	MetaDescription *string           `json:"metaDescription"`
	Keywords        *string           `json:"keywords"`
	OGTags          map[string]string `json:"ogTags"`
	TwitterTags     map[string]string `json:"twitterTags"`
	StructuredData  []map[string]any  `json:"structuredData"`
}

type VisualAssets struct {
	HeroImages       []string `json:"heroImages"`
	BannerImages     []string `json:"bannerImages"`
	BackgroundImages []string `json:"backgroundImages"`
	ProductPhotos    []string `json:"productPhotos"`
	Iconography      []string `json:"iconography"`
}

type TechnicalInfo struct {
	WebsiteURL   string          `json:"websiteUrl"`
	LastScraped  string          `json:"lastScraped"`
	Technologies []string        `json:"technologies"`
	Performance  PerformanceInfo `json:"performance"`

	// FetchEngine names the engine that served the main page.
	FetchEngine string `json:"fetchEngine,omitempty"`

	// Fingerprint is the hex simhash of the page's DOM structure.
	Fingerprint string `json:"fingerprint,omitempty"`

	Stylesheets StylesheetStats `json:"stylesheets"`
}

type PerformanceInfo struct {
	// LoadTime is the wall-clock time in milliseconds from the start of
	// the scrape (fetches included) to result construction.
	LoadTime   *int64 `json:"loadTime"`
	ImageCount int    `json:"imageCount"`
	LinkCount  int    `json:"linkCount"`
}

// StylesheetStats reports the outcome of the linked stylesheet fetches.
type StylesheetStats struct {
	Requested int `json:"requested"`
	Fetched   int `json:"fetched"`
	Failed    int `json:"failed"`
}

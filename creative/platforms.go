package creative

import "github.com/use-agent/brandscout/models"

// Dimensions is the canvas of an ad placement.
type Dimensions struct {
	Width  int
	Height int
	Format string
}

var platformDimensions = map[string]Dimensions{
	models.PlatformInstagramPost:  {1080, 1080, "square"},
	models.PlatformInstagramStory: {1080, 1920, "vertical story"},
	models.PlatformFacebookPost:   {1200, 630, "horizontal post"},
	models.PlatformTikTokReel:     {1080, 1920, "vertical video thumbnail"},
	models.PlatformTwitterPost:    {1200, 675, "horizontal post"},
}

// DimensionsFor returns the canvas for platform.
func DimensionsFor(platform string) (Dimensions, bool) {
	d, ok := platformDimensions[platform]
	return d, ok
}

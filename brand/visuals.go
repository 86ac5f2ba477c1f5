package brand

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/brandscout/models"
)

// svgIconMarker stands in for inline <svg> icons, which have no URL.
const svgIconMarker = "svg-icon"

var reBackgroundImage = regexp.MustCompile(`background-image:\s*url\(['"]?([^'")]+)['"]?\)`)

// imageSources resolves the src of every img matched by selector.
func imageSources(d *Document, selector string, max int) []string {
	out := newUniqueList(max)
	d.Root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if abs, ok := d.resolve(s.AttrOr("src", "")); ok {
			out.add(abs)
		}
	})
	return out.list()
}

func extractVisuals(d *Document, productImages []string) models.VisualAssets {
	backgrounds := newUniqueList(maxVisualsPerKind)
	d.Root.Find(`[style*="background-image"]`).Each(func(_ int, s *goquery.Selection) {
		m := reBackgroundImage.FindStringSubmatch(s.AttrOr("style", ""))
		if m == nil {
			return
		}
		if abs, ok := d.resolve(m[1]); ok {
			backgrounds.add(abs)
		}
	})

	icons := newUniqueList(maxIconography)
	d.Root.Find(`svg, img[src*="icon"], .icon img`).Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "svg" {
			icons.add(svgIconMarker)
			return
		}
		if abs, ok := d.resolve(s.AttrOr("src", "")); ok {
			icons.add(abs)
		}
	})

	return models.VisualAssets{
		HeroImages:       imageSources(d, `[class*="hero"] img, [id*="hero"] img`, maxVisualsPerKind),
		BannerImages:     imageSources(d, `[class*="banner"] img, [id*="banner"] img`, maxVisualsPerKind),
		BackgroundImages: backgrounds.list(),
		ProductPhotos:    productImages,
		Iconography:      icons.list(),
	}
}

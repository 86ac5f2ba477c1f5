package brand

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/brandscout/models"
)

// logoFinders are tried in priority order. The alt test is a function
// because the match must be case-insensitive.
var logoFinders = []func(*goquery.Document) *goquery.Selection{
	func(r *goquery.Document) *goquery.Selection { return r.Find(`img[src*="logo"]`) },
	func(r *goquery.Document) *goquery.Selection {
		return r.Find("img[alt]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return strings.Contains(strings.ToLower(s.AttrOr("alt", "")), "logo")
		})
	},
	func(r *goquery.Document) *goquery.Selection { return r.Find("header img") },
	func(r *goquery.Document) *goquery.Selection { return r.Find("nav img") },
	func(r *goquery.Document) *goquery.Selection { return r.Find(`a[href="/"] img`) },
	func(r *goquery.Document) *goquery.Selection { return r.Find(".logo img") },
}

const faviconSelector = `link[rel="icon"], link[rel="shortcut icon"], link[rel="apple-touch-icon"]`

func extractLogos(d *Document) models.LogoSet {
	var primary string
	for _, find := range logoFinders {
		src := find(d.Root).First().AttrOr("src", "")
		if abs, ok := d.resolve(src); ok {
			primary = abs
			break
		}
	}

	variations := newUniqueList(maxLogoVariations)
	for _, find := range logoFinders {
		find(d.Root).Each(func(_ int, s *goquery.Selection) {
			if abs, ok := d.resolve(s.AttrOr("src", "")); ok && abs != primary {
				variations.add(abs)
			}
		})
	}

	var favicon *string
	if abs, ok := d.resolve(d.Root.Find(faviconSelector).First().AttrOr("href", "")); ok {
		favicon = &abs
	}

	return models.LogoSet{
		Primary:    strPtr(primary),
		Favicon:    favicon,
		Variations: variations.list(),
	}
}

package brand

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/brandscout/models"
)

var rePrice = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)

// priceSelectors are scanned in order for dollar amounts.
var priceSelectors = []string{
	`[class*="price"]`,
	`[class*="cost"]`,
	`[id*="price"]`,
	`span:contains("$")`,
	`div:contains("$")`,
	".price, .pricing, .cost",
}

func extractProducts(d *Document) models.ProductInfo {
	images := newUniqueList(maxProductImages)
	d.Root.Find(`img[src*="product"], img[alt], .product img, .shop img`).Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if !strings.Contains(src, "product") &&
			!strings.Contains(strings.ToLower(s.AttrOr("alt", "")), "product") &&
			s.ParentsFiltered(".product, .shop").Length() == 0 {
			return
		}
		if abs, ok := d.resolve(src); ok {
			images.add(abs)
		}
	})

	categories := newUniqueList(maxCategories)
	d.Root.Find(`[class*="category"], [class*="collection"]`).Each(func(_ int, s *goquery.Selection) {
		categories.add(text(s))
	})

	descriptions := newUniqueList(maxDescriptions)
	d.Root.Find(`[class*="product-description"], .product p`).Each(func(_ int, s *goquery.Selection) {
		if desc := text(s); utf8.RuneCountInString(desc) > 10 {
			descriptions.add(desc)
		}
	})

	return models.ProductInfo{
		Images:       images.list(),
		Categories:   categories.list(),
		Descriptions: descriptions.list(),
		Pricing:      extractPricing(d),
	}
}

// extractPricing collects the dollar amounts found in price-like elements.
// Only the amounts are kept, not the surrounding element text, so a wrapper
// div containing a whole price table does not become one giant entry.
func extractPricing(d *Document) []string {
	out := newUniqueList(maxPricing)
	for _, sel := range priceSelectors {
		d.Root.Find(sel).Each(func(_ int, s *goquery.Selection) {
			for _, p := range rePrice.FindAllString(s.Text(), -1) {
				out.add(p)
			}
		})
		if out.full() {
			break
		}
	}
	return out.list()
}

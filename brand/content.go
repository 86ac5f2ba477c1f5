package brand

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/brandscout/models"
)

func extractContent(d *Document) models.ContentInfo {
	headings := newUniqueList(maxHeadings)
	d.Root.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		headings.add(text(s))
	})

	taglines := newUniqueList(maxTaglines)
	d.Root.Find(`[class*="tagline"], [class*="slogan"], [class*="motto"]`).Each(func(_ int, s *goquery.Selection) {
		taglines.add(text(s))
	})

	keyMessages := newUniqueList(maxKeyMessages)
	valueProps := newUniqueList(maxValueProps)
	d.Root.Find("h1, h2, .hero-text, .banner-text, .intro-text").Each(func(_ int, s *goquery.Selection) {
		msg := text(s)
		n := utf8.RuneCountInString(msg)
		if n <= 10 || n >= 200 {
			return
		}
		keyMessages.add(msg)
		if n > 20 {
			valueProps.add(msg)
		}
	})

	return models.ContentInfo{
		KeyMessages:       keyMessages.list(),
		ValuePropositions: valueProps.list(),
		Taglines:          taglines.list(),
		Keywords:          extractKeywords(d.Text),
		Headings:          headings.list(),
	}
}

// extractKeywords returns the first distinct words longer than three
// characters, in reading order.
func extractKeywords(lowerText string) []string {
	out := newUniqueList(maxKeywords)
	words := strings.FieldsFunc(lowerText, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	for _, w := range words {
		if out.full() {
			break
		}
		if utf8.RuneCountInString(w) > 3 {
			out.add(w)
		}
	}
	return out.list()
}

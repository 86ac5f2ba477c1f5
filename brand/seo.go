package brand

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/brandscout/models"
)

func extractSEO(d *Document) models.SEOInfo {
	seo := models.SEOInfo{
		Title:           strPtr(strings.TrimSpace(d.Root.Find("title").First().Text())),
		MetaDescription: strPtr(d.meta(`meta[name="description"]`)),
		Keywords:        strPtr(d.meta(`meta[name="keywords"]`)),
		OGTags:          prefixedMeta(d, `meta[property^="og:"]`, "property", "og:"),
		TwitterTags:     prefixedMeta(d, `meta[name^="twitter:"]`, "name", "twitter:"),
		StructuredData:  extractStructuredData(d),
	}
	return seo
}

// prefixedMeta collects meta tags into a map keyed by the attribute value
// with prefix removed. Later duplicates overwrite earlier ones.
func prefixedMeta(d *Document, selector, attr, prefix string) map[string]string {
	tags := make(map[string]string)
	d.Root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		key := strings.TrimPrefix(s.AttrOr(attr, ""), prefix)
		content := s.AttrOr("content", "")
		if key != "" && content != "" {
			tags[key] = content
		}
	})
	return tags
}

// extractStructuredData parses every JSON-LD block. Invalid blocks are
// skipped; a top-level array contributes each of its objects.
func extractStructuredData(d *Document) []map[string]any {
	out := []map[string]any{}
	d.Root.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			slog.Debug("skipping invalid JSON-LD block", "url", d.Base.String(), "error", err)
			return true
		}
		switch t := v.(type) {
		case map[string]any:
			out = append(out, t)
		case []any:
			for _, item := range t {
				if obj, ok := item.(map[string]any); ok && len(out) < maxStructuredData {
					out = append(out, obj)
				}
			}
		}
		return len(out) < maxStructuredData
	})
	if len(out) > maxStructuredData {
		out = out[:maxStructuredData]
	}
	return out
}

package brand

import (
	"log/slog"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// extractName returns the first non-empty of: og:site_name,
// application-name, twitter:site (without "@"), the leading segment of
// <title>, the first <h1>.
func extractName(d *Document) string {
	if v := d.meta(`meta[property="og:site_name"]`); v != "" {
		return v
	}
	if v := d.meta(`meta[name="application-name"]`); v != "" {
		return v
	}
	if v := strings.TrimSpace(strings.Replace(d.meta(`meta[name="twitter:site"]`), "@", "", 1)); v != "" {
		return v
	}
	title := d.Root.Find("title").First().Text()
	title = strings.SplitN(title, "|", 2)[0]
	title = strings.SplitN(title, "-", 2)[0]
	if v := strings.TrimSpace(title); v != "" {
		return v
	}
	return text(d.Root.Find("h1").First())
}

// extractDescription returns og:description, meta description or
// twitter:description, falling back to the readability excerpt of the page.
func extractDescription(d *Document) *string {
	for _, sel := range []string{
		`meta[property="og:description"]`,
		`meta[name="description"]`,
		`meta[name="twitter:description"]`,
	} {
		if v := d.meta(sel); v != "" {
			return &v
		}
	}
	return strPtr(readabilityExcerpt(d))
}

// readabilityExcerpt runs readability on its own parse of the page, since
// the algorithm rewrites the tree it is given.
func readabilityExcerpt(d *Document) string {
	article, err := readability.FromReader(strings.NewReader(d.HTML), d.Base)
	if err != nil {
		slog.Debug("readability: no excerpt", "url", d.Base.String(), "error", err)
		return ""
	}
	return strings.Join(strings.Fields(article.Excerpt), " ")
}

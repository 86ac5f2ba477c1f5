package brand

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/brandscout/models"
)

// socialPlatforms maps a result slot to the hosts that identify it.
var socialPlatforms = []struct {
	slot  func(*models.SocialLinks) **string
	hosts []string
}{
	{func(s *models.SocialLinks) **string { return &s.Facebook }, []string{"facebook.com", "fb.com"}},
	{func(s *models.SocialLinks) **string { return &s.Twitter }, []string{"twitter.com", "x.com"}},
	{func(s *models.SocialLinks) **string { return &s.Instagram }, []string{"instagram.com"}},
	{func(s *models.SocialLinks) **string { return &s.LinkedIn }, []string{"linkedin.com"}},
	{func(s *models.SocialLinks) **string { return &s.YouTube }, []string{"youtube.com", "youtu.be"}},
	{func(s *models.SocialLinks) **string { return &s.TikTok }, []string{"tiktok.com"}},
}

// hostMatches reports whether host is domain or one of its subdomains.
// Matching on the parsed host keeps "dropbox.com" from passing as x.com.
func hostMatches(host, domain string) bool {
	host = strings.ToLower(host)
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// extractSocial keeps the first link per platform in document order.
// Links to other networks are not collected, so Other is always empty.
func extractSocial(d *Document) models.SocialLinks {
	links := models.SocialLinks{Other: []string{}}

	var hrefs []*url.URL
	d.Root.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if abs, ok := d.resolve(s.AttrOr("href", "")); ok {
			if u, err := url.Parse(abs); err == nil {
				hrefs = append(hrefs, u)
			}
		}
	})

	for _, p := range socialPlatforms {
		slot := p.slot(&links)
	search:
		for _, u := range hrefs {
			for _, domain := range p.hosts {
				if hostMatches(u.Hostname(), domain) {
					v := u.String()
					*slot = &v
					break search
				}
			}
		}
	}
	return links
}

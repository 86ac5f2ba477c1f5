// Package brand extracts brand identity signals (name, logos, palette,
// typography, tone, social presence and more) from a website.
package brand

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html/charset"
)

// Document is a parsed brand page together with the CSS gathered for it.
// It is built once per scrape and only read by extractors.
type Document struct {
	Root *goquery.Document
	Base *url.URL

	// CSS is every inline style attribute followed by the text of each
	// stylesheet that could be fetched.
	CSS string

	// HTML is the decoded source, kept for passes that need their own
	// mutable parse tree.
	HTML string

	// Text is the lowercased visible body text (scripts and styles removed).
	Text string
}

var (
	selStyled     = cascadia.MustCompile("[style]")
	selInvisible  = cascadia.MustCompile("script, style, noscript, template")
	selStylesheet = cascadia.MustCompile(`link[rel="stylesheet"]`)
)

// parseHTML decodes body according to its declared or sniffed charset and
// builds a goquery document.
func parseHTML(body []byte, contentType string) (*goquery.Document, string, error) {
	enc, _, _ := charset.DetermineEncoding(body, contentType)
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		decoded = body
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(decoded))
	if err != nil {
		return nil, "", err
	}
	return doc, string(decoded), nil
}

// newDocument assembles the read-only view handed to extractors.
func newDocument(root *goquery.Document, src string, base *url.URL, stylesheets []string) *Document {
	var css strings.Builder
	root.FindMatcher(selStyled).Each(func(_ int, s *goquery.Selection) {
		css.WriteString(s.AttrOr("style", ""))
		css.WriteString(";\n")
	})
	for _, sheet := range stylesheets {
		css.WriteString(sheet)
		css.WriteString("\n}\n")
	}

	return &Document{
		Root: root,
		Base: base,
		CSS:  css.String(),
		HTML: src,
		Text: strings.ToLower(visibleText(root)),
	}
}

// visibleText returns the body text with script, style, noscript and
// template content dropped. The document itself is not modified.
func visibleText(root *goquery.Document) string {
	body := root.Find("body")
	if body.Length() == 0 {
		body = root.Selection
	}
	clone := body.Clone()
	clone.FindMatcher(selInvisible).Remove()
	return strings.Join(strings.Fields(clone.Text()), " ")
}

// stylesheetLinks returns the absolute URLs of all linked stylesheets in
// document order.
func stylesheetLinks(root *goquery.Document, base *url.URL) []string {
	var links []string
	root.FindMatcher(selStylesheet).Each(func(_ int, s *goquery.Selection) {
		if abs, ok := resolveURL(base, s.AttrOr("href", "")); ok {
			links = append(links, abs)
		}
	})
	return links
}

// resolve turns ref into an absolute http(s) URL relative to the page.
func (d *Document) resolve(ref string) (string, bool) {
	return resolveURL(d.Base, ref)
}

func resolveURL(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return "", false
	}
	u, err := base.Parse(ref)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

// meta returns the trimmed content attribute of the first element matching
// selector, or "".
func (d *Document) meta(selector string) string {
	return strings.TrimSpace(d.Root.Find(selector).First().AttrOr("content", ""))
}

var reInlineFont = regexp.MustCompile(`(?i)font-family\s*:\s*([^;]+)`)

// inlineFontFamily reads font-family from the element's own style
// attribute and returns the first family with quotes stripped.
//
// This stands in for the computed style: the cascade, stylesheet rules and
// inheritance are not evaluated, so elements styled only from CSS files
// report nothing.
func inlineFontFamily(s *goquery.Selection) *string {
	style, ok := s.Attr("style")
	if !ok {
		return nil
	}
	m := reInlineFont.FindStringSubmatch(style)
	if m == nil {
		return nil
	}
	first := strings.SplitN(m[1], ",", 2)[0]
	first = strings.TrimSpace(strings.NewReplacer(`"`, "", `'`, "").Replace(first))
	first = strings.TrimSpace(strings.TrimSuffix(first, "!important"))
	if first == "" {
		return nil
	}
	return &first
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

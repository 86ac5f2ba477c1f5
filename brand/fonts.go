package brand

import (
	"regexp"
	"strings"

	"github.com/use-agent/brandscout/models"
)

var reFontFamily = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}]+)`)

// isGenericFamily reports families that say nothing about the brand:
// generic fallbacks, system stacks, CSS-wide keywords and variables.
func isGenericFamily(f string) bool {
	l := strings.ToLower(f)
	switch {
	case strings.Contains(l, "system"), strings.Contains(l, "sans-serif"), strings.Contains(l, "serif"):
		return true
	case l == "inherit", l == "initial", l == "unset", l == "monospace":
		return true
	case strings.HasPrefix(l, "var("):
		return true
	}
	return false
}

// detectFonts lists the font families declared anywhere in css.
func detectFonts(css string) []string {
	out := newUniqueList(maxFonts)
	unquote := strings.NewReplacer(`"`, "", `'`, "")
	for _, m := range reFontFamily.FindAllStringSubmatch(css, -1) {
		for _, fam := range strings.Split(m[1], ",") {
			fam = strings.TrimSpace(unquote.Replace(fam))
			fam = strings.TrimSpace(strings.TrimSuffix(fam, "!important"))
			if fam == "" || isGenericFamily(fam) {
				continue
			}
			out.add(fam)
		}
	}
	return out.list()
}

func extractFonts(d *Document) models.FontSet {
	set := models.FontSet{
		Headings: inlineFontFamily(d.Root.Find("h1, h2").First()),
		Body:     inlineFontFamily(d.Root.Find("body, p").First()),
		Detected: detectFonts(d.CSS),
	}
	switch {
	case set.Headings != nil:
		set.Primary = set.Headings
	case set.Body != nil:
		set.Primary = set.Body
	case len(set.Detected) > 0:
		first := set.Detected[0]
		set.Primary = &first
	}
	return set
}

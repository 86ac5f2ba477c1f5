package brand

import (
	"regexp"
	"sort"
	"strings"

	"github.com/use-agent/brandscout/models"
)

// defaultPrimaryColor is reported when no usable color is found.
const defaultPrimaryColor = "#000000"

var (
	reColor = regexp.MustCompile(`#(?:[0-9a-fA-F]{3}){1,2}\b|rgba?\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*(?:,\s*[\d.]+\s*)?\)|hsla?\(\s*\d+\s*,\s*\d+%\s*,\s*\d+%\s*(?:,\s*[\d.]+\s*)?\)`)

	// Black, white and the grey boilerplate every reset stylesheet carries.
	reBoilerplateColor = regexp.MustCompile(`^(?:#000|#000000|#fff|#ffffff|#888|#888888|#ccc|#cccccc)$|^rgba?\(0,0,0[,)]|^rgba?\(255,255,255[,)]`)

	reGradientStart = regexp.MustCompile(`(?:linear|radial)-gradient\(`)
)

// normalizeColor lowercases a color literal and drops its whitespace so
// "#FF6600" and "#ff6600", or "rgb(0, 0, 0)" and "rgb(0,0,0)", count as one.
func normalizeColor(c string) string {
	return strings.ToLower(strings.Join(strings.Fields(c), ""))
}

func isBoilerplateColor(c string) bool {
	return reBoilerplateColor.MatchString(c)
}

// rankColors counts every color literal in css, drops boilerplate colors,
// and orders the rest by count descending. Equal counts keep the order in
// which the colors first appeared.
func rankColors(css string) []string {
	counts := make(map[string]int)
	var order []string
	for _, raw := range reColor.FindAllString(css, -1) {
		c := normalizeColor(raw)
		if isBoilerplateColor(c) {
			continue
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// extractGradients returns complete gradient expressions, following nested
// parentheses so that color functions inside the gradient are kept intact.
func extractGradients(css string) []string {
	out := newUniqueList(maxGradients)
	for _, loc := range reGradientStart.FindAllStringIndex(css, -1) {
		if out.full() {
			break
		}
		depth := 0
		for i := loc[1] - 1; i < len(css); i++ {
			switch css[i] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				out.add(strings.Join(strings.Fields(css[loc[0]:i+1]), " "))
				break
			}
		}
	}
	return out.list()
}

func extractColors(d *Document) models.ColorSet {
	ranked := rankColors(d.CSS)

	set := models.ColorSet{
		Primary:   defaultPrimaryColor,
		Palette:   []string{},
		Gradients: extractGradients(d.CSS),
	}
	if len(ranked) > 0 {
		set.Primary = ranked[0]
	}
	if len(ranked) > 1 {
		set.Secondary = &ranked[1]
	}
	if len(ranked) > maxPalette {
		ranked = ranked[:maxPalette]
	}
	set.Palette = append(set.Palette, ranked...)
	return set
}

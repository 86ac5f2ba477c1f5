package brand

// Caps on the bounded result lists.
const (
	maxLogoVariations = 5
	maxPalette        = 10
	maxGradients      = 5
	maxFonts          = 10
	maxProductImages  = 10
	maxCategories     = 5
	maxDescriptions   = 5
	maxPricing        = 10
	maxKeyMessages    = 5
	maxValueProps     = 3
	maxTaglines       = 3
	maxKeywords       = 20
	maxHeadings       = 10
	maxStructuredData = 5
	maxVisualsPerKind = 5
	maxIconography    = 10
)

// uniqueList keeps the first occurrence of each value, in insertion order,
// and stops accepting values once it holds max of them. Deduplication
// therefore always happens before truncation.
type uniqueList struct {
	max   int
	seen  map[string]struct{}
	items []string
}

func newUniqueList(max int) *uniqueList {
	return &uniqueList{max: max, seen: make(map[string]struct{}), items: []string{}}
}

// add appends v unless it is empty, already present, or the list is full.
func (u *uniqueList) add(v string) {
	if v == "" || u.full() {
		return
	}
	if _, dup := u.seen[v]; dup {
		return
	}
	u.seen[v] = struct{}{}
	u.items = append(u.items, v)
}

func (u *uniqueList) full() bool { return u.max > 0 && len(u.items) >= u.max }

// list returns the collected values; never nil.
func (u *uniqueList) list() []string { return u.items }

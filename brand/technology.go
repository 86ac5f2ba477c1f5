package brand

// technologySignals are checked in order; each present selector adds its tag.
var technologySignals = []struct {
	name     string
	selector string
}{
	{"React", `script[src*="react"]`},
	{"Vue", `script[src*="vue"]`},
	{"Angular", `script[src*="angular"]`},
	{"jQuery", `script[src*="jquery"]`},
	{"Bootstrap", `script[src*="bootstrap"]`},
	{"WordPress", `[class*="wp-"]`},
	{"Shopify", `script[src*="shopify"]`},
}

func detectTechnologies(d *Document) []string {
	found := []string{}
	for _, sig := range technologySignals {
		if d.Root.Find(sig.selector).Length() > 0 {
			found = append(found, sig.name)
		}
	}
	return found
}

package brand

import (
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/net/html"
)

const shingleSize = 3

// structureFingerprint is a 64-bit simhash over tag-name shingles of the
// parsed tree. Text and attributes are ignored, so two renderings of the
// same template land a few bits apart. Returns "" for an empty document.
func structureFingerprint(d *Document) string {
	var tags []string
	for _, n := range d.Root.Nodes {
		collectTags(n, &tags)
	}
	if len(tags) == 0 {
		return ""
	}

	tokens := tags
	if len(tags) >= shingleSize {
		tokens = make([]string, 0, len(tags)-shingleSize+1)
		for i := 0; i+shingleSize <= len(tags); i++ {
			tokens = append(tokens, strings.Join(tags[i:i+shingleSize], "_"))
		}
	}
	return fmt.Sprintf("%016x", simhash(tokens))
}

func collectTags(n *html.Node, tags *[]string) {
	if n.Type == html.ElementNode {
		*tags = append(*tags, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTags(c, tags)
	}
}

func simhash(tokens []string) uint64 {
	var vector [64]int
	h := fnv.New64a()
	for _, tok := range tokens {
		h.Reset()
		h.Write([]byte(tok))
		sum := h.Sum64()
		for i := range 64 {
			if sum&(1<<uint(i)) != 0 {
				vector[i]++
			} else {
				vector[i]--
			}
		}
	}

	var fp uint64
	for i, v := range vector {
		if v > 0 {
			fp |= 1 << uint(i)
		}
	}
	return fp
}

package brand

import (
	"strings"

	"github.com/use-agent/brandscout/models"
)

// toneThreshold is the score a tone must exceed to be reported.
const toneThreshold = 2

// toneKeywords is scored in this order; on equal scores the earlier tone wins.
var toneKeywords = []struct {
	tone     string
	keywords []string
}{
	{models.ToneLuxury, []string{"premium", "exclusive", "elegant", "sophisticated", "luxury", "finest", "exquisite", "crafted"}},
	{models.ToneProfessional, []string{"professional", "expertise", "trusted", "reliable", "corporate", "business", "industry", "solutions"}},
	{models.ToneFriendly, []string{"friendly", "welcome", "community", "together", "family", "caring", "warm", "personal"}},
	{models.TonePlayful, []string{"fun", "exciting", "adventure", "playful", "amazing", "awesome", "vibrant", "energetic"}},
	{models.ToneCasual, []string{"casual", "easy", "simple", "everyday", "relaxed", "comfortable", "laid-back"}},
	{models.ToneAuthoritative, []string{"leader", "authority", "expert", "proven", "established", "pioneer", "innovative", "cutting-edge"}},
}

// toneScores sums the non-overlapping occurrences of each tone's keywords
// in the lowercased text. Keywords match as substrings, so "fun" also
// counts inside "function" and "expert" inside "expertise".
func toneScores(lowerText string) map[string]int {
	scores := make(map[string]int, len(toneKeywords))
	for _, tk := range toneKeywords {
		for _, kw := range tk.keywords {
			scores[tk.tone] += strings.Count(lowerText, kw)
		}
	}
	return scores
}

// classifyTone returns the highest-scoring tone, or nil when no tone scores
// above the threshold.
func classifyTone(lowerText string) *string {
	scores := toneScores(lowerText)
	best, bestScore := "", -1
	for _, tk := range toneKeywords {
		if s := scores[tk.tone]; s > bestScore {
			best, bestScore = tk.tone, s
		}
	}
	if bestScore <= toneThreshold {
		return nil
	}
	return &best
}

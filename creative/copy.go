package creative

import (
	"fmt"
	"math/rand/v2"

	"github.com/use-agent/brandscout/models"
)

// copyTemplates holds three lines per tone; %[1]s is the brand name.
var copyTemplates = map[string][]string{
	models.ToneLuxury: {
		"Discover the epitome of excellence with %[1]s.",
		"Experience unparalleled luxury. %[1]s - Where quality meets prestige.",
		"Elevate your lifestyle with %[1]s's exclusive collection.",
	},
	models.TonePlayful: {
		"Ready to have some fun? %[1]s is here to brighten your day!",
		"Life's too short for boring. Spice it up with %[1]s!",
		"%[1]s - Where every moment becomes an adventure!",
	},
	models.ToneProfessional: {
		"Trust %[1]s for professional excellence that delivers results.",
		"%[1]s - Your reliable partner for success.",
		"Experience the difference with %[1]s's proven expertise.",
	},
	models.ToneCasual: {
		"Just what you need. %[1]s keeps it simple and effective.",
		"No fuss, just great quality. That's %[1]s.",
		"Easy does it with %[1]s - your everyday essential.",
	},
	models.ToneFriendly: {
		"Welcome to the %[1]s family - where quality meets warmth!",
		"%[1]s is here for you, every step of the way.",
		"Join thousands who trust %[1]s for their needs.",
	},
	models.ToneAuthoritative: {
		"%[1]s - The definitive choice for those who demand the best.",
		"Industry leaders choose %[1]s. Join the experts.",
		"When excellence is non-negotiable, choose %[1]s.",
	},
}

// slangChance is the probability threshold above which a regional phrase
// is appended.
const slangChance = 0.7

// AdCopy picks a line for the brand's tone (friendly for unknown tones) and
// sometimes appends one of the region's slang phrases.
func AdCopy(rnd *rand.Rand, brand *models.Brand, region *models.RegionalProfile) string {
	templates, ok := copyTemplates[brand.Tone]
	if !ok {
		templates = copyTemplates[models.ToneFriendly]
	}
	line := fmt.Sprintf(templates[rnd.IntN(len(templates))], brand.Name)

	if len(region.SlangPhrases) > 0 && rnd.Float64() > slangChance {
		line += " " + region.SlangPhrases[rnd.IntN(len(region.SlangPhrases))]
	}
	return line
}

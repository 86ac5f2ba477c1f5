package creative

import (
	"fmt"
	"strings"

	"github.com/use-agent/brandscout/competitor"
	"github.com/use-agent/brandscout/models"
)

var personalities = map[string]string{
	models.ToneLuxury:       "Premium, sophisticated, exclusive",
	models.TonePlayful:      "Fun, energetic, creative",
	models.ToneProfessional: "Clean, trustworthy, corporate",
	models.ToneCasual:       "Relaxed, approachable, down-to-earth",
	models.ToneFriendly:     "Warm, welcoming, personable",
}

const defaultPersonality = "Confident, expert, reliable"

const foodDesignElements = `

FOOD-SPECIFIC DESIGN ELEMENTS:
- Food Photography Best Practices: Use natural lighting, close-up shots showing texture and freshness, steam effects for hot foods, condensation for cold beverages
- Appetizing Visual Elements: Vibrant colors that enhance appetite, fresh ingredients visibility, appealing food styling, mouth-watering presentations
- Food Safety & Quality Messaging: Clean preparation environments, fresh ingredients showcase, quality certifications, hygiene standards
- Cultural Food Preferences: Incorporate regional spice levels, traditional cooking methods, local ingredient preferences, cultural dining contexts
- Seasonal Food Trends: Use seasonal ingredients, appropriate temperature suggestions (hot foods in winter, cold in summer), seasonal color palettes
- Food Presentation Styles: Professional plating, garnish details, appropriate serving vessels, context-appropriate backgrounds (rustic vs modern)
- Texture Emphasis: Show food textures clearly - crispy, creamy, juicy, tender - through lighting and composition
- Freshness Indicators: Bright colors, visible steam, fresh herb garnishes, natural imperfections that suggest authenticity
- Cultural Context: Include culturally appropriate utensils, serving styles, dining settings, and presentation methods`

const designRequirements = `

DESIGN REQUIREMENTS:
- Incorporate brand colors prominently
- Include subtle regional cultural elements
- Maintain brand tone throughout the design
- Ensure readability and visual impact
- Leave space for text overlay
- High contrast and vibrant colors
- Professional advertising quality
- Focus on `

const foodRequirements = `
- Emphasize food safety, quality, and freshness
- Use lighting that makes food look appetizing
- Include cultural food contexts relevant to the region
- Consider seasonal food preferences and availability`

// BuildPrompt writes the image-model instruction for one creative. insights
// may be nil, in which case the competitive section is left out.
func BuildPrompt(brand *models.Brand, region *models.RegionalProfile, platform string, insights *models.CompetitorAnalysis) string {
	category := InferCategory(brand.Name)
	food := IsFoodCategory(category)
	dims, _ := DimensionsFor(platform)

	secondary := "complementary to primary"
	if brand.SecondaryColor != nil && *brand.SecondaryColor != "" {
		secondary = *brand.SecondaryColor
	}
	personality, ok := personalities[brand.Tone]
	if !ok {
		personality = defaultPersonality
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a professional advertising creative image for %s targeting %s region.\n", brand.Name, region.Name)

	fmt.Fprintf(&b, "\nBRAND SPECIFICATIONS:\n")
	fmt.Fprintf(&b, "- Brand: %s\n", brand.Name)
	fmt.Fprintf(&b, "- Category: %s\n", category)
	fmt.Fprintf(&b, "- Tone: %s\n", brand.Tone)
	fmt.Fprintf(&b, "- Primary Color: %s\n", brand.PrimaryColor)
	fmt.Fprintf(&b, "- Secondary Color: %s\n", secondary)
	fmt.Fprintf(&b, "- Brand Personality: %s\n", personality)

	fmt.Fprintf(&b, "\nREGIONAL CULTURAL ELEMENTS:\n")
	fmt.Fprintf(&b, "- Region: %s\n", region.Name)
	fmt.Fprintf(&b, "- Cultural motifs: %s\n", strings.Join(region.CulturalMotifs, ", "))
	fmt.Fprintf(&b, "- Trending colors: %s\n", strings.Join(region.TrendingColors, ", "))
	fmt.Fprintf(&b, "- Local phrases/slang: %s\n", strings.Join(region.SlangPhrases, ", "))

	fmt.Fprintf(&b, "\nPLATFORM REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Platform: %s\n", strings.Replace(platform, "_", " ", 1))
	fmt.Fprintf(&b, "- Dimensions: %dx%d\n", dims.Width, dims.Height)
	fmt.Fprintf(&b, "- Format: %s\n", dims.Format)
	b.WriteString("- Style: High-quality, professional advertising creative")

	if food {
		b.WriteString(foodDesignElements)
	}

	b.WriteString(designRequirements)
	if food {
		b.WriteString("food appeal, freshness, and appetite stimulation")
		b.WriteString(foodRequirements)
	} else {
		b.WriteString("product appeal and brand recognition")
	}

	if insights != nil {
		a := insights.Analysis
		tips := competitor.PlatformTips(insights.ActionableRecommendations.PlatformOptimizations, platform)
		fmt.Fprintf(&b, "\n\nCOMPETITIVE INSIGHTS:\n")
		fmt.Fprintf(&b, "- Competitor color trends: %s\n", strings.Join(a.ColorPalette, ", "))
		fmt.Fprintf(&b, "- Successful copy tone: %s\n", a.CopyTone)
		fmt.Fprintf(&b, "- Regional preferences: %s\n", a.RegionalPreferences)
		fmt.Fprintf(&b, "- Platform optimizations: %s\n", strings.Join(tips, "; "))
		b.WriteString("\nUse these insights to create a creative that stands out while following successful patterns.")
	}

	b.WriteString("\n\nGenerate a compelling, culturally-relevant advertising image that would resonate with the target regional audience while maintaining strong brand identity")
	if food {
		b.WriteString(" and maximizing food appeal")
	}
	b.WriteString(".")
	return b.String()
}

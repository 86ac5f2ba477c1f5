package creative

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/brandscout/competitor"
	"github.com/use-agent/brandscout/models"
	"github.com/use-agent/brandscout/store"
)

func strp(s string) *string { return &s }

func testBrand() *models.Brand {
	return &models.Brand{
		ID:             "b1",
		Name:           "Golden Crust Bakery",
		PrimaryColor:   "#d4a373",
		SecondaryColor: strp("#7a3e1d"),
		Tone:           models.ToneLuxury,
		ProductImages:  []string{"https://brand.example/p.jpg"},
	}
}

func testRegion() *models.RegionalProfile {
	return &models.RegionalProfile{
		ID:             "r1",
		Name:           "United States",
		RegionCode:     "USA",
		CulturalMotifs: []string{"Americana", "Diners", "Road trips"},
		TrendingColors: []string{"#002868", "#BF0A30"},
		SlangPhrases:   []string{"No cap"},
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Burger Barn", "restaurant-fast-food"},
		{"Acme Foods", "restaurant-fast-food"},
		{"Sweet Tooth", "bakery-confectionery"},
		{"Pure Harvest", "organic-healthy-foods"},
		{"Anveshan", "regional-traditional-foods"},
		{"SnackCo", "packaged-foods"},
		{"Iron Gym", "fitness"},
		{"Zephyr", DefaultCategory},
		{"", DefaultCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategory(tt.name))
		})
	}
}

func TestBuildPromptFoodBrand(t *testing.T) {
	table, err := competitor.Load()
	require.NoError(t, err)
	insights, err := table.Analyze("bakery-confectionery", "usa", "instagram")
	require.NoError(t, err)

	p := BuildPrompt(testBrand(), testRegion(), models.PlatformInstagramStory, insights)

	assert.True(t, strings.HasPrefix(p, "Create a professional advertising creative image for Golden Crust Bakery targeting United States region.\n\nBRAND SPECIFICATIONS:\n"))
	assert.Contains(t, p, "- Category: bakery-confectionery\n")
	assert.Contains(t, p, "- Secondary Color: #7a3e1d\n")
	assert.Contains(t, p, "- Brand Personality: Premium, sophisticated, exclusive\n")
	assert.Contains(t, p, "- Cultural motifs: Americana, Diners, Road trips\n")
	assert.Contains(t, p, "- Platform: instagram story\n- Dimensions: 1080x1920\n- Format: vertical story\n")
	assert.Contains(t, p, "FOOD-SPECIFIC DESIGN ELEMENTS:")
	assert.Contains(t, p, "- Focus on food appeal, freshness, and appetite stimulation\n- Emphasize food safety")
	assert.Contains(t, p, "COMPETITIVE INSIGHTS:")
	assert.Contains(t, p, "- Platform optimizations: Use Stories for behind-the-scenes content; Leverage Reels for trending audio")
	assert.True(t, strings.HasSuffix(p, "maintaining strong brand identity and maximizing food appeal."))

	sections := []string{"BRAND SPECIFICATIONS", "REGIONAL CULTURAL ELEMENTS", "PLATFORM REQUIREMENTS",
		"FOOD-SPECIFIC DESIGN ELEMENTS", "DESIGN REQUIREMENTS", "COMPETITIVE INSIGHTS"}
	last := -1
	for _, s := range sections {
		i := strings.Index(p, s+":")
		require.Greater(t, i, last, "section %s out of order", s)
		last = i
	}
}

func TestBuildPromptFitnessBrandWithoutInsights(t *testing.T) {
	brand := &models.Brand{Name: "Iron Gym", PrimaryColor: "#111111", Tone: "unknown"}
	p := BuildPrompt(brand, testRegion(), models.PlatformTwitterPost, nil)

	assert.Contains(t, p, "- Secondary Color: complementary to primary\n")
	assert.Contains(t, p, "- Brand Personality: Confident, expert, reliable\n")
	assert.Contains(t, p, "- Platform: twitter post\n")
	assert.Contains(t, p, "- Focus on product appeal and brand recognition")
	assert.NotContains(t, p, "FOOD-SPECIFIC")
	assert.NotContains(t, p, "COMPETITIVE INSIGHTS")
	assert.True(t, strings.HasSuffix(p, "maintaining strong brand identity."))
}

func TestAdCopyDeterministicWithSeed(t *testing.T) {
	brand, region := testBrand(), testRegion()
	a := AdCopy(rand.New(rand.NewPCG(1, 2)), brand, region)
	b := AdCopy(rand.New(rand.NewPCG(1, 2)), brand, region)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Golden Crust Bakery")
}

func TestAdCopyTemplatesAndSlang(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))
	brand := testBrand()
	brand.Tone = "mysterious"
	region := testRegion()

	var withSlang, without int
	for range 200 {
		line := AdCopy(rnd, brand, region)
		base := strings.TrimSuffix(line, " No cap")
		if base != line {
			withSlang++
		} else {
			without++
		}
		matched := false
		for _, tmpl := range copyTemplates[models.ToneFriendly] {
			if base == fmt.Sprintf(tmpl, brand.Name) {
				matched = true
			}
		}
		assert.True(t, matched, "unexpected copy %q", line)
	}
	assert.Positive(t, withSlang)
	assert.Greater(t, without, withSlang)
}

func TestAdCopyNoSlangWithoutPhrases(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	region := testRegion()
	region.SlangPhrases = nil
	for range 50 {
		line := AdCopy(rnd, testBrand(), region)
		assert.True(t, strings.HasSuffix(line, ".") || strings.HasSuffix(line, "!"), line)
	}
}

func TestMatchScoreRange(t *testing.T) {
	rnd := rand.New(rand.NewPCG(11, 13))
	sparse := &models.Brand{Name: "x"}
	empty := &models.RegionalProfile{}
	insights := &models.CompetitorAnalysis{Analysis: models.MarketAnalysis{ColorPalette: []string{"#fff"}}}

	for range 500 {
		s := MatchScore(rnd, testBrand(), testRegion(), models.PlatformFacebookPost, insights)
		assert.Equal(t, maxScore, s, "a fully specified creative always clamps to the maximum")

		s = MatchScore(rnd, sparse, empty, "myspace", nil)
		assert.GreaterOrEqual(t, s, minScore)
		assert.LessOrEqual(t, s, baseScore+3)

		s = MatchScore(rnd, testBrand(), testRegion(), models.PlatformFacebookPost, nil)
		assert.GreaterOrEqual(t, s, minScore)
		assert.LessOrEqual(t, s, maxScore)
	}
}

func TestPlaceholderImage(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/b1-r1/1200/630", PlaceholderImage("b1", "r1", models.PlatformFacebookPost))
	assert.Equal(t, "https://picsum.photos/seed/b1-r1/1080/1080", PlaceholderImage("b1", "r1", "unknown"))
}

type fakeRepo struct {
	brands    map[string]*models.Brand
	regions   map[string]*models.RegionalProfile
	creatives []*models.Creative
}

func newFakeRepo() *fakeRepo {
	b, r := testBrand(), testRegion()
	return &fakeRepo{
		brands:  map[string]*models.Brand{b.ID: b},
		regions: map[string]*models.RegionalProfile{r.ID: r},
	}
}

func (f *fakeRepo) GetBrand(_ context.Context, id string) (*models.Brand, error) {
	if b, ok := f.brands[id]; ok {
		return b, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) GetRegionalProfile(_ context.Context, id string) (*models.RegionalProfile, error) {
	if r, ok := f.regions[id]; ok {
		return r, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) CreateCreative(_ context.Context, c *models.Creative) error {
	c.ID = fmt.Sprintf("c%d", len(f.creatives)+1)
	c.IsManualUpload = c.PromptUsed == models.ManualUploadPrompt
	f.creatives = append(f.creatives, c)
	return nil
}

type fakeImages struct {
	url    string
	err    error
	prompt string
}

func (f *fakeImages) GenerateImage(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.url, f.err
}

func newTestGenerator(t *testing.T, repo Repository, images ImageGenerator) *Generator {
	t.Helper()
	table, err := competitor.Load()
	require.NoError(t, err)
	return NewGenerator(repo, table, images, WithRand(rand.New(rand.NewPCG(1, 1))))
}

func TestGenerate(t *testing.T) {
	repo := newFakeRepo()
	images := &fakeImages{url: "https://img.example/out.png"}
	g := newTestGenerator(t, repo, images)

	resp, err := g.Generate(context.Background(), &models.GenerateCreativeRequest{
		BrandID: "b1", RegionalProfileID: "r1", Platform: models.PlatformInstagramPost,
	})
	require.NoError(t, err)

	assert.Equal(t, "c1", resp.ID)
	assert.Equal(t, "https://img.example/out.png", resp.ImageURL)
	assert.Equal(t, images.prompt, resp.PromptUsed)
	require.NotNil(t, resp.MatchScore)
	assert.GreaterOrEqual(t, *resp.MatchScore, minScore)
	assert.LessOrEqual(t, *resp.MatchScore, maxScore)
	require.NotNil(t, resp.CompetitorInsights, "bakery/usa is in the bundled table")
	assert.Contains(t, resp.PromptUsed, "COMPETITIVE INSIGHTS:")
	assert.False(t, resp.IsManualUpload)
	assert.Len(t, repo.creatives, 1)
}

func TestGeneratePlaceholderWhenNoImage(t *testing.T) {
	g := newTestGenerator(t, newFakeRepo(), &fakeImages{})
	resp, err := g.Generate(context.Background(), &models.GenerateCreativeRequest{
		BrandID: "b1", RegionalProfileID: "r1", Platform: models.PlatformTikTokReel,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/seed/b1-r1/1080/1920", resp.ImageURL)
}

func TestGenerateWithoutInsights(t *testing.T) {
	repo := newFakeRepo()
	repo.regions["r1"].RegionCode = "LATAM"
	g := newTestGenerator(t, repo, nil)

	resp, err := g.Generate(context.Background(), &models.GenerateCreativeRequest{
		BrandID: "b1", RegionalProfileID: "r1", Platform: models.PlatformInstagramPost,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.CompetitorInsights)
	assert.NotContains(t, resp.PromptUsed, "COMPETITIVE INSIGHTS")
	assert.True(t, strings.HasPrefix(resp.ImageURL, "https://picsum.photos/seed/"))
}

func TestGenerateErrors(t *testing.T) {
	g := newTestGenerator(t, newFakeRepo(), &fakeImages{err: errors.New("upstream 500")})

	_, err := g.Generate(context.Background(), &models.GenerateCreativeRequest{BrandID: "nope", RegionalProfileID: "r1", Platform: models.PlatformInstagramPost})
	assert.Equal(t, models.ErrCodeNotFound, models.AsAPIError(err).Code)
	assert.Equal(t, "Brand not found", models.AsAPIError(err).Message)

	_, err = g.Generate(context.Background(), &models.GenerateCreativeRequest{BrandID: "b1", RegionalProfileID: "nope", Platform: models.PlatformInstagramPost})
	assert.Equal(t, "Regional profile not found", models.AsAPIError(err).Message)

	_, err = g.Generate(context.Background(), &models.GenerateCreativeRequest{BrandID: "b1", RegionalProfileID: "r1", Platform: models.PlatformInstagramPost})
	apiErr := models.AsAPIError(err)
	assert.Equal(t, models.ErrCodeImageGeneration, apiErr.Code)
	assert.Contains(t, apiErr.Message, "upstream 500")
}

func TestUploadManual(t *testing.T) {
	repo := newFakeRepo()
	g := newTestGenerator(t, repo, nil)

	form := &models.ManualCreativeForm{BrandID: "b1", RegionalProfileID: "r1", Platform: models.PlatformFacebookPost, CopyText: "Hello"}
	out, err := g.UploadManual(context.Background(), form, []string{"data:image/png;base64,AA", "data:image/png;base64,BB"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, c := range out {
		assert.Equal(t, models.ManualUploadPrompt, c.PromptUsed)
		assert.Nil(t, c.MatchScore)
		assert.Nil(t, c.CompetitorInsights)
		assert.True(t, c.IsManualUpload)
	}

	form.BrandID = "missing"
	_, err = g.UploadManual(context.Background(), form, []string{"x"})
	assert.Equal(t, models.ErrCodeNotFound, models.AsAPIError(err).Code)
}

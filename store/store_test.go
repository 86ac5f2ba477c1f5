package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/brandscout/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// tick makes successive stamps strictly increasing so ordering is stable.
func tick(s *Store) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func strPtr(s string) *string { return &s }

func TestBrandLifecycle(t *testing.T) {
	s := openTestStore(t)
	tick(s)
	ctx := context.Background()

	first, err := s.CreateBrand(ctx, &models.CreateBrandRequest{
		Name:           "Acme",
		PrimaryColor:   "#ff5500",
		SecondaryColor: strPtr("#222222"),
		Tone:           models.ToneFriendly,
		WebsiteURL:     strPtr("https://acme.example"),
		ProductImages:  []string{"https://acme.example/a.jpg"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Nil(t, first.LogoURL)

	second, err := s.CreateBrand(ctx, &models.CreateBrandRequest{
		Name:           "Bolt",
		PrimaryColor:   "#000000",
		SecondaryColor: strPtr(""),
		Tone:           models.ToneLuxury,
	})
	require.NoError(t, err)
	assert.Nil(t, second.SecondaryColor, "empty optional strings are stored as null")
	assert.Equal(t, []string{}, second.ProductImages)

	got, err := s.GetBrand(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	list, err := s.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bolt", list[0].Name)
	assert.Equal(t, "Acme", list[1].Name)
}

func TestGetBrandNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetBrand(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSeedRegionalProfilesIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	added, err := s.SeedRegionalProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = s.SeedRegionalProfiles(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)

	profiles, err := s.ListRegionalProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	codes := make([]string, 0, len(profiles))
	for _, p := range profiles {
		codes = append(codes, p.RegionCode)
		assert.NotEmpty(t, p.SlangPhrases)
		assert.NotEmpty(t, p.TrendingColors)
	}
	assert.ElementsMatch(t, []string{"USA", "EUROPE", "ASIA"}, codes)
	for i := 1; i < len(profiles); i++ {
		assert.LessOrEqual(t, profiles[i-1].Name, profiles[i].Name)
	}

	got, err := s.GetRegionalProfile(ctx, profiles[0].ID)
	require.NoError(t, err)
	assert.Equal(t, profiles[0], *got)

	_, err = s.GetRegionalProfile(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreativesFilterAndOrder(t *testing.T) {
	s := openTestStore(t)
	tick(s)
	ctx := context.Background()

	_, err := s.SeedRegionalProfiles(ctx)
	require.NoError(t, err)
	profiles, err := s.ListRegionalProfiles(ctx)
	require.NoError(t, err)
	region := profiles[0].ID

	a, err := s.CreateBrand(ctx, &models.CreateBrandRequest{Name: "A", PrimaryColor: "#111111", Tone: models.ToneCasual})
	require.NoError(t, err)
	b, err := s.CreateBrand(ctx, &models.CreateBrandRequest{Name: "B", PrimaryColor: "#222222", Tone: models.TonePlayful})
	require.NoError(t, err)

	score := 88
	generated := &models.Creative{
		BrandID: a.ID, RegionalProfileID: region, Platform: models.PlatformInstagramPost,
		PromptUsed: "prompt", ImageURL: "https://img.example/1.png", CopyText: "copy", MatchScore: &score,
	}
	require.NoError(t, s.CreateCreative(ctx, generated))
	assert.NotEmpty(t, generated.ID)
	assert.False(t, generated.IsManualUpload)

	manual := &models.Creative{
		BrandID: a.ID, RegionalProfileID: region, Platform: models.PlatformTikTokReel,
		PromptUsed: models.ManualUploadPrompt, ImageURL: "data:image/png;base64,AA==", CopyText: "mine",
	}
	require.NoError(t, s.CreateCreative(ctx, manual))
	assert.True(t, manual.IsManualUpload)

	other := &models.Creative{
		BrandID: b.ID, RegionalProfileID: region, Platform: models.PlatformInstagramPost,
		PromptUsed: "p", ImageURL: "u", CopyText: "c", MatchScore: &score,
	}
	require.NoError(t, s.CreateCreative(ctx, other))

	all, err := s.ListCreatives(ctx, models.ListCreativesQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, other.ID, all[0].ID, "newest first")

	forA, err := s.ListCreatives(ctx, models.ListCreativesQuery{BrandID: a.ID})
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, manual.ID, forA[0].ID)
	assert.Nil(t, forA[0].MatchScore)
	assert.True(t, forA[0].IsManualUpload)
	require.NotNil(t, forA[1].MatchScore)
	assert.Equal(t, 88, *forA[1].MatchScore)

	posts, err := s.ListCreatives(ctx, models.ListCreativesQuery{Platform: models.PlatformInstagramPost, Limit: 1})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, other.ID, posts[0].ID)
}

func TestCreateCreativeUnknownBrand(t *testing.T) {
	s := openTestStore(t)
	err := s.CreateCreative(context.Background(), &models.Creative{
		BrandID: "ghost", RegionalProfileID: "ghost", Platform: models.PlatformInstagramPost,
		PromptUsed: "p", ImageURL: "u", CopyText: "c",
	})
	assert.Error(t, err)
}

// Package creative turns a stored brand and regional profile into an ad
// creative: an image prompt, a line of copy and a match score.
package creative

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/use-agent/brandscout/competitor"
	"github.com/use-agent/brandscout/metrics"
	"github.com/use-agent/brandscout/models"
	"github.com/use-agent/brandscout/store"
	"github.com/use-agent/brandscout/webhook"
)

// Repository is the persistence the generator needs.
type Repository interface {
	GetBrand(ctx context.Context, id string) (*models.Brand, error)
	GetRegionalProfile(ctx context.Context, id string) (*models.RegionalProfile, error)
	CreateCreative(ctx context.Context, c *models.Creative) error
}

// ImageGenerator renders a prompt and returns the image URL, or "" when
// the model answered without one.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Generator produces and stores creatives. It is safe for concurrent use.
type Generator struct {
	repo     Repository
	table    *competitor.Table
	images   ImageGenerator
	notifier *webhook.Notifier
	metrics  *metrics.Metrics

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand fixes the randomness used for copy and score jitter.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

func WithNotifier(n *webhook.Notifier) Option {
	return func(g *Generator) { g.notifier = n }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator creates a Generator. table and images may be nil: without a
// table no competitor insights are used, and without an image generator
// every creative gets a placeholder image.
func NewGenerator(repo Repository, table *competitor.Table, images ImageGenerator, opts ...Option) *Generator {
	g := &Generator{
		repo:   repo,
		table:  table,
		images: images,
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds, stores and returns a creative for req.
func (g *Generator) Generate(ctx context.Context, req *models.GenerateCreativeRequest) (*models.CreativeResponse, error) {
	brand, region, err := g.load(ctx, req.BrandID, req.RegionalProfileID)
	if err != nil {
		return nil, err
	}

	insights := g.insights(brand, region, req.Platform)
	prompt := BuildPrompt(brand, region, req.Platform, insights)

	imageURL, err := g.generateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		imageURL = PlaceholderImage(req.BrandID, req.RegionalProfileID, req.Platform)
		slog.Warn("no image URL in model response, using placeholder",
			"brandId", req.BrandID, "platform", req.Platform)
	}

	g.mu.Lock()
	copyText := AdCopy(g.rnd, brand, region)
	score := MatchScore(g.rnd, brand, region, req.Platform, insights)
	g.mu.Unlock()

	c := &models.Creative{
		BrandID:           brand.ID,
		RegionalProfileID: region.ID,
		Platform:          req.Platform,
		PromptUsed:        prompt,
		ImageURL:          imageURL,
		CopyText:          copyText,
		MatchScore:        &score,
	}
	if err := g.repo.CreateCreative(ctx, c); err != nil {
		return nil, models.NewAPIError(models.ErrCodeInternal, "failed to store creative", err)
	}
	g.metrics.CreativeStored("generated", 1)

	resp := &models.CreativeResponse{Creative: *c, CompetitorInsights: insights}
	g.notifier.CreativeGenerated(resp)
	slog.Info("creative generated",
		"id", c.ID,
		"brandId", brand.ID,
		"region", region.RegionCode,
		"platform", req.Platform,
		"matchScore", score,
	)
	return resp, nil
}

// UploadManual stores one manual creative per image. Brand and region must
// exist; manual creatives carry no score and no competitor insights.
func (g *Generator) UploadManual(ctx context.Context, form *models.ManualCreativeForm, imageURLs []string) ([]models.CreativeResponse, error) {
	brand, region, err := g.load(ctx, form.BrandID, form.RegionalProfileID)
	if err != nil {
		return nil, err
	}

	out := make([]models.CreativeResponse, 0, len(imageURLs))
	for _, img := range imageURLs {
		c := &models.Creative{
			BrandID:           brand.ID,
			RegionalProfileID: region.ID,
			Platform:          form.Platform,
			PromptUsed:        models.ManualUploadPrompt,
			ImageURL:          img,
			CopyText:          form.CopyText,
		}
		if err := g.repo.CreateCreative(ctx, c); err != nil {
			return nil, models.NewAPIError(models.ErrCodeInternal, "failed to store creative", err)
		}
		out = append(out, models.CreativeResponse{Creative: *c})
	}
	g.metrics.CreativeStored("manual", len(out))
	return out, nil
}

func (g *Generator) load(ctx context.Context, brandID, regionID string) (*models.Brand, *models.RegionalProfile, error) {
	brand, err := g.repo.GetBrand(ctx, brandID)
	if err != nil {
		return nil, nil, notFoundOr(err, "Brand not found")
	}
	region, err := g.repo.GetRegionalProfile(ctx, regionID)
	if err != nil {
		return nil, nil, notFoundOr(err, "Regional profile not found")
	}
	return brand, region, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return models.NewAPIError(models.ErrCodeNotFound, msg, err)
	}
	return models.NewAPIError(models.ErrCodeInternal, "failed to load creative inputs", err)
}

// insights is best effort: a missing table cell only costs the creative
// its competitive section.
func (g *Generator) insights(brand *models.Brand, region *models.RegionalProfile, platform string) *models.CompetitorAnalysis {
	if g.table == nil {
		return nil
	}
	category := InferCategory(brand.Name)
	regionKey := strings.ToLower(region.RegionCode)
	a, err := g.table.Analyze(category, regionKey, competitor.PlatformFamily(platform))
	if err != nil {
		slog.Warn("competitor analysis unavailable, continuing without insights",
			"category", category, "region", regionKey, "error", err)
		return nil
	}
	return a
}

func (g *Generator) generateImage(ctx context.Context, prompt string) (string, error) {
	if g.images == nil {
		return "", nil
	}
	start := time.Now()
	url, err := g.images.GenerateImage(ctx, prompt)
	g.metrics.ObserveImageGeneration(time.Since(start))
	if err != nil {
		return "", models.NewAPIError(models.ErrCodeImageGeneration,
			fmt.Sprintf("Failed to generate image: %v", err), err)
	}
	return url, nil
}

// PlaceholderImage is a deterministic stand-in image sized for platform.
func PlaceholderImage(brandID, regionID, platform string) string {
	d, ok := DimensionsFor(platform)
	if !ok {
		d = platformDimensions[models.PlatformInstagramPost]
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s-%s/%d/%d", brandID, regionID, d.Width, d.Height)
}

package brand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/use-agent/brandscout/config"
	"github.com/use-agent/brandscout/engine"
	"github.com/use-agent/brandscout/metrics"
	"github.com/use-agent/brandscout/models"
	"github.com/use-agent/brandscout/scraper"
)

// Fetch modes accepted in ScrapeBrandRequest.FetchMode.
const (
	FetchModeHTTP    = "http"
	FetchModeAuto    = "auto"
	FetchModeBrowser = "browser"
)

// Scraper runs the brand scrape pipeline: fetch the page, fetch its
// stylesheets, parse once, run every extractor and assemble the result.
// It holds no per-request state and is safe for concurrent use.
type Scraper struct {
	http    engine.Engine
	auto    engine.Engine // nil unless a browser is running
	browser engine.Engine // nil unless a browser is running
	cfg     config.ScraperConfig
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBrowser enables the "auto" and "browser" fetch modes. auto is
// normally an engine.Dispatcher racing the HTTP engine against browser.
func WithBrowser(browser, auto engine.Engine) Option {
	return func(s *Scraper) {
		s.browser = browser
		s.auto = auto
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scraper) { s.metrics = m }
}

// NewScraper creates a Scraper that fetches over httpEngine.
func NewScraper(cfg config.ScraperConfig, httpEngine engine.Engine, opts ...Option) *Scraper {
	s := &Scraper{
		http: httpEngine,
		cfg:  cfg,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape builds the brand profile of req.URL. Only a failure to retrieve
// the page itself is returned as an error; stylesheet and JSON-LD problems
// shrink the result instead.
func (s *Scraper) Scrape(ctx context.Context, req *models.ScrapeBrandRequest) (result *models.ScrapeResult, err error) {
	start := s.now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.ObserveScrape(outcome, time.Since(start))
	}()

	base, err := parseTarget(req.URL)
	if err != nil {
		return nil, err
	}

	page, err := s.fetchPage(ctx, req)
	if err != nil {
		return nil, fetchFailure(req.URL, err)
	}
	if final, perr := url.Parse(page.FinalURL); perr == nil && final.Host != "" {
		base = final
	}

	root, src, err := parseHTML([]byte(page.Body), page.ContentType)
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeInternal,
			fmt.Sprintf("could not parse content from %s", req.URL), err)
	}

	links := selectStylesheets(stylesheetLinks(root, base), s.cfg.ExcludedStylesheetHosts, s.cfg.MaxStylesheets)
	sheets, sheetStats := s.fetchStylesheets(ctx, links)

	doc := newDocument(root, src, base, sheets)
	result, err = s.extract(doc)
	if err != nil {
		return nil, err
	}

	result.Technical.WebsiteURL = req.URL
	result.Technical.FetchEngine = page.EngineName
	result.Technical.Stylesheets = sheetStats
	result.Technical.LastScraped = s.now().UTC().Format(time.RFC3339)
	loadTime := s.now().Sub(start).Milliseconds()
	result.Technical.Performance.LoadTime = &loadTime

	slog.Info("brand scraped",
		"url", req.URL,
		"engine", page.EngineName,
		"stylesheets", sheetStats.Fetched,
		"loadTimeMs", loadTime,
	)
	return result, nil
}

// parseTarget rejects anything but an absolute http(s) URL before any
// network access happens.
func parseTarget(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, models.NewAPIError(models.ErrCodeInvalidInput,
			fmt.Sprintf("invalid url %q: must be an absolute http or https URL", raw), err)
	}
	return u, nil
}

// fetchPage retrieves the main document with the engine the fetch mode
// asks for. Browser modes quietly use HTTP when no browser is running.
func (s *Scraper) fetchPage(ctx context.Context, req *models.ScrapeBrandRequest) (*engine.FetchResult, error) {
	fr := &engine.FetchRequest{URL: req.URL, Kind: engine.KindDocument, Timeout: s.cfg.FetchTimeout}

	switch {
	case req.FetchMode == FetchModeBrowser && s.browser != nil:
		return s.browser.Fetch(ctx, fr)

	case req.FetchMode == FetchModeAuto && s.auto != nil:
		res, err := s.auto.Fetch(ctx, fr)
		if err != nil {
			return nil, err
		}
		// The HTTP engine can win the race with an empty SPA shell.
		if res.EngineName == s.http.Name() && s.browser != nil && scraper.NeedsRendering([]byte(res.Body)) {
			slog.Debug("page looks client-rendered, rendering in browser", "url", req.URL)
			rendered, rerr := s.browser.Fetch(ctx, fr)
			if rerr == nil {
				return rendered, nil
			}
			slog.Warn("browser render failed, using HTTP body", "url", req.URL, "error", rerr)
		}
		return res, nil

	default:
		return s.http.Fetch(ctx, fr)
	}
}

func fetchFailure(rawURL string, err error) *models.APIError {
	code := models.ErrCodeFetch
	if errors.Is(err, context.DeadlineExceeded) {
		code = models.ErrCodeTimeout
	}
	cause := err.Error()
	var fe *engine.FetchError
	if errors.As(err, &fe) {
		switch {
		case fe.StatusCode != 0:
			cause = fmt.Sprintf("status %d", fe.StatusCode)
		case fe.Err != nil:
			cause = fe.Err.Error()
		}
	} else {
		err = &engine.FetchError{URL: rawURL, Kind: engine.KindDocument, Err: err}
	}
	return models.NewAPIError(code, fmt.Sprintf("Could not retrieve content from %s: %s", rawURL, cause), err)
}

// extract runs every extractor over doc. A panic inside an extractor is
// turned into an internal error.
func (s *Scraper) extract(doc *Document) (result *models.ScrapeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("extractor panic", "url", doc.Base.String(), "panic", r)
			result = nil
			err = models.NewAPIError(models.ErrCodeInternal, fmt.Sprintf("extraction failed: %v", r), nil)
		}
	}()

	products := extractProducts(doc)
	return &models.ScrapeResult{
		Name:        extractName(doc),
		Description: extractDescription(doc),
		Logos:       extractLogos(doc),
		Colors:      extractColors(doc),
		Fonts:       extractFonts(doc),
		Tone:        classifyTone(doc.Text),
		Products:    products,
		Content:     extractContent(doc),
		Social:      extractSocial(doc),
		Contact:     extractContact(doc),
		SEO:         extractSEO(doc),
		Visuals:     extractVisuals(doc, products.Images),
		Technical: models.TechnicalInfo{
			Technologies: detectTechnologies(doc),
			Performance: models.PerformanceInfo{
				ImageCount: doc.Root.Find("img").Length(),
				LinkCount:  doc.Root.Find("a").Length(),
			},
			Fingerprint: structureFingerprint(doc),
		},
	}, nil
}

package brand

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/brandscout/config"
	"github.com/use-agent/brandscout/engine"
	"github.com/use-agent/brandscout/models"
)

const brandPage = `<!DOCTYPE html>
<html><head>
<title>Golden Crust Bakery | Fresh Daily</title>
<meta name="description" content="Artisan bakery since 1920.">
<link rel="stylesheet" href="/css/main.css">
<link rel="stylesheet" href="/css/missing.css">
<link rel="stylesheet" href="https://fonts.googleapis.com/css?family=Lora">
<link rel="icon" href="/favicon.png">
<script type="application/ld+json">{"@type":"Bakery","name":"Golden Crust"}</script>
</head>
<body style="color:#7a3e1d">
<header><img src="/img/logo.png" alt="Golden Crust"></header>
<h1>Welcome to our family bakery</h1>
<p>Premium, elegant and exclusive pastries crafted with the finest butter.</p>
<a href="https://www.instagram.com/goldencrust">Instagram</a>
<a href="/about">About</a>
</body></html>`

func newBrandSite(t *testing.T, cssHits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(brandPage))
	})
	mux.HandleFunc("/css/main.css", func(w http.ResponseWriter, r *http.Request) {
		if cssHits != nil {
			cssHits.Add(1)
		}
		w.Header().Set("Content-Type", "text/css")
		_, _ = w.Write([]byte(`h1{color:#d4a373;font-family:"Lora",serif} .btn{background:#d4a373}`))
	})
	mux.HandleFunc("/css/missing.css", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testScraperConfig() config.ScraperConfig {
	return config.ScraperConfig{
		FetchTimeout:            5 * time.Second,
		MaxStylesheets:          5,
		StylesheetConcurrency:   5,
		ExcludedStylesheetHosts: []string{"fonts.googleapis.com"},
	}
}

func TestScrapeAssemblesBrandProfile(t *testing.T) {
	var cssHits atomic.Int32
	srv := newBrandSite(t, &cssHits)
	s := NewScraper(testScraperConfig(), engine.NewHTTPEngine())

	before := time.Now().UTC().Add(-time.Second)
	res, err := s.Scrape(context.Background(), &models.ScrapeBrandRequest{URL: srv.URL + "/"})
	require.NoError(t, err)

	assert.Equal(t, "Golden Crust Bakery", res.Name)
	require.NotNil(t, res.Description)
	assert.Equal(t, "Artisan bakery since 1920.", *res.Description)

	require.NotNil(t, res.Logos.Primary)
	assert.Equal(t, srv.URL+"/img/logo.png", *res.Logos.Primary)
	require.NotNil(t, res.Logos.Favicon)
	assert.Equal(t, srv.URL+"/favicon.png", *res.Logos.Favicon)

	assert.Equal(t, "#d4a373", res.Colors.Primary)
	require.NotNil(t, res.Colors.Secondary)
	assert.Equal(t, "#7a3e1d", *res.Colors.Secondary)
	assert.Equal(t, []string{"Lora"}, res.Fonts.Detected)

	require.NotNil(t, res.Tone)
	assert.Equal(t, models.ToneLuxury, *res.Tone)

	require.NotNil(t, res.Social.Instagram)
	assert.Equal(t, "https://www.instagram.com/goldencrust", *res.Social.Instagram)
	require.Len(t, res.SEO.StructuredData, 1)
	assert.Equal(t, "Bakery", res.SEO.StructuredData[0]["@type"])

	tech := res.Technical
	assert.Equal(t, srv.URL+"/", tech.WebsiteURL)
	assert.Equal(t, "http", tech.FetchEngine)
	assert.Equal(t, models.StylesheetStats{Requested: 2, Fetched: 1, Failed: 1}, tech.Stylesheets)
	assert.Equal(t, int32(1), cssHits.Load())
	assert.Equal(t, 1, tech.Performance.ImageCount)
	assert.Equal(t, 2, tech.Performance.LinkCount)
	require.NotNil(t, tech.Performance.LoadTime)
	assert.GreaterOrEqual(t, *tech.Performance.LoadTime, int64(0))
	assert.NotEmpty(t, tech.Fingerprint)

	scraped, err := time.Parse(time.RFC3339, tech.LastScraped)
	require.NoError(t, err)
	assert.False(t, scraped.Before(before.Truncate(time.Second)))
}

func TestScrapeRejectsInvalidURL(t *testing.T) {
	fe := &countingEngine{}
	s := NewScraper(testScraperConfig(), fe)

	for _, raw := range []string{"", "not a url", "ftp://example.com/", "/relative/path", "https://"} {
		_, err := s.Scrape(context.Background(), &models.ScrapeBrandRequest{URL: raw})
		require.Error(t, err, raw)
		assert.Equal(t, models.ErrCodeInvalidInput, models.AsAPIError(err).Code, raw)
	}
	assert.Zero(t, fe.calls.Load(), "invalid input must not reach the network")
}

func TestScrapeMainPageFailureNamesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewScraper(testScraperConfig(), engine.NewHTTPEngine())
	_, err := s.Scrape(context.Background(), &models.ScrapeBrandRequest{URL: srv.URL + "/home"})
	require.Error(t, err)

	apiErr := models.AsAPIError(err)
	assert.Equal(t, models.ErrCodeFetch, apiErr.Code)
	assert.Contains(t, apiErr.Message, srv.URL+"/home")
	assert.Contains(t, apiErr.Message, "503")

	var fe *engine.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, engine.KindDocument, fe.Kind)
}

func TestScrapeUnreachableHost(t *testing.T) {
	s := NewScraper(testScraperConfig(), engine.NewHTTPEngine())
	_, err := s.Scrape(context.Background(), &models.ScrapeBrandRequest{URL: "http://127.0.0.1:1/"})
	require.Error(t, err)
	apiErr := models.AsAPIError(err)
	assert.Equal(t, models.ErrCodeFetch, apiErr.Code)
	assert.True(t, strings.HasPrefix(apiErr.Message, "Could not retrieve content from http://127.0.0.1:1/"))
}

func TestScrapeStylesheetsAllFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".css") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head>
			<link rel="stylesheet" href="/a.css"><link rel="stylesheet" href="/b.css">
			</head><body><h1>Plain</h1></body></html>`))
	}))
	defer srv.Close()

	s := NewScraper(testScraperConfig(), engine.NewHTTPEngine())
	res, err := s.Scrape(context.Background(), &models.ScrapeBrandRequest{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, models.StylesheetStats{Requested: 2, Failed: 2}, res.Technical.Stylesheets)
	assert.Equal(t, defaultPrimaryColor, res.Colors.Primary)
	assert.Nil(t, res.Tone)
	assert.Nil(t, res.Logos.Primary)
}

func TestScrapeBrowserModeFallsBackToHTTP(t *testing.T) {
	srv := newBrandSite(t, nil)
	s := NewScraper(testScraperConfig(), engine.NewHTTPEngine())

	res, err := s.Scrape(context.Background(), &models.ScrapeBrandRequest{URL: srv.URL, FetchMode: FetchModeBrowser})
	require.NoError(t, err)
	assert.Equal(t, "http", res.Technical.FetchEngine)
}

func TestScrapeAutoModeRendersShell(t *testing.T) {
	shell := &countingEngine{name: "http", body: `<html><body><div id="root"></div><script src="/app.js"></script></body></html>`}
	rendered := &countingEngine{name: "rod", body: `<html><head><title>Rendered Brand</title></head><body><h1>Hi</h1></body></html>`}
	auto := &countingEngine{name: "auto", body: shell.body, engineName: "http"}

	s := NewScraper(testScraperConfig(), shell, WithBrowser(rendered, auto))
	res, err := s.Scrape(context.Background(), &models.ScrapeBrandRequest{URL: "https://spa.example/", FetchMode: FetchModeAuto})
	require.NoError(t, err)
	assert.Equal(t, "Rendered Brand", res.Name)
	assert.Equal(t, "rod", res.Technical.FetchEngine)
	assert.Equal(t, int32(1), rendered.calls.Load())
}

// countingEngine serves a fixed body and counts its calls.
type countingEngine struct {
	name       string
	engineName string // reported EngineName; defaults to name
	body       string
	calls      atomic.Int32
}

func (c *countingEngine) Name() string { return c.name }

func (c *countingEngine) Fetch(_ context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	c.calls.Add(1)
	name := c.engineName
	if name == "" {
		name = c.name
	}
	return &engine.FetchResult{
		Body:        c.body,
		ContentType: "text/html",
		StatusCode:  http.StatusOK,
		FinalURL:    req.URL,
		EngineName:  name,
	}, nil
}

package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/use-agent/brandscout/engine"
	"github.com/ysmood/gson"
)

// Render loads req.URL in a pooled tab and returns the rendered HTML.
// It matches engine.RenderFunc.
//
// Stealth scripts, extra headers and the hijack router must be installed
// before Navigate; they only affect navigations that start afterwards.
func (b *Browser) Render(ctx context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	timeout := req.Timeout
	if timeout <= 0 || timeout > b.scraperCfg.NavigationTimeout*2 {
		timeout = b.scraperCfg.NavigationTimeout * 2
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page, err := b.pagePool.Get(func() (*rod.Page, error) {
		return b.browser.Page(proto.TargetCreateTarget{})
	})
	if err != nil {
		return nil, fmt.Errorf("acquire page: %w", err)
	}

	// Uses the page without the request context so cleanup runs even after a timeout.
	defer func() {
		if navErr := page.Navigate("about:blank"); navErr != nil {
			slog.Warn("cleanup: failed to navigate to about:blank", "error", navErr)
		}
		b.pagePool.Put(page)
	}()

	if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
		slog.Warn("stealth injection failed, proceeding without stealth", "error", err)
	}

	if headers := extraHeaders(req); len(headers) > 0 {
		_ = proto.NetworkSetExtraHTTPHeaders{Headers: headers}.Call(page)
	}

	if router := setupHijack(page, b.scraperCfg.BlockedResourceTypes); router != nil {
		defer func() { _ = router.Stop() }()
	}

	p := page.Context(ctx)

	navCtx, navCancel := context.WithTimeout(ctx, b.scraperCfg.NavigationTimeout)
	defer navCancel()
	if err := p.Context(navCtx).Navigate(req.URL); err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}

	if err := p.WaitDOMStable(300*time.Millisecond, 0.1); err != nil {
		slog.Debug("DOM did not settle, using current snapshot", "url", req.URL, "error", err)
	}

	statusCode := 0
	if res, err := p.Eval(`() => {
		try {
			const entries = performance.getEntriesByType("navigation");
			if (entries.length > 0) return entries[0].responseStatus || 0;
		} catch(e) {}
		return 0;
	}`); err == nil {
		statusCode = res.Value.Int()
	}
	if statusCode >= 400 {
		return nil, fmt.Errorf("unexpected status %d", statusCode)
	}

	rawHTML, err := p.HTML()
	if err != nil {
		return nil, fmt.Errorf("read rendered html: %w", err)
	}

	finalURL := req.URL
	if res, err := p.Eval(`() => window.location.href`); err == nil && res.Value.Str() != "" {
		finalURL = res.Value.Str()
	}

	return &engine.FetchResult{
		Body:        rawHTML,
		ContentType: "text/html; charset=utf-8",
		StatusCode:  statusCode,
		FinalURL:    finalURL,
	}, nil
}

// extraHeaders builds the CDP header map: a search-engine Referer plus any
// caller-supplied headers.
func extraHeaders(req *engine.FetchRequest) proto.NetworkHeaders {
	headers := make(proto.NetworkHeaders, len(req.Headers)+1)
	if _, ok := req.Headers["Referer"]; !ok {
		if u, err := url.Parse(req.URL); err == nil {
			headers["Referer"] = gson.New("https://www.google.com/search?q=" + url.QueryEscape(u.Hostname()))
		}
	}
	for k, v := range req.Headers {
		headers[k] = gson.New(v)
	}
	return headers
}

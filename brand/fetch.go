package brand

import (
	"context"
	"log/slog"
	"net/url"
	"slices"

	"github.com/use-agent/brandscout/engine"
	"github.com/use-agent/brandscout/models"
	"golang.org/x/sync/errgroup"
)

// selectStylesheets drops links on excluded hosts and keeps the first max
// of what remains.
func selectStylesheets(links []string, excludedHosts []string, max int) []string {
	selected := make([]string, 0, min(len(links), max))
	for _, link := range links {
		if len(selected) >= max {
			break
		}
		u, err := url.Parse(link)
		if err != nil || slices.Contains(excludedHosts, u.Hostname()) {
			continue
		}
		selected = append(selected, link)
	}
	return selected
}

// fetchStylesheets retrieves links concurrently and returns the bodies that
// could be fetched, in link order. A failed stylesheet is logged and
// skipped; it never cancels its siblings or fails the scrape.
func (s *Scraper) fetchStylesheets(ctx context.Context, links []string) ([]string, models.StylesheetStats) {
	stats := models.StylesheetStats{Requested: len(links)}
	if len(links) == 0 {
		return nil, stats
	}

	bodies := make([]string, len(links))
	ok := make([]bool, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.cfg.StylesheetConcurrency))
	for i, link := range links {
		g.Go(func() error {
			res, err := s.http.Fetch(gctx, &engine.FetchRequest{
				URL:     link,
				Kind:    engine.KindStylesheet,
				Timeout: s.cfg.FetchTimeout,
			})
			if err != nil {
				slog.Warn("stylesheet fetch failed, skipping", "url", link, "error", err)
				s.metrics.StylesheetFetched(false)
				return nil
			}
			s.metrics.StylesheetFetched(true)
			bodies[i] = res.Body
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait()

	sheets := make([]string, 0, len(links))
	for i := range links {
		if ok[i] {
			sheets = append(sheets, bodies[i])
			stats.Fetched++
		} else {
			stats.Failed++
		}
	}
	return sheets, stats
}

package engine

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"
)

// Dispatcher retrieves brand pages by racing engines with staged start
// delays: the HTTP engine starts at once, the browser only if HTTP has not
// answered within its escalation delay. The winning engine is remembered per
// domain so later scrapes of the same site go straight to it.
type Dispatcher struct {
	engines []Engine
	delays  []time.Duration
	memory  *DomainMemory
}

// NewDispatcher creates a Dispatcher. engines[i] starts delays[i] after the
// race begins; missing delays default to zero.
func NewDispatcher(engines []Engine, delays []time.Duration, memory *DomainMemory) *Dispatcher {
	d := make([]time.Duration, len(engines))
	copy(d, delays)
	return &Dispatcher{engines: engines, delays: d, memory: memory}
}

func (d *Dispatcher) Name() string { return "auto" }

// Fetch satisfies Engine so the dispatcher can stand in for a single engine.
func (d *Dispatcher) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	domain := hostOf(req.URL)

	if name := d.memory.Get(domain); name != "" {
		if eng := d.byName(name); eng != nil {
			result, err := eng.Fetch(ctx, req)
			if err == nil {
				return result, nil
			}
			slog.Info("remembered engine failed, racing all engines",
				"domain", domain, "engine", name, "error", err)
			d.memory.Delete(domain)
		}
	}

	return d.race(ctx, req, domain)
}

func (d *Dispatcher) byName(name string) Engine {
	for _, e := range d.engines {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

type attempt struct {
	result *FetchResult
	err    error
}

func (d *Dispatcher) race(ctx context.Context, req *FetchRequest, domain string) (*FetchResult, error) {
	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	attempts := make(chan attempt, len(d.engines))
	var wg sync.WaitGroup

	for i, eng := range d.engines {
		wg.Add(1)
		go func(e Engine, delay time.Duration) {
			defer wg.Done()
			if delay > 0 {
				t := time.NewTimer(delay)
				defer t.Stop()
				select {
				case <-raceCtx.Done():
					return
				case <-t.C:
				}
			}
			if raceCtx.Err() != nil {
				return
			}
			result, err := e.Fetch(raceCtx, req)
			if err != nil {
				slog.Debug("engine failed", "engine", e.Name(), "url", req.URL, "error", err)
			}
			attempts <- attempt{result: result, err: err}
		}(eng, d.delays[i])
	}

	go func() {
		wg.Wait()
		close(attempts)
	}()

	var errs []error
	for a := range attempts {
		if a.err != nil {
			errs = append(errs, a.err)
			continue
		}
		cancel()
		slog.Debug("engine won race", "engine", a.result.EngineName, "url", req.URL)
		d.memory.Set(domain, a.result.EngineName)
		return a.result, nil
	}

	if len(errs) == 0 {
		return nil, &FetchError{URL: req.URL, Kind: req.Kind, Err: ctx.Err()}
	}
	return nil, errors.Join(errs...)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}

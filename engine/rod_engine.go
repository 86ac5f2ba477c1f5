package engine

import (
	"context"
	"fmt"
)

// RenderFunc renders a page in a real browser. It is provided by the scraper
// package, which owns the browser, so that engine does not import it.
type RenderFunc func(ctx context.Context, req *FetchRequest) (*FetchResult, error)

// RodEngine renders documents in headless Chrome via a RenderFunc.
// Stylesheets are never rendered; the engine refuses them.
type RodEngine struct {
	render RenderFunc
}

func NewRodEngine(render RenderFunc) *RodEngine {
	return &RodEngine{render: render}
}

func (e *RodEngine) Name() string { return "rod" }

func (e *RodEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	if e.render == nil {
		return nil, &FetchError{URL: req.URL, Kind: req.Kind, Err: fmt.Errorf("rod: no browser configured")}
	}
	if req.Kind != KindDocument {
		return nil, &FetchError{URL: req.URL, Kind: req.Kind, Err: fmt.Errorf("rod: only documents can be rendered")}
	}

	result, err := e.render(ctx, req)
	if err != nil {
		return nil, &FetchError{URL: req.URL, Kind: req.Kind, Err: err}
	}
	result.EngineName = e.Name()
	return result, nil
}

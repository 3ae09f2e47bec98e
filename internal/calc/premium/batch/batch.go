// Package batch evaluates many independent calculations in one request.
package batch

import (
	"fmt"

	"nicspectra/internal/calc/calcerr"
	"nicspectra/internal/calc/seismic"
	"nicspectra/internal/calc/wind"
)

// MaxItems bounds a single batch.
const MaxItems = 500

type SeismicBatchInput struct {
	Items []seismic.Input `json:"items"`
}

type SeismicBatchResult struct {
	Results []seismic.Result `json:"results"`
}

type WindBatchInput struct {
	Items []wind.Input `json:"items"`
}

type WindBatchResult struct {
	Results []wind.Result `json:"results"`
}

// run stops at the first failure; the error keeps its kind and names the
// zero-based item index.
func run[I, R any](items []I, calc func(I) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, calcerr.Validation("no items")
	}
	if len(items) > MaxItems {
		return nil, calcerr.Validation("%d items exceed the batch limit of %d", len(items), MaxItems)
	}
	out := make([]R, 0, len(items))
	for i, item := range items {
		res, err := calc(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, res)
	}
	return out, nil
}

func CalculateSeismic(e *seismic.Engine, in SeismicBatchInput) (SeismicBatchResult, error) {
	res, err := run(in.Items, e.Calculate)
	if err != nil {
		return SeismicBatchResult{}, err
	}
	return SeismicBatchResult{Results: res}, nil
}

func CalculateWind(in WindBatchInput) (WindBatchResult, error) {
	res, err := run(in.Items, wind.Calculate)
	if err != nil {
		return WindBatchResult{}, err
	}
	return WindBatchResult{Results: res}, nil
}

package qualitymeasure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

const (
	// batchPageSize is how many patients are loaded per repository page
	// during a batch scan.
	batchPageSize = 500

	// defaultBatchWorkers bounds concurrent evaluations in a batch scan.
	defaultBatchWorkers = 8
)

// BatchItem is one patient's outcome within a batch scan.
type BatchItem struct {
	PatientID uuid.UUID `json:"patient_id"`
	Card      *Card     `json:"card,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// BatchResult summarizes a whole-population scan of one measure.
type BatchResult struct {
	Measure   string      `json:"measure"`
	Evaluated int         `json:"evaluated"`
	Due       int         `json:"due"`
	Satisfied int         `json:"satisfied"`
	Items     []BatchItem `json:"items"`
}

// EvaluateBatch runs one measure across the whole patient population,
// fanning evaluations out over a bounded worker pool. Per-patient failures
// are recorded in the result rather than aborting the scan. Workers <= 0
// selects the default pool size.
func (s *Service) EvaluateBatch(ctx context.Context, key string, period MeasurementPeriod, workers int) (*BatchResult, error) {
	m, ok := s.measures[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMeasure, key)
	}
	if !period.Valid() {
		return nil, fmt.Errorf("invalid measurement period")
	}
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	result := &BatchResult{Measure: key}
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, workers)
	)

	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			break
		}
		page, total, err := s.patients.List(ctx, batchPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("list patients: %w", err)
		}
		for _, p := range page {
			p := p
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				item := BatchItem{PatientID: p.ID}
				if err := ctx.Err(); err != nil {
					item.Error = err.Error()
				} else {
					item.Card = m.Evaluate(ctx, p, period)
				}
				mu.Lock()
				result.Items = append(result.Items, item)
				mu.Unlock()
			}()
		}
		offset += len(page)
		if offset >= total || len(page) == 0 {
			break
		}
	}
	wg.Wait()

	sort.Slice(result.Items, func(i, j int) bool {
		return result.Items[i].PatientID.String() < result.Items[j].PatientID.String()
	})
	for _, item := range result.Items {
		if item.Card == nil {
			continue
		}
		result.Evaluated++
		switch item.Card.Status {
		case StatusDue:
			result.Due++
		case StatusSatisfied:
			result.Satisfied++
		}
	}
	s.log.Info().
		Str("measure", key).
		Int("evaluated", result.Evaluated).
		Int("due", result.Due).
		Msg("batch evaluation complete")
	return result, nil
}

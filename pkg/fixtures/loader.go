// Package fixtures loads the seed CRM dataset: seven independently
// retrievable JSON resources served by the fixture backend. Hydration is
// all-or-nothing; one failed resource fails the whole load.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Resource names, relative to the source root
const (
	ResourceCustomers      = "customers.json"
	ResourceOpportunities  = "opportunities.json"
	ResourceCommunications = "communications.json"
	ResourceTasks          = "tasks.json"
	ResourceEvents         = "events.json"
	ResourceReports        = "reports.json"
	ResourceAnalytics      = "analytics.json"
)

// Source retrieves one named fixture resource as raw JSON
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Loader fetches all fixture resources and assembles a store payload
type Loader struct {
	source Source
	logger ectologger.Logger
}

// NewLoader creates a loader over the given source
func NewLoader(source Source, logger ectologger.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

// Load fetches all seven resources concurrently and decodes them into a
// payload. Decoding is lenient: unknown fields are ignored and missing
// fields come back as zero values, matching the optimistic field access of
// the fixture contract.
func (l *Loader) Load(ctx context.Context) (store.Payload, error) {
	ctx, span := tracing.StartSpan(ctx, "fixtures.Loader.Load")
	defer span.End()

	var payload store.Payload

	targets := []struct {
		name   string
		decode func([]byte) error
	}{
		{ResourceCustomers, into(&payload.Customers)},
		{ResourceOpportunities, into(&payload.Opportunities)},
		{ResourceCommunications, into(&payload.Communications)},
		{ResourceTasks, into(&payload.Tasks)},
		{ResourceEvents, into(&payload.Events)},
		{ResourceReports, into(&payload.Reports)},
		{ResourceAnalytics, into(&payload.Analytics)},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(targets))

	for i, target := range targets {
		wg.Add(1)
		go func(i int, name string, decode func([]byte) error) {
			defer wg.Done()

			data, err := l.source.Fetch(ctx, name)
			if err != nil {
				errs[i] = fmt.Errorf("fetch %s: %w", name, err)
				return
			}
			if err := decode(data); err != nil {
				errs[i] = fmt.Errorf("decode %s: %w", name, err)
			}
		}(i, target.name, target.decode)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			l.logger.WithContext(ctx).WithError(err).Error("Fixture load failed")
			return store.Payload{}, err
		}
	}

	l.logger.WithContext(ctx).WithFields(map[string]any{
		"customers":     len(payload.Customers),
		"opportunities": len(payload.Opportunities),
		"events":        len(payload.Events),
	}).Info("Fixture dataset loaded")

	return payload, nil
}

// Hydrate loads the dataset and applies it to the store, recording a load
// failure on the store when anything goes wrong.
func (l *Loader) Hydrate(ctx context.Context, s *store.Store) error {
	payload, err := l.Load(ctx)
	if err != nil {
		s.MarkLoadFailed(err)
		return err
	}
	s.Hydrate(payload)
	return nil
}

func into(v any) func([]byte) error {
	return func(data []byte) error {
		return json.Unmarshal(data, v)
	}
}

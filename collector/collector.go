package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"meteoroloji/datasource"
	"meteoroloji/logger"
	"meteoroloji/models"
)

// Reading is one observation fetched for a location.
type Reading struct {
	Location    models.Location
	Observation models.Observation
	FetchedAt   time.Time
}

// ObservationCollector polls the latest observation of a set of locations
type ObservationCollector struct {
	source       datasource.WeatherSource
	outputChan   chan Reading
	errorChan    chan error
	locations    []models.Location
	interval     time.Duration
	fetchTimeout time.Duration
}

// NewObservationCollector creates a new collector for the provided locations
func NewObservationCollector(source datasource.WeatherSource, locations []models.Location) *ObservationCollector {
	return &ObservationCollector{
		source:       source,
		outputChan:   make(chan Reading, 100),
		errorChan:    make(chan error, 100),
		locations:    locations,
		interval:     15 * time.Minute,
		fetchTimeout: 10 * time.Second,
	}
}

// SetInterval changes how often each location is polled
func (oc *ObservationCollector) SetInterval(interval time.Duration) {
	oc.interval = interval
}

// SetFetchTimeout changes the timeout for a single request
func (oc *ObservationCollector) SetFetchTimeout(timeout time.Duration) {
	oc.fetchTimeout = timeout
}

// OutputChannel returns the channel that emits readings
func (oc *ObservationCollector) OutputChannel() <-chan Reading {
	return oc.outputChan
}

// ErrorChannel returns the channel that emits errors. Errors keep their
// datasource classification.
func (oc *ObservationCollector) ErrorChannel() <-chan error {
	return oc.errorChan
}

// Start begins polling every location. Both channels are closed once
// polling has stopped. The returned function stops polling and waits for it.
func (oc *ObservationCollector) Start(ctx context.Context) func() {
	collectionCtx, cancelCollection := context.WithCancel(ctx)

	var wg sync.WaitGroup
	for _, loc := range oc.locations {
		wg.Add(1)
		go oc.poll(collectionCtx, &wg, loc)
	}

	go func() {
		wg.Wait()
		close(oc.outputChan)
		close(oc.errorChan)
	}()

	return func() {
		cancelCollection()
		wg.Wait()
	}
}

// poll fetches immediately and then on every tick until ctx is done
func (oc *ObservationCollector) poll(ctx context.Context, wg *sync.WaitGroup, loc models.Location) {
	defer wg.Done()

	ticker := time.NewTicker(oc.interval)
	defer ticker.Stop()

	oc.fetchOnce(ctx, loc)
	for {
		select {
		case <-ticker.C:
			oc.fetchOnce(ctx, loc)
		case <-ctx.Done():
			return
		}
	}
}

func (oc *ObservationCollector) fetchOnce(ctx context.Context, loc models.Location) {
	fetchCtx, cancel := context.WithTimeout(ctx, oc.fetchTimeout)
	defer cancel()

	obs, err := oc.source.LatestObservation(fetchCtx, loc)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		select {
		case oc.errorChan <- fmt.Errorf("error fetching from %s for %s: %w", oc.source.Name(), loc.DisplayName(), err):
		default:
			logger.Warnf("Dropping error for %s, error channel is full: %v", loc.DisplayName(), err)
		}
		return
	}

	select {
	case oc.outputChan <- Reading{Location: loc, Observation: obs, FetchedAt: time.Now()}:
	case <-ctx.Done():
	}
}

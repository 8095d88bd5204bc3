package chbased

// Async event push with channel based request dispatcher

import (
	"context"
	"fmt"

	"github.com/containerd/log"

	"github.com/localdev/statistics/pkg/stats"
)

// Holds the values accumulated by the dispatcher
type statsValues struct {
	sum     float64
	samples []float64
	freq    stats.Frequencies
}

type queryKind int

const (
	queryCount queryKind = iota
	queryMean
	queryMedian
	queryMode
)

type answer struct {
	count int
	value float64
	err   error
}

type answerChan chan answer

type request struct {
	kind queryKind
	resp answerChan
}

// Holds the communication channels. All state lives in the dispatcher.
type channelBasedStats struct {
	eventChan chan float64
	reqChan   chan request
	done      <-chan struct{}
}

// Event queues a value for the dispatcher. It only blocks when the queue is
// full, and a query issued after Event returns still observes the value since
// the dispatcher drains queued events before answering.
func (s *channelBasedStats) Event(ctx context.Context, x float64) error {
	select {
	case <-s.done:
		return stats.ErrClosed
	default:
	}
	select {
	case s.eventChan <- x:
		log.G(ctx).WithField("value", x).Debug("event queued")
		return nil
	case <-s.done:
		return stats.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Count returns the number of events processed by the dispatcher.
func (s *channelBasedStats) Count(ctx context.Context) (int, error) {
	a, err := s.query(ctx, queryCount)
	if err != nil {
		return 0, err
	}
	return a.count, nil
}

// Mean returns the mean of the recorded events.
func (s *channelBasedStats) Mean(ctx context.Context) (float64, error) {
	return s.value(ctx, queryMean)
}

// Median returns the median of the recorded events.
func (s *channelBasedStats) Median(ctx context.Context) (float64, error) {
	return s.value(ctx, queryMedian)
}

// Mode returns the most frequent recorded value.
func (s *channelBasedStats) Mode(ctx context.Context) (float64, error) {
	return s.value(ctx, queryMode)
}

func (s *channelBasedStats) value(ctx context.Context, kind queryKind) (float64, error) {
	a, err := s.query(ctx, kind)
	if err != nil {
		return 0, err
	}
	return a.value, a.err
}

// query sends a request to the dispatcher and waits for its answer.
func (s *channelBasedStats) query(ctx context.Context, kind queryKind) (answer, error) {
	select {
	case <-s.done:
		return answer{}, stats.ErrClosed
	default:
	}
	req := request{kind: kind, resp: make(answerChan, 1)}
	select {
	case s.reqChan <- req: // Send request
	case <-s.done:
		return answer{}, stats.ErrClosed
	case <-ctx.Done():
		return answer{}, ctx.Err()
	}
	select {
	case response := <-req.resp: // Wait for response
		return response, nil
	case <-s.done:
		return answer{}, stats.ErrClosed
	case <-ctx.Done():
		return answer{}, ctx.Err()
	}
}

// NewStats returns a statistics calculator served by a dispatcher goroutine.
// The goroutine runs until ctx is done; callers must cancel ctx to release it.
func NewStats(ctx context.Context) stats.Statistics {
	statsObj := &channelBasedStats{
		reqChan:   make(chan request, 100),
		eventChan: make(chan float64, 100),
		done:      ctx.Done(),
	}
	go runDispatcherThread(ctx, statsObj)
	return statsObj
}

// Starts the dispatcher
func runDispatcherThread(ctx context.Context, s *channelBasedStats) {
	logger := log.G(ctx)
	logger.Debug("starting channel based statistics dispatcher")

	curr := statsValues{freq: stats.Frequencies{}}
	for {
		select {
		case <-ctx.Done(): // If caller chain cancelled
			logger.WithField("count", len(curr.samples)).Debug("context cancelled, stopping dispatcher")
			return
		case event := <-s.eventChan:
			curr.add(event)
		case req := <-s.reqChan:
			drainEvents(s.eventChan, &curr)
			req.resp <- curr.answer(req.kind)
		}
	}
}

// drainEvents applies every event already queued without blocking.
func drainEvents(events <-chan float64, curr *statsValues) {
	for {
		select {
		case event := <-events:
			curr.add(event)
		default:
			return
		}
	}
}

// add folds one event into the running sum and frequency table
func (v *statsValues) add(event float64) {
	v.sum += event
	v.samples = append(v.samples, event)
	v.freq.Add(event)
}

// answer serves a query from the accumulated state. Only the median needs
// the samples, everything else comes from the running values.
func (v *statsValues) answer(kind queryKind) answer {
	n := len(v.samples)
	switch kind {
	case queryCount:
		return answer{count: n}
	case queryMean:
		if n == 0 {
			return answer{err: fmt.Errorf("mean: %w", stats.ErrEmptyInput)}
		}
		return answer{count: n, value: v.sum / float64(n)}
	case queryMedian:
		median, err := stats.Median(v.samples)
		return answer{count: n, value: median, err: err}
	case queryMode:
		mode, err := v.freq.Mode()
		return answer{count: n, value: mode, err: err}
	default:
		return answer{err: fmt.Errorf("unknown query kind %d", kind)}
	}
}

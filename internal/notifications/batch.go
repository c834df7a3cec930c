package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	"github.com/KirkDiggler/spot-the-spy/internal/metrics"
)

// DeliveryFailure is one notification that did not reach the platform
type DeliveryFailure struct {
	Kind   string
	Handle entities.MessageHandle
	Err    error
}

func (f DeliveryFailure) Error() string {
	return fmt.Sprintf("%s to %s/%s: %v", f.Kind, f.Handle.ChannelID, f.Handle.MessageID, f.Err)
}

func (f DeliveryFailure) Unwrap() error {
	return f.Err
}

// Batch sends a group of notifications concurrently and collects the ones
// that failed. Failures are logged and counted, never returned as errors.
type Batch struct {
	ctx      context.Context
	gameID   string
	recorder metrics.Recorder
	group    errgroup.Group

	mu       sync.Mutex
	failures []DeliveryFailure
}

// NewBatch starts a batch for one game
func NewBatch(ctx context.Context, gameID string, recorder metrics.Recorder) *Batch {
	if recorder == nil {
		recorder = metrics.Noop()
	}
	return &Batch{
		ctx:      ctx,
		gameID:   gameID,
		recorder: recorder,
	}
}

// Go schedules send. A handle that was never attached is skipped.
func (b *Batch) Go(kind string, handle entities.MessageHandle, send func(ctx context.Context) error) {
	if handle.IsZero() {
		log.Debug().
			Str("game_id", b.gameID).
			Str("kind", kind).
			Msg("skipping notification for unattached message")
		return
	}

	b.group.Go(func() error {
		if err := send(b.ctx); err != nil {
			log.Warn().Err(err).
				Str("game_id", b.gameID).
				Str("kind", kind).
				Str("channel_id", handle.ChannelID).
				Str("message_id", handle.MessageID).
				Msg("notification delivery failed")
			b.recorder.NotificationFailed(kind)

			b.mu.Lock()
			b.failures = append(b.failures, DeliveryFailure{Kind: kind, Handle: handle, Err: err})
			b.mu.Unlock()
		}
		return nil
	})
}

// Wait blocks until every scheduled send returned
func (b *Batch) Wait() []DeliveryFailure {
	_ = b.group.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

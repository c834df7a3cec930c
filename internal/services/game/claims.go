package game

import (
	"context"
	"sync"
)

// gameClaims hands out one claim per game at a time. A second caller for the
// same game waits until the first releases, then sees whatever state it left.
type gameClaims struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func newGameClaims() *gameClaims {
	return &gameClaims{held: make(map[string]chan struct{})}
}

func (c *gameClaims) claim(ctx context.Context, gameID string) (release func(), err error) {
	for {
		c.mu.Lock()
		busy, taken := c.held[gameID]
		if !taken {
			done := make(chan struct{})
			c.held[gameID] = done
			c.mu.Unlock()

			return func() {
				c.mu.Lock()
				delete(c.held, gameID)
				c.mu.Unlock()
				close(done)
			}, nil
		}
		c.mu.Unlock()

		select {
		case <-busy:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

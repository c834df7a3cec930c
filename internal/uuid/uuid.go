// uuid simple generator that allows mocking
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator is an interface for generating ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// GameIDGenerator builds game ids as "<unix millis>-<random suffix>". The
// timestamp keeps ids sortable in logs, the suffix keeps two lobbies opened in
// the same millisecond apart.
type GameIDGenerator struct {
	now func() time.Time
}

// NewGameIDGenerator creates a GameIDGenerator using the wall clock
func NewGameIDGenerator() *GameIDGenerator {
	return &GameIDGenerator{now: time.Now}
}

// NewGameIDGeneratorWithClock is used by tests that need stable timestamps
func NewGameIDGeneratorWithClock(now func() time.Time) *GameIDGenerator {
	return &GameIDGenerator{now: now}
}

// New generates a new game id
func (g *GameIDGenerator) New() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
	return fmt.Sprintf("%d-%s", g.now().UnixMilli(), suffix)
}

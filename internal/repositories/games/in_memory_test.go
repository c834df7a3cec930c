package games_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spot-the-spy/internal/repositories/games"
)

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{newRepo: games.NewInMemoryRepository})
}

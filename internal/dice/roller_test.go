package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/spot-the-spy/internal/dice"
	mockdice "github.com/KirkDiggler/spot-the-spy/internal/dice/mock"
)

func TestRandomRoller_IntNStaysInRange(t *testing.T) {
	roller := dice.NewRandomRoller()
	for i := 0; i < 1000; i++ {
		v := roller.IntN(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestShuffle(t *testing.T) {
	t.Run("zero rolls rotate deterministically", func(t *testing.T) {
		// every swap picks index 0: [a b c d] -> swap(3,0) -> [d b c a]
		// -> swap(2,0) -> [c b d a] -> swap(1,0) -> [b c d a]
		roller := mockdice.NewManualMockRoller()
		got := dice.ShuffledCopy(roller, []string{"a", "b", "c", "d"})
		assert.Equal(t, []string{"b", "c", "d", "a"}, got)
		assert.Equal(t, 3, roller.Calls())
	})

	t.Run("max rolls keep the order", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller(3, 2, 1)
		got := dice.ShuffledCopy(roller, []string{"a", "b", "c", "d"})
		assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		in := []int{1, 2, 3, 4, 5}
		_ = dice.ShuffledCopy(dice.NewRandomRoller(), in)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, in)
	})

	t.Run("is roughly uniform", func(t *testing.T) {
		roller := dice.NewRandomRoller()
		counts := make(map[string]int)
		const rounds = 6000
		for i := 0; i < rounds; i++ {
			p := dice.ShuffledCopy(roller, []string{"a", "b", "c"})
			counts[p[0]+p[1]+p[2]]++
		}
		require.Len(t, counts, 6)
		for perm, c := range counts {
			assert.InDelta(t, rounds/6, c, rounds/6*0.25, "permutation %s", perm)
		}
	})
}

func TestSample(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	t.Run("returns distinct members", func(t *testing.T) {
		got := dice.Sample(dice.NewRandomRoller(), items, 3)
		require.Len(t, got, 3)
		seen := map[string]bool{}
		for _, g := range got {
			assert.Contains(t, items, g)
			assert.False(t, seen[g])
			seen[g] = true
		}
	})

	t.Run("scripted picks", func(t *testing.T) {
		// i=0 picks 0+4 -> e, i=1 picks 1+0 -> b
		got := dice.Sample(mockdice.NewManualMockRoller(4, 0), items, 2)
		assert.Equal(t, []string{"e", "b"}, got)
	})

	t.Run("clamps k", func(t *testing.T) {
		assert.Len(t, dice.Sample(dice.NewRandomRoller(), items, 9), 5)
	})
}

func TestPick(t *testing.T) {
	assert.Equal(t, "c", dice.Pick(mockdice.NewManualMockRoller(2), []string{"a", "b", "c"}))
}

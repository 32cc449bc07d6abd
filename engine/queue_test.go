package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/shape"
)

func TestNewQueueDistinctOpening(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		q, first := NewQueue(rand.New(rand.NewSource(seed)))
		require.Equal(t, constants.QueueLength, q.Len())

		seen := map[shape.ID]bool{first: true}
		for _, id := range q.Peek() {
			assert.False(t, seen[id], "seed %d: shape %v drawn twice in opening", seed, id)
			seen[id] = true
		}
	}
}

// TestQueueLengthConstant verifies one shape is consumed and one appended per dequeue
func TestQueueLengthConstant(t *testing.T) {
	q, _ := NewQueue(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		before := q.Peek()
		got := q.Next()
		after := q.Peek()

		require.Equal(t, constants.QueueLength, q.Len())
		assert.Equal(t, before[0], got)
		assert.Equal(t, before[1:], after[:len(after)-1])
		assert.Contains(t, shape.All(), after[len(after)-1])
	}
}

func TestQueuePeekIsCopy(t *testing.T) {
	q, _ := NewQueue(rand.New(rand.NewSource(1)))
	p := q.Peek()
	p[0] = shape.ID(99)
	assert.NotEqual(t, shape.ID(99), q.Peek()[0])
}

func TestQueueUsesAllShapes(t *testing.T) {
	q, _ := NewQueue(rand.New(rand.NewSource(3)))
	seen := make(map[shape.ID]bool)
	for i := 0; i < 500; i++ {
		seen[q.Next()] = true
	}
	assert.Len(t, seen, len(shape.All()))
}

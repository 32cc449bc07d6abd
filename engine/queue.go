package engine

import (
	"math/rand"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/shape"
)

// Queue is the fixed-length lookahead of upcoming shapes
type Queue struct {
	items []shape.ID
	rng   *rand.Rand
}

// NewQueue draws the first piece and a full lookahead as distinct shapes,
// then refills uniformly at random on every Next.
func NewQueue(rng *rand.Rand) (*Queue, shape.ID) {
	ids := shape.All()
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	q := &Queue{
		items: append([]shape.ID(nil), ids[1:1+constants.QueueLength]...),
		rng:   rng,
	}
	return q, ids[0]
}

// Next dequeues the front shape and appends one random shape
func (q *Queue) Next() shape.ID {
	front := q.items[0]
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = q.random()
	return front
}

// Peek returns a copy of the upcoming shapes, front first
func (q *Queue) Peek() []shape.ID {
	out := make([]shape.ID, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the queue length
func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) random() shape.ID {
	ids := shape.All()
	return ids[q.rng.Intn(len(ids))]
}

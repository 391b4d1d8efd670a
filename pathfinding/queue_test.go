package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, pq *PriorityQueue[string]) []string {
	t.Helper()
	var out []string
	for pq.Len() > 0 {
		item, err := pq.Dequeue()
		require.NoError(t, err)
		out = append(out, item)
	}
	return out
}

func TestPriorityQueue_Order(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("c", 3)
	pq.Enqueue("a", 1)
	pq.Enqueue("d", 4)
	pq.Enqueue("b", 2)

	assert.Equal(t, 4, pq.Len())
	assert.Equal(t, []string{"a", "b", "c", "d"}, drain(t, pq))
}

func TestPriorityQueue_TiesKeepInsertionOrder(t *testing.T) {
	pq := NewPriorityQueue[string]()
	for _, s := range []string{"first", "second", "third", "fourth"} {
		pq.Enqueue(s, 7)
	}
	pq.Enqueue("early", 1)

	assert.Equal(t, []string{"early", "first", "second", "third", "fourth"}, drain(t, pq))
}

func TestPriorityQueue_Empty(t *testing.T) {
	pq := NewPriorityQueue[int]()

	_, err := pq.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	_, err = pq.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestPriorityQueue_Peek(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("x", 5)
	pq.Enqueue("y", 2)

	item, err := pq.Peek()
	require.NoError(t, err)
	assert.Equal(t, "y", item)
	assert.Equal(t, 2, pq.Len(), "peek must not remove")
}

func TestPriorityQueue_Contains(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("x", 1)

	assert.True(t, pq.Contains("x"))
	assert.False(t, pq.Contains("y"))

	_, err := pq.Dequeue()
	require.NoError(t, err)
	assert.False(t, pq.Contains("x"))
}

func TestPriorityQueue_UpdatePriority(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 2)
	pq.Enqueue("c", 3)

	pq.UpdatePriority("c", 0)   // decrease
	pq.UpdatePriority("a", 10)  // increase
	pq.UpdatePriority("new", 5) // absent items are inserted

	assert.Equal(t, 4, pq.Len())
	assert.Equal(t, []string{"c", "b", "new", "a"}, drain(t, pq))
}

func TestPriorityQueue_EnqueueExistingMoves(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("a", 5)
	pq.Enqueue("b", 3)
	pq.Enqueue("a", 1)

	assert.Equal(t, 2, pq.Len())
	assert.Equal(t, []string{"a", "b"}, drain(t, pq))
}

func TestPriorityQueue_UpdateIsNewestOnTie(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 1)
	pq.UpdatePriority("a", 1)

	assert.Equal(t, []string{"b", "a"}, drain(t, pq))
}

func TestPriorityQueue_Clear(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 2)
	pq.Clear()

	assert.Zero(t, pq.Len())
	assert.False(t, pq.Contains("a"))
	_, err := pq.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	pq.Enqueue("c", 1)
	assert.Equal(t, []string{"c"}, drain(t, pq))
}

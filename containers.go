package aoc

import (
	"container/heap"
	"fmt"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// While pops values until the stack is empty or f returns false.
// f may push more values.
func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Item is a value queued in a PQ. Its priority P may be changed while it is
// queued as long as PQ.Update is called afterwards.
type Item[T any] struct {
	V  T
	P  int
	ix int
}

func (i *Item[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Queued reports whether i is still in its queue.
func (i *Item[T]) Queued() bool {
	return i.ix >= 0
}

// MinQueue returns a PQ that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{pq: pq[T]{min: true}}
}

// MaxQueue returns a PQ that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{pq: pq[T]{min: false}}
}

// PQ is a binary heap of Items. Ties pop in no particular order.
type PQ[T any] struct {
	pq pq[T]
}

// Push adds v with priority p and returns its handle.
func (pq *PQ[T]) Push(v T, p int) *Item[T] {
	it := &Item[T]{V: v, P: p}
	heap.Push(&pq.pq, it)
	return it
}

// Pop removes and returns the top item. It panics if the queue is empty.
func (pq *PQ[T]) Pop() *Item[T] {
	return heap.Pop(&pq.pq).(*Item[T])
}

// Update restores the heap order after v.P changed.
func (pq *PQ[T]) Update(v *Item[T]) {
	if !v.Queued() {
		panic(fmt.Sprintf("PQ.Update of popped item %v", v))
	}
	heap.Fix(&pq.pq, v.ix)
}

func (pq *PQ[T]) Peek() *Item[T] {
	return pq.pq.q[0]
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] struct {
	q   []*Item[T]
	min bool
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	if pq.min {
		return pq.q[i].P < pq.q[j].P
	}
	return pq.q[i].P > pq.q[j].P
}

func (pq pq[T]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T]) Push(x any) {
	i := x.(*Item[T])
	i.ix = len(pq.q)
	pq.q = append(pq.q, i)
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // marks it popped

	pq.q = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

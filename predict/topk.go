// SPDX-License-Identifier: MIT

package predict

import "container/heap"

// TopK keeps the K best candidates seen so far: highest score first, ties by
// ascending name. Offering is O(log K); memory is O(K).
type TopK struct {
	k int
	h worstFirst
}

// NewTopK returns an empty queue bounded to k entries. k < 1 is treated as 1.
func NewTopK(k int) *TopK {
	if k < 1 {
		k = 1
	}

	return &TopK{k: k, h: make(worstFirst, 0, k)}
}

// Offer proposes a candidate. When the queue is full the current worst entry
// is replaced only by a strictly better candidate.
func (t *TopK) Offer(name string, score int64) {
	c := Candidate{Name: name, Score: score}
	if len(t.h) < t.k {
		heap.Push(&t.h, c)
		return
	}
	if worse(t.h[0], c) {
		t.h[0] = c
		heap.Fix(&t.h, 0)
	}
}

// Len reports the number of kept candidates.
func (t *TopK) Len() int { return len(t.h) }

// Drain empties the queue and returns its content best first.
func (t *TopK) Drain() []Candidate {
	out := make([]Candidate, len(t.h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&t.h).(Candidate)
	}

	return out
}

// worse reports whether a ranks below b.
func worse(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}

	return a.Name > b.Name
}

// worstFirst is a heap whose root is the lowest-ranked candidate.
type worstFirst []Candidate

func (h worstFirst) Len() int            { return len(h) }
func (h worstFirst) Less(i, j int) bool  { return worse(h[i], h[j]) }
func (h worstFirst) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *worstFirst) Push(x interface{}) { *h = append(*h, x.(Candidate)) }
func (h *worstFirst) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}

// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package timeseries

import "sort"

// TopK keeps the k largest values pushed into it using a bounded min-heap:
// the root is always the smallest retained value, so a push either displaces
// the root or is dropped in O(log k).
type TopK[T any] struct {
	k    int
	heap []topkEntry[T]
}

type topkEntry[T any] struct {
	value  T
	weight int64
}

// NewTopK creates a selector retaining the k heaviest entries. k <= 0 retains
// nothing.
func NewTopK[T any](k int) *TopK[T] {
	if k < 0 {
		k = 0
	}
	return &TopK[T]{k: k, heap: make([]topkEntry[T], 0, k)}
}

// Push offers a value with its weight.
func (t *TopK[T]) Push(value T, weight int64) {
	if t.k == 0 {
		return
	}
	if len(t.heap) < t.k {
		t.heap = append(t.heap, topkEntry[T]{value: value, weight: weight})
		t.bubbleUp(len(t.heap) - 1)
		return
	}
	if weight <= t.heap[0].weight {
		return
	}
	t.heap[0] = topkEntry[T]{value: value, weight: weight}
	t.siftDown(0)
}

// Descending returns the retained values ordered by descending weight.
func (t *TopK[T]) Descending() []T {
	entries := make([]topkEntry[T], len(t.heap))
	copy(entries, t.heap)
	sort.Slice(entries, func(i, j int) bool { return entries[i].weight > entries[j].weight })
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

// Len returns the number of retained entries.
func (t *TopK[T]) Len() int { return len(t.heap) }

func (t *TopK[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if t.heap[parent].weight <= t.heap[i].weight {
			break
		}
		t.heap[parent], t.heap[i] = t.heap[i], t.heap[parent]
		i = parent
	}
}

func (t *TopK[T]) siftDown(i int) {
	n := len(t.heap)
	for {
		smallest := i
		if l := 2*i + 1; l < n && t.heap[l].weight < t.heap[smallest].weight {
			smallest = l
		}
		if r := 2*i + 2; r < n && t.heap[r].weight < t.heap[smallest].weight {
			smallest = r
		}
		if smallest == i {
			return
		}
		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}

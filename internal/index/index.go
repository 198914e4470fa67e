// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package index implements a sorted in-memory index over string keys.
package index

import (
	"slices"
	"sort"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a generic sorted array index.
type Index[V any] struct {
	// items are sorted by key. Items with equal keys keep their input order.
	items []item[V]

	cmp func(string, string) int
}

// New creates an index over values using key to compute the indexed string.
// cmp(a, b) should return a negative number when a < b, a positive number when
// a > b and zero when a == b or a and b are incomparable in the sense of a
// strict weak ordering.
func New[V any](values []V, key func(V) string, cmp func(string, string) int) *Index[V] {
	items := make([]item[V], len(values))
	for i, v := range values {
		items[i] = item[V]{key: key(v), value: v}
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return cmp(a.key, b.key)
	})

	return &Index[V]{
		items: items,
		cmp:   cmp,
	}
}

// Len returns the number of indexed values.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search performs a binary search over the index and returns the values whose
// key matches query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.items), func(i int) int {
		return idx.cmp(query, idx.items[i].key)
	})
	if !found {
		return nil
	}

	var result []V
	for j := i; j < len(idx.items) && idx.cmp(query, idx.items[j].key) == 0; j++ {
		result = append(result, idx.items[j].value)
	}
	return result
}

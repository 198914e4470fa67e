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


package wordlist

import (
	"io"
	"iter"
)

// Table maps word indexes to words. Iteration follows the order in which
// indexes were first added. Tables are built once by New and are not
// modified afterwards.
type Table struct {
	words map[uint32][]byte
	order []uint32
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		words: map[uint32][]byte{},
	}
}

// New reads the word list for lang into a Table. When several records share
// an index the last one wins.
func New(r io.ReaderAt, lang Language) (*Table, error) {
	s, err := NewScanner(r, lang)
	if err != nil {
		return nil, err
	}

	t := NewTable()
	for s.Scan() {
		w := s.Word()
		t.Set(w.Index, w.Word)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Set sets the word for index i. Overwriting an index keeps its original
// position in the iteration order.
func (t *Table) Set(i uint32, word []byte) {
	if _, ok := t.words[i]; !ok {
		t.order = append(t.order, i)
	}
	t.words[i] = word
}

// Get returns the word for index i.
func (t *Table) Get(i uint32) ([]byte, bool) {
	w, ok := t.words[i]
	return w, ok
}

// Len returns the number of distinct indexes.
func (t *Table) Len() int {
	return len(t.order)
}

// All iterates over the table in insertion order.
func (t *Table) All() iter.Seq2[uint32, []byte] {
	return func(yield func(uint32, []byte) bool) {
		for _, i := range t.order {
			if !yield(i, t.words[i]) {
				return
			}
		}
	}
}

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


// Package subst learns and applies byte substitution tables.
//
// The Korean text of the record table is encoded differently from the Korean
// word list even though both hold the same words. Aligning the two unit by
// unit gives an empirical substitution table that is then used to repair
// text, such as the field names, that only exists in the record encoding.
package subst

import (
	"github.com/ianlewis/go-eckdic/wordlist"
)

// Map maps units of the record encoding to units of the word list encoding.
type Map struct {
	units map[string][]byte
}

// NewMap returns a Map from the given unit pairs. It is mostly useful for
// tests and for fixed tables.
func NewMap(units map[string][]byte) *Map {
	m := &Map{units: make(map[string][]byte, len(units))}
	for k, v := range units {
		m.units[k] = v
	}
	return m
}

// Substitute returns the replacement for unit. The boolean result is false
// when the unit was never observed.
func (m *Map) Substitute(unit []byte) ([]byte, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.units[string(unit)]
	return v, ok
}

// Len returns the number of units in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.units)
}

// tally counts the observed values for a single unit. values holds each
// distinct value in the order it was first observed.
type tally struct {
	values [][]byte
	counts []int
}

func (t *tally) observe(v []byte) {
	i := 0
	for ; i < len(t.values); i++ {
		if string(t.values[i]) == string(v) {
			break
		}
	}
	if i == len(t.values) {
		t.values = append(t.values, v)
		t.counts = append(t.counts, 0)
	}
	t.counts[i]++
}

// mode returns the most frequent value. Ties go to the value observed first.
func (t *tally) mode() []byte {
	best := 0
	for i, c := range t.counts {
		if c > t.counts[best] {
			best = i
		}
	}
	return t.values[best]
}

// Learn builds a Map by aligning each word in words with the reference text
// at the same index in refs. Words whose reference is missing or differs in
// length are skipped.
//
// A reference byte below 0x80 is a single byte unit. Otherwise the unit is
// two bytes long in both strings.
func Learn(words *wordlist.Table, refs [][]byte) *Map {
	tallies := map[string]*tally{}
	for index, word := range words.All() {
		if uint64(index) >= uint64(len(refs)) {
			continue
		}
		ref := refs[index]
		if len(ref) != len(word) {
			continue
		}

		for i := 0; i < len(word); {
			n := 2
			if ref[i] < 0x80 {
				n = 1
			}
			end := min(i+n, len(word))

			key := string(ref[i:end])
			t, ok := tallies[key]
			if !ok {
				t = &tally{}
				tallies[key] = t
			}
			t.observe(word[i:end])
			i = end
		}
	}

	m := &Map{units: make(map[string][]byte, len(tallies))}
	for k, t := range tallies {
		m.units[k] = t.mode()
	}
	return m
}

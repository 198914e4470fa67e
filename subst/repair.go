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


package subst

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrInvalidException indicates an exception whose replacement would change
// the length of the text.
var ErrInvalidException = errors.New("invalid exception")

// unitSize is the size of the units consumed by Repair.
const unitSize = 2

// Exception is a fixed replacement applied before the substitution table.
// Exceptions cover sequences that never occur in the word list and so are
// never learned.
type Exception struct {
	From []byte
	To   []byte
}

// DefaultExceptions are the known sequences missing from the learned table.
var DefaultExceptions = []Exception{
	{
		// A space padded conjunction missing from the word list.
		From: []byte{0xd4, 0xe9, 0x83, 0xd4},
		To:   []byte{' ', 0xb7, 0xf1, ' '},
	},
	{
		From: []byte(`"$`),
		To:   []byte("TV"),
	},
}

// DefaultPlaceholder replaces units missing from the table.
var DefaultPlaceholder = []byte("??")

// Options are options for a Repairer.
type Options struct {
	// Exceptions are checked in order at every position before the
	// substitution table.
	Exceptions []Exception

	// Placeholder is written in place of units missing from the table.
	Placeholder []byte
}

// DefaultOptions is the default options for a Repairer.
var DefaultOptions = &Options{
	Exceptions:  DefaultExceptions,
	Placeholder: DefaultPlaceholder,
}

// Miss is a unit that was not found in the substitution table.
type Miss struct {
	// Offset is the position of the unit in the input.
	Offset int

	// Unit is the missing unit.
	Unit []byte
}

// String returns the miss as the offset and hex encoded unit.
func (m Miss) String() string {
	return fmt.Sprintf("%d:% x", m.Offset, m.Unit)
}

// Result is the outcome of repairing a single string.
type Result struct {
	// Text is the repaired text. It is always the same length as the input.
	Text []byte

	// Misses are the units that were replaced with the placeholder.
	Misses []Miss
}

// Repairer repairs text using a learned substitution table.
type Repairer struct {
	m           *Map
	exceptions  []Exception
	placeholder []byte
}

// NewRepairer returns a Repairer using m.
func NewRepairer(m *Map, options *Options) (*Repairer, error) {
	if options == nil {
		options = DefaultOptions
	}

	r := &Repairer{
		m:           m,
		exceptions:  options.Exceptions,
		placeholder: options.Placeholder,
	}
	if r.placeholder == nil {
		r.placeholder = DefaultPlaceholder
	}
	if len(r.placeholder) != unitSize {
		return nil, fmt.Errorf("%w: placeholder %q is not %d bytes", ErrInvalidException, r.placeholder, unitSize)
	}
	for _, e := range r.exceptions {
		if len(e.From) == 0 || len(e.From) != len(e.To) {
			return nil, fmt.Errorf("%w: % x => % x", ErrInvalidException, e.From, e.To)
		}
	}
	return r, nil
}

// Repair substitutes every unit of b. Input is consumed two bytes at a time
// apart from exceptions, so single byte characters in b are paired with
// their neighbor.
func (r *Repairer) Repair(b []byte) *Result {
	res := &Result{
		Text: make([]byte, len(b)),
	}

	for i := 0; i < len(b); {
		if e, ok := r.exception(b[i:]); ok {
			copy(res.Text[i:], e.To)
			i += len(e.From)
			continue
		}

		end := min(i+unitSize, len(b))
		unit := b[i:end]
		if v, ok := r.m.Substitute(unit); ok {
			copy(res.Text[i:end], v)
		} else {
			copy(res.Text[i:end], r.placeholder)
			res.Misses = append(res.Misses, Miss{
				Offset: i,
				Unit:   unit,
			})
		}
		i = end
	}

	return res
}

func (r *Repairer) exception(b []byte) (Exception, bool) {
	for _, e := range r.exceptions {
		if bytes.HasPrefix(b, e.From) {
			return e, true
		}
	}
	return Exception{}, false
}

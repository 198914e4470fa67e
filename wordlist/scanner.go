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
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ianlewis/go-eckdic/binread"
)

var (
	// ErrInvalidLanguage indicates an unsupported language identifier.
	ErrInvalidLanguage = errors.New("invalid language identifier")

	// ErrMalformedWord indicates a word record without an index.
	ErrMalformedWord = errors.New("malformed word record")
)

// Language identifies one of the word lists in the file.
type Language int

const (
	// English is the English word list.
	English Language = 0

	// Chinese is the Chinese word list.
	Chinese Language = 4

	// Korean is the Korean word list.
	Korean Language = 6
)

// directory maps a language to the offset of its table pointer.
var directory = map[Language]int64{
	English: 0x4,
	Chinese: 0x10,
	Korean:  0x24,
}

// Languages returns the supported languages in identifier order.
func Languages() []Language {
	return []Language{English, Chinese, Korean}
}

// String returns the language name.
func (l Language) String() string {
	switch l {
	case English:
		return "English"
	case Chinese:
		return "Chinese"
	case Korean:
		return "Korean"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// Word is a word list entry.
type Word struct {
	// Word is the word in the legacy encoding.
	Word []byte

	// Index is the word index shared between tables.
	Index uint32
}

// Scanner scans a language's word list from start to end.
type Scanner struct {
	r     *binread.Reader
	table int64
	count int
	i     int
	word  *Word
	err   error
}

// NewScanner returns a new scanner for the given language's word list. The
// language is validated before anything is read from r.
func NewScanner(r io.ReaderAt, lang Language) (*Scanner, error) {
	ptr, ok := directory[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLanguage, int(lang))
	}

	br := binread.New(r)
	table, err := br.Uint32(ptr)
	if err != nil {
		return nil, fmt.Errorf("reading %v table pointer: %w", lang, err)
	}
	size, err := br.Uint32(int64(table))
	if err != nil {
		return nil, fmt.Errorf("reading %v table size: %w", lang, err)
	}

	return &Scanner{
		r:     br,
		table: int64(table),
		count: int(size >> 2),
	}, nil
}

// Len returns the number of entries in the offset table.
func (s *Scanner) Len() int {
	return s.count
}

// Scan advances to the next word. It returns false if the scan stops either
// by reaching the end of the table or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.i >= s.count {
		return false
	}
	s.word, s.err = s.read(s.i)
	s.i++
	return s.err == nil
}

// Word returns the current word.
func (s *Scanner) Word() *Word {
	return s.word
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) read(i int) (*Word, error) {
	offset, err := s.r.Uint32(s.table + int64(i)*4)
	if err != nil {
		return nil, fmt.Errorf("reading offset %d: %w", i, err)
	}
	pos := s.table + int64(offset)

	n, err := s.r.Uint8(pos)
	if err != nil {
		return nil, fmt.Errorf("reading word %d length: %w", i, err)
	}
	b, err := s.r.Bytes(pos+1, int(n))
	if err != nil {
		return nil, fmt.Errorf("reading word %d: %w", i, err)
	}

	j := bytes.IndexByte(b, 0)
	if j < 0 {
		return nil, fmt.Errorf("%w: word %d at %d has no terminator", ErrMalformedWord, i, pos)
	}
	index, err := binread.Uint32(b, j+1)
	if err != nil {
		return nil, fmt.Errorf("reading word %d index: %w", i, err)
	}

	return &Word{
		Word:  b[:j],
		Index: index,
	}, nil
}

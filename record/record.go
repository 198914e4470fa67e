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


// Package record implements reading the encoded record table of an
// eckdata.dic file.
//
// The first 32-bit value of the file is the offset of the record table. The
// record table is laid out like the word lists: a 32-bit table size followed
// by 32-bit offsets relative to the table start. Each record is a 16-bit
// length followed by four null terminated fields: English, Chinese, Korean
// and the field (subject area) name. The record at position i belongs to
// word index i.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ianlewis/go-eckdic/binread"
)

// ErrMalformedRecord indicates a record that does not hold exactly four null
// terminated fields.
var ErrMalformedRecord = errors.New("malformed record")

// numParts is the number of parts produced by splitting a record on null
// bytes. The last part follows the final terminator and is discarded.
const numParts = 5

// Record is an encoded dictionary record.
type Record struct {
	English []byte
	Chinese []byte
	Korean  []byte

	// Field is the subject area of the entry.
	Field []byte
}

// Scanner scans the record table from start to end.
type Scanner struct {
	r      *binread.Reader
	header int64
	count  int
	i      int
	record *Record
	err    error
}

// NewScanner returns a new record table scanner.
func NewScanner(r io.ReaderAt) (*Scanner, error) {
	br := binread.New(r)
	header, err := br.Uint32(0)
	if err != nil {
		return nil, fmt.Errorf("reading header size: %w", err)
	}
	size, err := br.Uint32(int64(header))
	if err != nil {
		return nil, fmt.Errorf("reading record table size: %w", err)
	}

	return &Scanner{
		r:      br,
		header: int64(header),
		count:  int(size / 4),
	}, nil
}

// Len returns the number of records in the table.
func (s *Scanner) Len() int {
	return s.count
}

// Scan advances to the next record. It returns false if the scan stops either
// by reaching the end of the table or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.i >= s.count {
		return false
	}
	s.record, s.err = s.read(s.i)
	s.i++
	return s.err == nil
}

// Record returns the current record.
func (s *Scanner) Record() *Record {
	return s.record
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) read(i int) (*Record, error) {
	offset, err := s.r.Uint32(s.header + int64(i)*4)
	if err != nil {
		return nil, fmt.Errorf("reading record %d offset: %w", i, err)
	}
	pos := s.header + int64(offset)

	n, err := s.r.Uint16(pos)
	if err != nil {
		return nil, fmt.Errorf("reading record %d length: %w", i, err)
	}
	b, err := s.r.Bytes(pos+2, int(n))
	if err != nil {
		return nil, fmt.Errorf("reading record %d: %w", i, err)
	}

	parts := bytes.Split(b, []byte{0})
	if len(parts) != numParts {
		return nil, fmt.Errorf("%w: record %d at %d has %d parts", ErrMalformedRecord, i, pos, len(parts))
	}

	return &Record{
		English: parts[0],
		Chinese: parts[1],
		Korean:  parts[2],
		Field:   parts[3],
	}, nil
}

// ReadAll reads every record in file order. The first malformed record
// aborts the read.
func ReadAll(r io.ReaderAt) ([]*Record, error) {
	s, err := NewScanner(r)
	if err != nil {
		return nil, err
	}

	var records []*Record
	for s.Scan() {
		records = append(records, s.Record())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Korean returns the Korean text of each record by position.
func Korean(records []*Record) [][]byte {
	out := make([][]byte, len(records))
	for i, r := range records {
		out[i] = r.Korean
	}
	return out
}

// Fields returns the field text of each record by position.
func Fields(records []*Record) [][]byte {
	out := make([][]byte, len(records))
	for i, r := range records {
		out[i] = r.Field
	}
	return out
}

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


// Package binread reads fixed-width little-endian integers from byte slices
// and from random-access files.
//
// Every read in this package addresses an absolute offset. Nothing keeps a
// cursor between reads so callers may read fields in any order.
package binread

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrOutOfBounds indicates that a read extends past the end of the data.
var ErrOutOfBounds = errors.New("read out of bounds")

// Uint16 returns the little-endian uint16 at off in b.
func Uint16(b []byte, off int) (uint16, error) {
	if off < 0 || len(b)-off < 2 {
		return 0, fmt.Errorf("%w: uint16 at %d, length %d", ErrOutOfBounds, off, len(b))
	}
	return binary.LittleEndian.Uint16(b[off:]), nil
}

// Uint32 returns the little-endian uint32 at off in b.
func Uint32(b []byte, off int) (uint32, error) {
	if off < 0 || len(b)-off < 4 {
		return 0, fmt.Errorf("%w: uint32 at %d, length %d", ErrOutOfBounds, off, len(b))
	}
	return binary.LittleEndian.Uint32(b[off:]), nil
}

// Reader reads fields at absolute offsets of an underlying io.ReaderAt.
type Reader struct {
	r io.ReaderAt
}

// New returns a Reader reading from r. The Reader does not take ownership of
// r; closing it is the caller's responsibility.
func New(r io.ReaderAt) *Reader {
	return &Reader{r: r}
}

// Bytes reads exactly n bytes at off.
func (r *Reader) Bytes(off int64, n int) ([]byte, error) {
	if off < 0 || n < 0 {
		return nil, fmt.Errorf("%w: %d bytes at %d", ErrOutOfBounds, n, off)
	}
	b := make([]byte, n)
	read, err := r.r.ReadAt(b, off)
	if read == n {
		// NOTE: ReaderAt may return io.EOF along with a full read at the end
		// of the file.
		return b, nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: %d bytes at %d, got %d", ErrOutOfBounds, n, off, read)
	}
	return nil, fmt.Errorf("reading %d bytes at %d: %w", n, off, err)
}

// Uint8 reads a single byte at off.
func (r *Reader) Uint8(off int64) (uint8, error) {
	b, err := r.Bytes(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a little-endian uint16 at off.
func (r *Reader) Uint16(off int64) (uint16, error) {
	b, err := r.Bytes(off, 2)
	if err != nil {
		return 0, err
	}
	return Uint16(b, 0)
}

// Uint32 reads a little-endian uint32 at off.
func (r *Reader) Uint32(off int64) (uint32, error) {
	b, err := r.Bytes(off, 4)
	if err != nil {
		return 0, err
	}
	return Uint32(b, 0)
}

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


// Package legacy decodes text in the dictionary's legacy Korean double-byte
// encoding.
package legacy

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Decoder converts legacy encoded text to UTF-8.
type Decoder struct {
	enc encoding.Encoding
}

// New returns a Decoder for the given encoding. A nil encoding selects the
// Korean double-byte encoding used by the dictionary.
func New(enc encoding.Encoding) *Decoder {
	if enc == nil {
		enc = korean.EUCKR
	}
	return &Decoder{enc: enc}
}

// Decode converts b to a UTF-8 string. Invalid sequences are replaced with
// the Unicode replacement character.
func (d *Decoder) Decode(b []byte) (string, error) {
	s, _, err := transform.Bytes(d.enc.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("decoding % x: %w", b, err)
	}
	return string(s), nil
}

// Encode converts a UTF-8 string back to the legacy encoding.
func (d *Decoder) Encode(s string) ([]byte, error) {
	b, _, err := transform.Bytes(d.enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", s, err)
	}
	return b, nil
}

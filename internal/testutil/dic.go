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


package testutil

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// headerSize is the size of the language directory at the start of the file.
const headerSize = 0x28

// directory maps language identifiers to the offset of their table pointer.
var directory = map[int]int{
	0: 0x4,
	4: 0x10,
	6: 0x24,
}

// Word is a word list entry in a test file.
type Word struct {
	Word  []byte
	Index uint32
}

// Record is an encoded record in a test file.
type Record struct {
	English []byte
	Chinese []byte
	Korean  []byte
	Field   []byte
}

// Dic describes the contents of a test dictionary file.
type Dic struct {
	// Words are the word lists keyed by language identifier. Languages
	// without words get an empty table.
	Words map[int][]*Word

	// Records are the encoded records in file order.
	Records []*Record

	// RawRecords, when set, are written instead of Records. Each raw record
	// is written after its 16-bit length as is.
	RawRecords [][]byte
}

// MakeDic makes a test dictionary file.
func MakeDic(d *Dic) []byte {
	b := make([]byte, headerSize)

	langs := make([]int, 0, len(directory))
	for lang := range directory {
		langs = append(langs, lang)
	}
	sort.Ints(langs)

	for _, lang := range langs {
		var records [][]byte
		for _, w := range d.Words[lang] {
			rec := append([]byte{}, w.Word...)
			rec = append(rec, 0) // Add the zero byte terminator.
			rec = binary.LittleEndian.AppendUint32(rec, w.Index)
			if len(rec) > math.MaxUint8 {
				panic(fmt.Sprintf("word too long: %d", len(rec)))
			}
			records = append(records, append([]byte{byte(len(rec))}, rec...))
		}
		putUint32(b, directory[lang], len(b))
		b = appendTable(b, records)
	}

	raw := d.RawRecords
	if raw == nil {
		for _, r := range d.Records {
			var rec []byte
			for _, f := range [][]byte{r.English, r.Chinese, r.Korean, r.Field} {
				rec = append(rec, f...)
				rec = append(rec, 0)
			}
			raw = append(raw, rec)
		}
	}
	var records [][]byte
	for _, rec := range raw {
		if len(rec) > math.MaxUint16 {
			panic(fmt.Sprintf("record too long: %d", len(rec)))
		}
		records = append(records, binary.LittleEndian.AppendUint16(nil, uint16(len(rec))))
		records[len(records)-1] = append(records[len(records)-1], rec...)
	}
	putUint32(b, 0, len(b))
	b = appendTable(b, records)

	return b
}

// MakeTempDic writes a test dictionary file to a temporary directory and
// returns its path.
func MakeTempDic(t *testing.T, d *Dic) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "eckdata.dic")
	if err := os.WriteFile(path, MakeDic(d), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// appendTable appends an offset table followed by its records. The first
// offset is the table size since the first record follows the table.
func appendTable(b []byte, records [][]byte) []byte {
	tableSize := 4 * len(records)
	if len(records) == 0 {
		// An empty table still holds its zero size.
		return binary.LittleEndian.AppendUint32(b, 0)
	}

	offset := tableSize
	for _, rec := range records {
		b = binary.LittleEndian.AppendUint32(b, uint32(offset))
		offset += len(rec)
	}
	for _, rec := range records {
		b = append(b, rec...)
	}
	return b
}

func putUint32(b []byte, off, v int) {
	if v > math.MaxUint32 {
		panic(fmt.Sprintf("value too large: %d", v))
	}
	//nolint:gosec // bounds checked above.
	binary.LittleEndian.PutUint32(b[off:], uint32(v))
}

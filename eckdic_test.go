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


package eckdic

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-eckdic/export"
	"github.com/ianlewis/go-eckdic/glossary"
	"github.com/ianlewis/go-eckdic/internal/testutil"
	"github.com/ianlewis/go-eckdic/record"
	"github.com/ianlewis/go-eckdic/wordlist"
)

// testDic returns a dictionary whose record table encodes 한 as 90 11 and 국
// as 91 12.
func testDic() *testutil.Dic {
	return &testutil.Dic{
		Words: map[int][]*testutil.Word{
			0: {
				{Word: []byte("han"), Index: 1},
				{Word: []byte("guk"), Index: 2},
			},
			4: {
				{Word: []byte{0xc7, 0xd1}, Index: 1},
			},
			6: {
				{Word: []byte{0xc7, 0xd1}, Index: 1},
				{Word: []byte{0xb1, 0xb9}, Index: 2},
			},
		},
		Records: []*testutil.Record{
			{
				English: []byte("unused"),
				Korean:  []byte{},
				Field:   []byte{0x99, 0x99},
			},
			{
				English: []byte("han"),
				Korean:  []byte{0x90, 0x11},
				Field:   []byte{0x90, 0x11, 0x91, 0x12},
			},
			{
				English: []byte("guk"),
				Korean:  []byte{0x91, 0x12},
				Field:   []byte("\x91\x12\"$"),
			},
		},
	}
}

var expectedEntries = []*glossary.Entry{
	{Key: "guk", Value: "국\n\n(국TV)"},
	{Key: "han", Value: "한\n\n(한국)"},
	{Key: "국", Value: "guk\n\n(국TV)"},
	{Key: "한", Value: "han\n\n(한국)"},
}

// TestDictionary_Build tests building a glossary end to end.
func TestDictionary_Build(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d := New(bytes.NewReader(testutil.MakeDic(testDic())))
	res, err := d.Build(&Options{Logger: logger})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if diff := cmp.Diff(expectedEntries, res.Entries); diff != "" {
		t.Errorf("Build entries (-want, +got):\n%s", diff)
	}

	expectedStats := Stats{
		EnglishWords: 2,
		KoreanWords:  2,
		Records:      3,
		Units:        2,
		Misses:       1,
		Entries:      4,
	}
	if diff := cmp.Diff(expectedStats, res.Stats); diff != "" {
		t.Errorf("Build stats (-want, +got):\n%s", diff)
	}

	if !strings.Contains(logs.String(), "substitution miss") {
		t.Errorf("Build: substitution miss not logged:\n%s", logs.String())
	}
}

// TestDictionary_Build_deterministic tests that building twice gives the same
// result.
func TestDictionary_Build_deterministic(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDic(t, testDic())

	first, err := BuildFile(path, nil)
	if err != nil {
		t.Fatalf("BuildFile: %v", err)
	}
	second, err := BuildFile(path, nil)
	if err != nil {
		t.Fatalf("BuildFile: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("BuildFile (-first, +second):\n%s", diff)
	}
}

// TestDictionary_Build_malformed tests that a malformed record aborts the
// build.
func TestDictionary_Build_malformed(t *testing.T) {
	t.Parallel()

	dic := testDic()
	dic.RawRecords = [][]byte{[]byte("en\x00zh\x00ko\x00")}

	_, err := New(bytes.NewReader(testutil.MakeDic(dic))).Build(nil)
	if !errors.Is(err, record.ErrMalformedRecord) {
		t.Fatalf("Build: want: %v, got: %v", record.ErrMalformedRecord, err)
	}
}

// TestDictionary_WordTable tests reading word lists through a Dictionary.
func TestDictionary_WordTable(t *testing.T) {
	t.Parallel()

	d, err := Open(testutil.MakeTempDic(t, testDic()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	for _, lang := range wordlist.Languages() {
		table, err := d.WordTable(lang)
		if err != nil {
			t.Fatalf("WordTable(%v): %v", lang, err)
		}
		if table.Len() == 0 {
			t.Errorf("WordTable(%v): empty table", lang)
		}
	}

	if _, err := d.WordTable(wordlist.Language(3)); !errors.Is(err, wordlist.ErrInvalidLanguage) {
		t.Errorf("WordTable(3): want: %v, got: %v", wordlist.ErrInvalidLanguage, err)
	}
}

// TestOpen_notExist tests opening a missing file.
func TestOpen_notExist(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.dic"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open: want: %v, got: %v", os.ErrNotExist, err)
	}
}

// TestExport tests exporting a glossary to a sink.
func TestExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.MakeTempDic(t, testDic())
	out := filepath.Join(dir, "biyak.tsv")

	stats, err := Export(context.Background(), path, DefaultName, &export.TSV{Path: out}, nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if want, got := 4, stats.Entries; want != got {
		t.Errorf("Export entries; want: %d, got: %d", want, got)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var expected strings.Builder
	if err := export.WriteTSV(context.Background(), &expected, DefaultName, expectedEntries); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	if diff := cmp.Diff(expected.String(), string(b)); diff != "" {
		t.Fatalf("Export (-want, +got):\n%s", diff)
	}
}

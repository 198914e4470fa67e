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


package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-eckdic/internal/testutil"
)

func testDic() *testutil.Dic {
	return &testutil.Dic{
		Words: map[int][]*testutil.Word{
			0: {{Word: []byte("han"), Index: 0}},
			6: {{Word: []byte{0xc7, 0xd1}, Index: 0}},
		},
		Records: []*testutil.Record{
			{
				English: []byte("han"),
				Korean:  []byte{0x90, 0x11},
				Field:   []byte{0x90, 0x11},
			},
		},
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newEckdicApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"eckdic"}, args...))
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDic(t, testDic())
	out := filepath.Join(t.TempDir(), "biyak.tsv")

	if _, err := runApp(t, "export", "--format", "tsv", "--output", out, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	expected := "#Biyak Technical Dictionary\n" +
		"han\t한\\n\\n(한)\n" +
		"한\than\\n\\n(한)\n"
	if got := string(b); got != expected {
		t.Fatalf("export; want: %q, got: %q", expected, got)
	}
}

func TestExportCommand_badFormat(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDic(t, testDic())
	_, err := runApp(t, "export", "--format", "xml", path)
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("export: want: %v, got: %v", ErrFlagParse, err)
	}
}

func TestExportCommand_notFound(t *testing.T) {
	t.Parallel()

	_, err := runApp(t, "export", filepath.Join(t.TempDir(), "missing.dic"))
	if !errors.Is(err, ErrDictionaryNotFound) {
		t.Fatalf("export: want: %v, got: %v", ErrDictionaryNotFound, err)
	}
}

func TestQueryCommand(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDic(t, testDic())
	out, err := runApp(t, "query", path, "HAN")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if want := "han\n한\n\n(한)\n\n"; out != want {
		t.Fatalf("query; want: %q, got: %q", want, out)
	}
}

func TestStatsCommand(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDic(t, testDic())
	out, err := runApp(t, "stats", path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Korean words", "Records", "Glossary entries"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats: missing %q in:\n%s", want, out)
		}
	}
}

func TestNewLogger_invalidLevel(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDic(t, testDic())
	_, err := runApp(t, "--log-level", "loud", "stats", path)
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("stats: want: %v, got: %v", ErrFlagParse, err)
	}
}

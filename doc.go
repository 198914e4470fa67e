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


// Package eckdic implements a library for converting the eckdata.dic
// English/Chinese/Korean technical dictionary into a bilingual glossary in
// pure Go.
//
// The dictionary file contains several structures:
//  1. A language directory with a pointer to each language's word list.
//  2. A word list per language. Each word carries a word index that links the
//     same term across languages.
//  3. A record table with the English, Chinese and Korean text and the field
//     (subject area) of each entry, in a second Korean encoding.
//
// The field names only exist in the record table's encoding. They are
// repaired with a substitution table learned by aligning the Korean word list
// with the Korean record text, and then decoded with the word list encoding.
package eckdic

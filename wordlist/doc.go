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


// Package wordlist implements reading the per-language word lists of an
// eckdata.dic file.
//
// A small directory near the start of the file holds a 32-bit pointer for
// each language. The pointer locates that language's offset table:
//  1. The first 32-bit value is the byte size of the offset table. It is also
//     the offset of the first word record since records follow the table.
//  2. Each 32-bit value is the offset of a word record relative to the start
//     of the table.
//
// Each word record comes in three parts:
//  1. The length: a single byte giving the size of the rest of the record.
//  2. The word: bytes in the legacy Korean encoding terminated by a null
//     terminator ('\0').
//  3. The index: a 32-bit little-endian word index shared with the record
//     table and the other languages.
package wordlist

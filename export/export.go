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


// Package export writes glossaries to persistent storage.
package export

import (
	"context"

	"github.com/ianlewis/go-eckdic/glossary"
)

// Sink stores a named glossary. Writing replaces anything previously stored
// at the same location.
type Sink interface {
	Write(ctx context.Context, name string, entries []*glossary.Entry) error
}

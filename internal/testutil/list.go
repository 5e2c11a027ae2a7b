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

// Package testutil implements helpers for tests.
package testutil

import (
	"testing"

	"github.com/ianlewis/go-wordlist"
)

// Word is a compact description of a test entry.
type Word struct {
	Simplified    string
	Traditional   string
	Pronunciation string
	Definition    string

	// Section is the entry's section index. Use -1 for unsectioned entries.
	Section int
}

// MakeList creates a list from the given words. Entry positions are the
// indices of the words.
func MakeList(t *testing.T, name string, sections []wordlist.Section, words []Word) *wordlist.List {
	t.Helper()

	entries := make([]wordlist.Entry, len(words))
	for i, w := range words {
		entries[i] = wordlist.Entry{
			Simplified:    w.Simplified,
			Traditional:   w.Traditional,
			Pronunciation: w.Pronunciation,
			Definition:    w.Definition,
			Section:       w.Section,
			Position:      i,
		}
	}

	l, err := wordlist.NewList(name, sections, entries)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	return l
}

// Simplified makes words with the given simplified forms in section 0.
func Simplified(words ...string) []Word {
	w := make([]Word, len(words))
	for i, s := range words {
		w[i] = Word{Simplified: s}
	}
	return w
}

// Values returns attribute a of every entry in l.
func Values(l *wordlist.List, a wordlist.Attribute) []string {
	var values []string
	for _, e := range l.Entries() {
		values = append(values, e.Value(a))
	}
	return values
}

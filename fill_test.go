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

package wordlist_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordlist"
	"github.com/ianlewis/go-wordlist/internal/testutil"
)

func TestList_Fill(t *testing.T) {
	t.Parallel()

	freq := testutil.MakeList(t, "freq", []wordlist.Section{{"Frequency"}}, []testutil.Word{
		{Simplified: "的"},
		{Simplified: "我", Definition: "me"},
		{Simplified: "是"},
	})
	hsk := testutil.MakeList(t, "hsk", []wordlist.Section{{"HSK 1"}}, []testutil.Word{
		{Simplified: "我", Traditional: "我", Pronunciation: "wo3", Definition: "I"},
		{Simplified: "是", Traditional: "是", Pronunciation: "shi4", Definition: "to be"},
		{Simplified: "是", Traditional: "是", Pronunciation: "shi5", Definition: "yes"},
	})

	filled := freq.Fill(hsk, wordlist.AttrSimplified)

	expected := []wordlist.Entry{
		{Simplified: "的", Section: 0, Position: 0},
		{Simplified: "我", Traditional: "我", Pronunciation: "wo3", Definition: "me", Section: 0, Position: 1},
		{Simplified: "是", Traditional: "是", Pronunciation: "shi4", Definition: "to be", Section: 0, Position: 2},
	}
	if diff := cmp.Diff(expected, filled.Entries()); diff != "" {
		t.Fatalf("Fill (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]wordlist.Section{{"Frequency"}}, filled.Sections()); diff != "" {
		t.Fatalf("Fill sections (-want, +got):\n%s", diff)
	}

	// The original list is unchanged.
	if want, got := "", freq.Entry(2).Pronunciation; want != got {
		t.Fatalf("freq modified; want: %q, got: %q", want, got)
	}
}

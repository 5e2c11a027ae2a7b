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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-wordlist"
	"github.com/ianlewis/go-wordlist/internal/folding"
	"github.com/ianlewis/go-wordlist/internal/testutil"
)

// result is the expected content of a partition result.
type result struct {
	name     string
	sections []wordlist.Section
	entries  []wordlist.Entry
}

func checkResult(t *testing.T, what string, want result, got *wordlist.List) {
	t.Helper()

	if want.name != "" && want.name != got.Name() {
		t.Errorf("%s name; want: %q, got: %q", what, want.name, got.Name())
	}
	if diff := cmp.Diff(want.sections, got.Sections(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s sections (-want, +got):\n%s", what, diff)
	}
	if diff := cmp.Diff(want.entries, got.Entries(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s entries (-want, +got):\n%s", what, diff)
	}
}

func entry(simplified string, section, position int) wordlist.Entry {
	return wordlist.Entry{
		Simplified: simplified,
		Section:    section,
		Position:   position,
	}
}

func TestList_Partition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		selfSections  []wordlist.Section
		self          []testutil.Word
		otherSections []wordlist.Section
		other         []testutil.Word
		perCharacter  bool

		onlySelf  result
		shared    result
		onlyOther result
	}{
		{
			name:          "identical single entry",
			selfSections:  []wordlist.Section{{"Book 1", "Chapter 1"}},
			self:          testutil.Simplified("你好"),
			otherSections: []wordlist.Section{{"Book 1", "Chapter 1"}},
			other:         testutil.Simplified("你好"),

			onlySelf: result{name: "a_minus_b"},
			shared: result{
				name:     "a_intersecting_b",
				sections: []wordlist.Section{{"Book 1", "Chapter 1"}},
				entries:  []wordlist.Entry{entry("你好", 0, 0)},
			},
			onlyOther: result{name: "b_minus_a"},
		},
		{
			name:         "whole value",
			selfSections: []wordlist.Section{{"L1"}, {"L2"}},
			self: []testutil.Word{
				{Simplified: "你", Section: 0},
				{Simplified: "好", Section: 0},
				{Simplified: "我", Section: 1},
				{Simplified: "们", Section: 1},
			},
			otherSections: []wordlist.Section{{"X"}, {"Y"}},
			other: []testutil.Word{
				{Simplified: "好", Section: 0},
				{Simplified: "他", Section: 1},
				{Simplified: "你", Section: 1},
				{Simplified: "好", Section: 1},
			},

			onlySelf: result{
				sections: []wordlist.Section{{"L2"}},
				entries:  []wordlist.Entry{entry("我", 0, 0), entry("们", 0, 1)},
			},
			shared: result{
				sections: []wordlist.Section{{"L1"}},
				entries:  []wordlist.Entry{entry("你", 0, 0), entry("好", 0, 1)},
			},
			onlyOther: result{
				sections: []wordlist.Section{{"Y"}},
				entries:  []wordlist.Entry{entry("他", 0, 0)},
			},
		},
		{
			name:          "whole value repeated matches",
			selfSections:  []wordlist.Section{{"L1"}},
			self:          testutil.Simplified("好", "好"),
			otherSections: []wordlist.Section{{"X"}},
			other:         testutil.Simplified("好", "好", "你"),

			shared: result{
				sections: []wordlist.Section{{"L1"}},
				entries:  []wordlist.Entry{entry("好", 0, 0), entry("好", 0, 1)},
			},
			onlyOther: result{
				sections: []wordlist.Section{{"X"}},
				entries:  []wordlist.Entry{entry("你", 0, 0)},
			},
		},
		{
			name:          "whole value empty values match",
			selfSections:  []wordlist.Section{{"L1"}},
			self:          testutil.Simplified(""),
			otherSections: []wordlist.Section{{"X"}},
			other:         testutil.Simplified("", ""),

			shared: result{
				sections: []wordlist.Section{{"L1"}},
				entries:  []wordlist.Entry{entry("", 0, 0)},
			},
		},
		{
			name:          "whole value empty other",
			selfSections:  []wordlist.Section{{"L1"}},
			self:          testutil.Simplified("你", "好"),
			otherSections: nil,
			other:         nil,

			onlySelf: result{
				sections: []wordlist.Section{{"L1"}},
				entries:  []wordlist.Entry{entry("你", 0, 0), entry("好", 0, 1)},
			},
		},
		{
			name:          "whole value empty self",
			otherSections: []wordlist.Section{{"X"}, {"Y"}},
			other: []testutil.Word{
				{Simplified: "你", Section: 1},
				{Simplified: "好", Section: -1},
			},

			onlyOther: result{
				sections: []wordlist.Section{{"Y"}},
				entries:  []wordlist.Entry{entry("你", 0, 0), entry("好", -1, 1)},
			},
		},
		{
			name:          "per character single anchor",
			selfSections:  []wordlist.Section{{"S"}},
			self:          testutil.Simplified("你好"),
			otherSections: []wordlist.Section{{"T"}},
			other:         testutil.Simplified("你", "好"),
			perCharacter:  true,

			shared: result{
				sections: []wordlist.Section{{"S"}},
				entries: []wordlist.Entry{
					entry("你好", 0, 0),
					entry("你", 0, 1),
					entry("好", 0, 2),
				},
			},
		},
		{
			name:         "per character lowest anchor",
			selfSections: []wordlist.Section{{"S1"}, {"S2"}, {"S3"}},
			self: []testutil.Word{
				{Simplified: "我", Section: 0},
				{Simplified: "你", Section: 1},
				{Simplified: "好", Section: 2},
			},
			otherSections: []wordlist.Section{{"T"}},
			other:         testutil.Simplified("好你", "他们"),
			perCharacter:  true,

			onlySelf: result{
				sections: []wordlist.Section{{"S1"}},
				entries:  []wordlist.Entry{entry("我", 0, 0)},
			},
			shared: result{
				sections: []wordlist.Section{{"S2"}, {"S3"}},
				entries: []wordlist.Entry{
					entry("你", 0, 0),
					// Anchored to 你, the first entry sharing a character.
					entry("好你", 0, 1),
					entry("好", 1, 2),
				},
			},
			onlyOther: result{
				sections: []wordlist.Section{{"T"}},
				entries:  []wordlist.Entry{entry("他们", 0, 0)},
			},
		},
		{
			name:          "per character whole value already shared",
			selfSections:  []wordlist.Section{{"S"}},
			self:          testutil.Simplified("你好"),
			otherSections: []wordlist.Section{{"T"}},
			other:         testutil.Simplified("你好", "你"),
			perCharacter:  true,

			shared: result{
				sections: []wordlist.Section{{"S"}},
				entries:  []wordlist.Entry{entry("你好", 0, 0), entry("你", 0, 1)},
			},
		},
		{
			name:          "per character empty values",
			selfSections:  []wordlist.Section{{"S"}},
			self:          testutil.Simplified("", "你"),
			otherSections: []wordlist.Section{{"T"}},
			other:         testutil.Simplified("你", ""),
			perCharacter:  true,

			onlySelf: result{
				sections: []wordlist.Section{{"S"}},
				entries:  []wordlist.Entry{entry("", 0, 0)},
			},
			shared: result{
				sections: []wordlist.Section{{"S"}},
				entries:  []wordlist.Entry{entry("你", 0, 0)},
			},
			onlyOther: result{
				sections: []wordlist.Section{{"T"}},
				entries:  []wordlist.Entry{entry("", 0, 0)},
			},
		},
		{
			name:          "per character missing character",
			selfSections:  []wordlist.Section{{"S"}},
			self:          testutil.Simplified("中国", "国"),
			otherSections: []wordlist.Section{{"T"}},
			other:         testutil.Simplified("国家", "国"),
			perCharacter:  true,

			onlySelf: result{
				sections: []wordlist.Section{{"S"}},
				entries:  []wordlist.Entry{entry("中国", 0, 0)},
			},
			shared: result{
				sections: []wordlist.Section{{"S"}},
				entries:  []wordlist.Entry{entry("国", 0, 0)},
			},
			onlyOther: result{
				sections: []wordlist.Section{{"T"}},
				entries:  []wordlist.Entry{entry("国家", 0, 0)},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			self := testutil.MakeList(t, "a", test.selfSections, test.self)
			other := testutil.MakeList(t, "b", test.otherSections, test.other)
			selfBefore, otherBefore := self.Entries(), other.Entries()

			onlySelf, shared, onlyOther := self.Partition(other, wordlist.AttrSimplified, test.perCharacter)

			checkResult(t, "onlySelf", test.onlySelf, onlySelf)
			checkResult(t, "shared", test.shared, shared)
			checkResult(t, "onlyOther", test.onlyOther, onlyOther)

			if diff := cmp.Diff(selfBefore, self.Entries()); diff != "" {
				t.Errorf("self modified (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(otherBefore, other.Entries()); diff != "" {
				t.Errorf("other modified (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestList_Partition_tieBreak checks that many entries of the other list
// anchored to the same entry keep their relative order.
func TestList_Partition_tieBreak(t *testing.T) {
	t.Parallel()

	self := testutil.MakeList(t, "a", []wordlist.Section{{"S"}}, testutil.Simplified("大学", "小孩"))

	var otherWords []string
	for i := range 20 {
		otherWords = append(otherWords, []string{"大", "学"}[i%2])
	}
	otherWords = append(otherWords, "小", "孩")
	other := testutil.MakeList(t, "b", []wordlist.Section{{"T"}}, testutil.Simplified(otherWords...))

	_, shared, _ := self.Partition(other, wordlist.AttrSimplified, true)

	var expected []string
	expected = append(expected, "大学")
	expected = append(expected, otherWords[:20]...)
	expected = append(expected, "小孩", "小", "孩")

	if diff := cmp.Diff(expected, testutil.Values(shared, wordlist.AttrSimplified)); diff != "" {
		t.Fatalf("shared (-want, +got):\n%s", diff)
	}
	for i, e := range shared.Entries() {
		if want, got := i, e.Position; want != got {
			t.Fatalf("Position of %q; want: %d, got: %d", e.Simplified, want, got)
		}
	}
}

func TestList_PartitionWithOptions_folding(t *testing.T) {
	t.Parallel()

	self := testutil.MakeList(t, "a", nil, []testutil.Word{
		{Simplified: "你 好", Section: -1},
		{Simplified: "ＡＢ", Section: -1},
	})
	other := testutil.MakeList(t, "b", nil, []testutil.Word{
		{Simplified: "你好", Section: -1},
		{Simplified: "ab", Section: -1},
	})

	onlySelf, shared, onlyOther := self.PartitionWithOptions(other, &wordlist.PartitionOptions{
		Attribute: wordlist.AttrSimplified,
		Folder:    folding.Default,
	})

	if got := onlySelf.Len(); got != 0 {
		t.Errorf("onlySelf Len; want: 0, got: %d", got)
	}
	if diff := cmp.Diff([]string{"你 好", "ＡＢ"}, testutil.Values(shared, wordlist.AttrSimplified)); diff != "" {
		t.Errorf("shared (-want, +got):\n%s", diff)
	}
	if got := onlyOther.Len(); got != 0 {
		t.Errorf("onlyOther Len; want: 0, got: %d", got)
	}

	// Without folding nothing matches.
	onlySelf, _, _ = self.PartitionWithOptions(other, nil)
	if want, got := 2, onlySelf.Len(); want != got {
		t.Errorf("unfolded onlySelf Len; want: %d, got: %d", want, got)
	}
}

func TestList_Partition_otherAttributes(t *testing.T) {
	t.Parallel()

	self := testutil.MakeList(t, "a", nil, []testutil.Word{
		{Simplified: "后", Traditional: "後", Section: -1},
		{Simplified: "后", Traditional: "后", Section: -1},
	})
	other := testutil.MakeList(t, "b", nil, []testutil.Word{
		{Simplified: "后", Traditional: "后", Section: -1},
	})

	onlySelf, shared, onlyOther := self.Partition(other, wordlist.AttrTraditional, false)

	if diff := cmp.Diff([]string{"後"}, testutil.Values(onlySelf, wordlist.AttrTraditional)); diff != "" {
		t.Errorf("onlySelf (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"后"}, testutil.Values(shared, wordlist.AttrTraditional)); diff != "" {
		t.Errorf("shared (-want, +got):\n%s", diff)
	}
	if got := onlyOther.Len(); got != 0 {
		t.Errorf("onlyOther Len; want: 0, got: %d", got)
	}
}

// TestList_Partition_properties checks completeness and order preservation
// of whole value partitions.
func TestList_Partition_properties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		self  []string
		other []string
	}{
		{
			name:  "disjoint",
			self:  []string{"一", "二", "三"},
			other: []string{"四", "五"},
		},
		{
			name:  "overlapping",
			self:  []string{"一", "二", "三", "四", "二"},
			other: []string{"五", "二", "一", "六", "二"},
		},
		{
			name:  "equal",
			self:  []string{"一", "二"},
			other: []string{"二", "一"},
		},
		{
			name:  "empty",
			self:  nil,
			other: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			sections := []wordlist.Section{{"S"}}
			self := testutil.MakeList(t, "a", sections, testutil.Simplified(test.self...))
			other := testutil.MakeList(t, "b", sections, testutil.Simplified(test.other...))

			onlySelf, shared, onlyOther := self.Partition(other, wordlist.AttrSimplified, false)

			if want, got := self.Len(), onlySelf.Len()+shared.Len(); want != got {
				t.Fatalf("|onlySelf| + |shared|; want: %d, got: %d", want, got)
			}

			// Entries of onlySelf and shared are in the order of self.
			var merged []string
			o, s := testutil.Values(onlySelf, wordlist.AttrSimplified), testutil.Values(shared, wordlist.AttrSimplified)
			for _, w := range test.self {
				switch {
				case slices.Contains(test.other, w):
					merged = append(merged, s[0])
					s = s[1:]
				default:
					merged = append(merged, o[0])
					o = o[1:]
				}
			}
			if diff := cmp.Diff(test.self, merged, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("order (-want, +got):\n%s", diff)
			}

			var expectedOther []string
			for _, w := range test.other {
				if !slices.Contains(test.self, w) {
					expectedOther = append(expectedOther, w)
				}
			}
			if diff := cmp.Diff(expectedOther, testutil.Values(onlyOther, wordlist.AttrSimplified), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("onlyOther (-want, +got):\n%s", diff)
			}
		})
	}
}

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

package wordlist

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Attribute identifies an entry attribute.
type Attribute int

const (
	// AttrSimplified is the simplified Chinese form.
	AttrSimplified Attribute = iota

	// AttrTraditional is the traditional Chinese form.
	AttrTraditional

	// AttrPronunciation is the pronunciation, usually pinyin.
	AttrPronunciation

	// AttrDefinition is the definition.
	AttrDefinition

	// AttrSection is the entry's section index.
	AttrSection

	// AttrPosition is the entry's position in its list.
	AttrPosition
)

var attributeNames = []string{
	AttrSimplified:    "simplified",
	AttrTraditional:   "traditional",
	AttrPronunciation: "pronunciation",
	AttrDefinition:    "definition",
	AttrSection:       "section",
	AttrPosition:      "position",
}

// Short names used by Pleco style lists.
var attributeAliases = map[string]Attribute{
	"simp":   AttrSimplified,
	"trad":   AttrTraditional,
	"pinyin": AttrPronunciation,
	"def":    AttrDefinition,
	"number": AttrPosition,
}

// ParseAttribute returns the attribute with the given name. Both the long
// names ("simplified") and the short names ("simp", "pinyin") are accepted.
func ParseAttribute(name string) (Attribute, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, an := range attributeNames {
		if an == n {
			return Attribute(i), nil
		}
	}
	if a, ok := attributeAliases[n]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// String returns the attribute's name.
func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attributeNames) {
		return "Attribute(" + strconv.Itoa(int(a)) + ")"
	}
	return attributeNames[a]
}

// IsText returns true for the attributes holding free text.
func (a Attribute) IsText() bool {
	switch a {
	case AttrSimplified, AttrTraditional, AttrPronunciation, AttrDefinition:
		return true
	default:
		return false
	}
}

// Entry is a vocabulary entry.
type Entry struct {
	Simplified    string
	Traditional   string
	Pronunciation string
	Definition    string

	// Section is the index of the entry's section in the list's section
	// table or -1 if the entry is unsectioned.
	Section int

	// Position is the entry's position in its list.
	Position int

	// Extra holds attributes that are not part of the fixed attribute set,
	// e.g. additional columns of a text list.
	Extra map[string]string
}

// NewEntry returns an unsectioned entry.
func NewEntry(simplified, traditional, pronunciation, definition string) Entry {
	return Entry{
		Simplified:    simplified,
		Traditional:   traditional,
		Pronunciation: pronunciation,
		Definition:    definition,
		Section:       -1,
	}
}

// Value returns the value of attribute a as a string.
func (e *Entry) Value(a Attribute) string {
	switch a {
	case AttrSimplified:
		return e.Simplified
	case AttrTraditional:
		return e.Traditional
	case AttrPronunciation:
		return e.Pronunciation
	case AttrDefinition:
		return e.Definition
	case AttrSection:
		return strconv.Itoa(e.Section)
	case AttrPosition:
		return strconv.Itoa(e.Position)
	default:
		return ""
	}
}

// SetText sets the text attribute a to v. It does nothing for attributes
// that are not text attributes.
func (e *Entry) SetText(a Attribute, v string) {
	switch a {
	case AttrSimplified:
		e.Simplified = v
	case AttrTraditional:
		e.Traditional = v
	case AttrPronunciation:
		e.Pronunciation = v
	case AttrDefinition:
		e.Definition = v
	}
}

// Clone returns a copy of the entry that shares no memory with e.
func (e *Entry) Clone() Entry {
	c := *e
	if e.Extra != nil {
		c.Extra = maps.Clone(e.Extra)
	}
	return c
}

// Word returns the entry's headword: the simplified form, or the traditional
// form if the simplified one is empty.
func (e *Entry) Word() string {
	if e.Simplified != "" {
		return e.Simplified
	}
	return e.Traditional
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	str := e.Word()
	if e.Traditional != "" && e.Traditional != e.Simplified && e.Simplified != "" {
		str += "[" + e.Traditional + "]"
	}
	if e.Pronunciation != "" {
		str += " " + e.Pronunciation
	}
	if e.Definition != "" {
		str += " " + e.Definition
	}
	return str
}

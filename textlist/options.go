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

package textlist

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-wordlist"
)

var (
	// ErrInvalidOptions indicates that options cannot be used.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrUnknownEncoding indicates an unknown text encoding.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// CombinedField is the attribute order name of a field holding both the
// simplified and the traditional form, e.g. "国[國]".
const CombinedField = "simplified[traditional]"

// combinedAliases are accepted in place of CombinedField.
var combinedAliases = []string{CombinedField, "simp[trad]"}

// Options are options for reading and writing text lists. Empty fields take
// the value from DefaultOptions.
type Options struct {
	// EntryDelimiter separates records.
	EntryDelimiter string `yaml:"entryDelimiter,omitempty"`

	// AttributeDelimiter separates the attributes of an entry.
	AttributeDelimiter string `yaml:"attributeDelimiter,omitempty"`

	// SectionStart starts a section heading.
	SectionStart string `yaml:"sectionStart,omitempty"`

	// SectionDelimiter separates the levels of a section heading.
	SectionDelimiter string `yaml:"sectionDelimiter,omitempty"`

	// CommentStart starts a comment.
	CommentStart string `yaml:"commentStart,omitempty"`

	// AttributeOrder names the attribute of each field of an entry. Names
	// are attribute names accepted by [wordlist.ParseAttribute] or
	// [CombinedField]. Any other name is stored in [wordlist.Entry.Extra].
	AttributeOrder []string `yaml:"attributeOrder,omitempty"`

	// Encoding is the text encoding, e.g. "utf-8", "gb18030" or "big5".
	// Names are resolved using the WHATWG encoding standard.
	Encoding string `yaml:"encoding,omitempty"`
}

// DefaultOptions is the default options for text lists.
var DefaultOptions = &Options{
	EntryDelimiter:     "\n",
	AttributeDelimiter: "\t",
	SectionStart:       "//",
	SectionDelimiter:   "/",
	CommentStart:       "#",
	AttributeOrder:     []string{CombinedField, "pronunciation", "definition"},
	Encoding:           "utf-8",
}

// WithDefaults returns a copy of o in which every empty field is set to the
// value from DefaultOptions. A nil o returns a copy of DefaultOptions.
func (o *Options) WithDefaults() *Options {
	merged := *DefaultOptions
	merged.AttributeOrder = slices.Clone(DefaultOptions.AttributeOrder)
	if o == nil {
		return &merged
	}

	if o.EntryDelimiter != "" {
		merged.EntryDelimiter = o.EntryDelimiter
	}
	if o.AttributeDelimiter != "" {
		merged.AttributeDelimiter = o.AttributeDelimiter
	}
	if o.SectionStart != "" {
		merged.SectionStart = o.SectionStart
	}
	if o.SectionDelimiter != "" {
		merged.SectionDelimiter = o.SectionDelimiter
	}
	if o.CommentStart != "" {
		merged.CommentStart = o.CommentStart
	}
	if len(o.AttributeOrder) > 0 {
		merged.AttributeOrder = slices.Clone(o.AttributeOrder)
	}
	if o.Encoding != "" {
		merged.Encoding = o.Encoding
	}
	return &merged
}

// ParseOptions parses YAML encoded options and merges them with the
// defaults.
func ParseOptions(b []byte) (*Options, error) {
	var o Options
	if err := yaml.Unmarshal(b, &o); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	merged := o.WithDefaults()
	if _, err := merged.fields(); err != nil {
		return nil, err
	}
	if _, err := merged.encoding(); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadOptions reads YAML encoded options from the file at path.
func LoadOptions(path string) (*Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options: %w", err)
	}
	o, err := ParseOptions(b)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return o, nil
}

// fieldKind is the kind of an entry field.
type fieldKind int

const (
	fieldAttribute fieldKind = iota
	fieldCombined
	fieldExtra
)

// field describes one field of an entry record.
type field struct {
	kind fieldKind
	attr wordlist.Attribute
	name string
}

// fields resolves the attribute order.
func (o *Options) fields() ([]field, error) {
	seen := map[string]bool{}
	fields := make([]field, 0, len(o.AttributeOrder))
	for _, name := range o.AttributeOrder {
		f := field{kind: fieldExtra, name: name}
		if slices.Contains(combinedAliases, strings.ToLower(name)) {
			f.kind = fieldCombined
		} else if a, err := wordlist.ParseAttribute(name); err == nil {
			if !a.IsText() {
				return nil, fmt.Errorf("%w: %v cannot be a field", ErrInvalidOptions, a)
			}
			f.kind = fieldAttribute
			f.attr = a
		}

		// Check that no attribute is read twice.
		var keys []string
		switch f.kind {
		case fieldAttribute:
			keys = []string{f.attr.String()}
		case fieldCombined:
			keys = []string{wordlist.AttrSimplified.String(), wordlist.AttrTraditional.String()}
		case fieldExtra:
			keys = []string{"extra:" + f.name}
		}
		for _, k := range keys {
			if seen[k] {
				return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidOptions, name)
			}
			seen[k] = true
		}

		fields = append(fields, f)
	}
	return fields, nil
}

// encoding returns the text encoding.
func (o *Options) encoding() (encoding.Encoding, error) {
	enc, err := htmlindex.Get(o.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, o.Encoding)
	}
	return enc, nil
}

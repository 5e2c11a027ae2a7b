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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordlist"
)

// maxRecordSize is the maximum size of a single record.
const maxRecordSize = 1 << 20

// Scanner scans the records of a text list from start to end. Blank records
// and comments are skipped.
type Scanner struct {
	s      *bufio.Scanner
	opts   *Options
	fields []field
	delim  []byte

	record    string
	isSection bool
}

// NewScanner returns a new scanner that reads a text list from r. If opts is
// nil, DefaultOptions is used. Empty fields of opts take their default
// values.
func NewScanner(r io.Reader, opts *Options) (*Scanner, error) {
	opts = opts.WithDefaults()

	fields, err := opts.fields()
	if err != nil {
		return nil, err
	}
	enc, err := opts.encoding()
	if err != nil {
		return nil, err
	}

	// A byte order mark overrides the configured encoding and is removed.
	r = transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))

	s := &Scanner{
		s:      bufio.NewScanner(r),
		opts:   opts,
		fields: fields,
		delim:  []byte(opts.EntryDelimiter),
	}
	s.s.Buffer(nil, maxRecordSize)
	s.s.Split(s.splitRecord)
	return s, nil
}

// Scan advances the scanner to the next section heading or entry. It returns
// false if the scan stops either by reaching the end of the input or an
// error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		record := strings.TrimSpace(s.s.Text())
		if record == "" || strings.HasPrefix(record, s.opts.CommentStart) {
			continue
		}
		s.record = record
		s.isSection = strings.HasPrefix(record, s.opts.SectionStart)
		return true
	}
	s.record = ""
	s.isSection = false
	return false
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning text list: %w", err)
	}
	return nil
}

// Text returns the current record with surrounding white space removed.
func (s *Scanner) Text() string {
	return s.record
}

// IsSection returns true if the current record is a section heading.
func (s *Scanner) IsSection() bool {
	return s.isSection
}

// Section returns the section of the current section heading record.
func (s *Scanner) Section() wordlist.Section {
	heading := strings.TrimPrefix(s.record, s.opts.SectionStart)
	return wordlist.Section(strings.Split(heading, s.opts.SectionDelimiter))
}

// Entry returns the entry of the current entry record. The entry is
// unsectioned and its position is zero. Fields missing at the end of the
// record are left empty and surplus fields are ignored.
func (s *Scanner) Entry() wordlist.Entry {
	e := wordlist.NewEntry("", "", "", "")
	values := strings.Split(s.record, s.opts.AttributeDelimiter)
	for i, f := range s.fields {
		if i >= len(values) {
			break
		}
		v := values[i]
		switch f.kind {
		case fieldAttribute:
			e.SetText(f.attr, v)
		case fieldCombined:
			e.Simplified, e.Traditional = splitCombined(v)
		case fieldExtra:
			if e.Extra == nil {
				e.Extra = map[string]string{}
			}
			e.Extra[f.name] = v
		}
	}
	return e
}

// splitCombined splits a "simplified[traditional]" field.
func splitCombined(v string) (simplified, traditional string) {
	simplified, traditional, found := strings.Cut(v, "[")
	if !found {
		return v, ""
	}
	return simplified, strings.TrimSuffix(traditional, "]")
}

// joinCombined is the inverse of splitCombined. A field without a
// simplified form always has brackets so that it is never empty.
func joinCombined(simplified, traditional string) string {
	if traditional == "" && simplified != "" {
		return simplified
	}
	return simplified + "[" + traditional + "]"
}

// splitRecord splits records at the entry delimiter.
func (s *Scanner) splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, s.delim); i >= 0 {
		// Found a delimiter.
		return i + len(s.delim), data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

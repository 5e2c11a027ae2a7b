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
	"strings"

	"github.com/k3a/html2text"
)

// Pleco stores formatting in definitions as code points from the Unicode
// private use area.
const (
	// PlecoNewline is a line break.
	PlecoNewline = "\ueab1"

	// PlecoBoldOpen starts bold text.
	PlecoBoldOpen = "\ueab2"

	// PlecoBoldClose ends bold text.
	PlecoBoldClose = "\ueab3"

	// PlecoItalicOpen starts italic text.
	PlecoItalicOpen = "\ueab4"

	// PlecoItalicClose ends italic text.
	PlecoItalicClose = "\ueab5"
)

var plecoHTML = strings.NewReplacer(
	PlecoNewline, "<br>",
	PlecoBoldOpen, "<b>",
	PlecoBoldClose, "</b>",
	PlecoItalicOpen, "<i>",
	PlecoItalicClose, "</i>",
)

// PlecoToHTML converts Pleco formatting code points in s to HTML tags.
func PlecoToHTML(s string) string {
	return plecoHTML.Replace(s)
}

// PlainDefinition returns the entry's definition as plain text with Pleco
// formatting and HTML markup removed.
func (e *Entry) PlainDefinition() string {
	return html2text.HTML2TextWithOptions(PlecoToHTML(e.Definition), html2text.WithUnixLineBreaks())
}

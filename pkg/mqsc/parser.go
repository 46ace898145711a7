// Copyright (c) 2025, the mqstatus authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mqsc

import (
	"regexp"
	"strings"
)

// attrExpr matches one NAME(value) attribute token. The administrative tools
// emit attribute names as upper-case identifiers and never nest parentheses
// inside values.
var attrExpr = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\(([^()]*)\)`)

// spaceExpr strips whitespace out of captured values. Attribute values are
// identifiers or keyword phrases; padding and line-wrap artifacts carry no
// information.
var spaceExpr = regexp.MustCompile(`\s+`)

// Stanza is one logical record decoded from administrative command output:
// the value of the record-marker attribute plus any recognized attributes
// that followed it, up to the next marker. Attrs may be empty when a marker
// appears with no recognized fields.
type Stanza struct {
	Name  string
	Attrs map[string]string
}

// Get returns the named attribute value, or def when the stanza does not
// carry it.
func (s Stanza) Get(name, def string) string {
	if v, ok := s.Attrs[name]; ok {
		return v
	}
	return def
}

// Option configures a Parser.
type Option func(*Parser)

// WithFields restricts attribute extraction to the named attributes. Without
// it every NAME(value) token is captured.
func WithFields(names ...string) Option {
	return func(p *Parser) {
		p.fields = make(map[string]bool, len(names))
		for _, n := range names {
			p.fields[n] = true
		}
	}
}

// Parser decodes the free-text, column-oriented output of the MQ
// administrative tools into stanzas.
//
// A stanza begins at any occurrence of the marker attribute and continues
// until the next marker or end of input. Attributes may be spread across
// multiple physical lines, may share a line, and carry no ordering guarantee;
// none of that is owned by this suite, so the parser assumes nothing beyond
// the NAME(value) token shape.
type Parser struct {
	marker string
	fields map[string]bool
}

// NewParser creates a parser whose record boundary is the given marker
// attribute (for example QMNAME for dspmq output, QUEUE for DIS QSTATUS,
// LISTENER for DIS LSSTATUS).
func NewParser(marker string, opts ...Option) *Parser {
	p := &Parser{marker: marker}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes output into stanzas in order of appearance. Attribute tokens
// seen before the first marker are discarded. Within a stanza the first
// occurrence of an attribute wins. Empty input yields an empty, non-nil
// slice.
func (p *Parser) Parse(output string) []Stanza {
	stanzas := make([]Stanza, 0)
	open := -1

	for _, line := range strings.Split(output, "\n") {
		for _, m := range attrExpr.FindAllStringSubmatch(line, -1) {
			name, value := m[1], cleanValue(m[2])

			if name == p.marker {
				stanzas = append(stanzas, Stanza{Name: value, Attrs: map[string]string{}})
				open = len(stanzas) - 1
				continue
			}
			if open < 0 {
				continue
			}
			if p.fields != nil && !p.fields[name] {
				continue
			}
			if _, dup := stanzas[open].Attrs[name]; !dup {
				stanzas[open].Attrs[name] = value
			}
		}
	}

	return stanzas
}

func cleanValue(v string) string {
	return spaceExpr.ReplaceAllString(strings.TrimSpace(v), "")
}

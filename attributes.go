// Copyright 2024 The Go AsciiDoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package asciidoc

import (
	"golang.org/x/text/cases"
)

// AttributeMissingPolicy controls what the inline parser does when it
// encounters a reference to an attribute that is not set. See spec.md §3.4.
type AttributeMissingPolicy int

const (
	// AttributeMissingLeaveLiteral leaves "{name}" untouched in the
	// output. This is the default, matching spec.md §8's boundary case.
	AttributeMissingLeaveLiteral AttributeMissingPolicy = iota
	// AttributeMissingWarn behaves like AttributeMissingLeaveLiteral but
	// additionally emits a Warning [Diagnostic].
	AttributeMissingWarn
)

var attrFold = cases.Fold()

// foldAttributeName returns the case-folded form of an attribute name,
// per AsciiDoc's rule that attribute names are matched case-insensitively.
// Folding (rather than simple lowercasing) handles non-ASCII attribute
// names correctly, which is why this uses golang.org/x/text/cases instead
// of strings.ToLower.
func foldAttributeName(name string) string {
	return attrFold.String(name)
}

// AttributeStore is a per-document mutable mapping of document/section
// attributes, built fresh for each parse and consulted during inline
// substitution (to replace attribute references); line scanning does not
// read it. See spec.md §3.4.
//
// AttributeStore is owned exclusively by the parsing phase; it is a plain
// mutable map and requires no locking (see spec.md §5).
type AttributeStore struct {
	values map[string]string
	unset  map[string]bool
	policy AttributeMissingPolicy
}

// NewAttributeStore returns an empty store using the default
// attribute-missing policy (leave the reference literal).
func NewAttributeStore() *AttributeStore {
	return &AttributeStore{
		values: make(map[string]string),
		unset:  make(map[string]bool),
	}
}

// SetPolicy sets the attribute-missing policy reported by
// [*AttributeStore.Policy] and applied by the inline parser.
func (s *AttributeStore) SetPolicy(p AttributeMissingPolicy) {
	s.policy = p
}

// Set assigns value to name, overriding any prior value. Corresponds to a
// ":name: value" attribute entry.
func (s *AttributeStore) Set(name, value string) {
	name = foldAttributeName(name)
	delete(s.unset, name)
	s.values[name] = value
}

// Unset marks name as explicitly unset. Corresponds to a ":!name:" entry.
// A subsequent Get for name reports not-found even if a value was set
// earlier in the document.
func (s *AttributeStore) Unset(name string) {
	name = foldAttributeName(name)
	delete(s.values, name)
	s.unset[name] = true
}

// Get returns the current value of name and whether it is set.
func (s *AttributeStore) Get(name string) (string, bool) {
	name = foldAttributeName(name)
	if s.unset[name] {
		return "", false
	}
	v, ok := s.values[name]
	return v, ok
}

// MatchReference reports whether name is currently set, implementing
// [ReferenceMatcher].
func (s *AttributeStore) MatchReference(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Policy returns the configured attribute-missing policy.
func (s *AttributeStore) Policy() AttributeMissingPolicy {
	return s.policy
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names canonicalizes person names into comparable keys made of a
// first initial and a surname, with accents, case, hyphens, apostrophes,
// and spaces removed.
package names

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the given and family parts of a name ("Jane+Doe").
const Separator = "+"

// Key identifies an author for matching. Two names refer to the same
// person when their keys are equal.
type Key struct {
	Initial rune
	Surname string
}

func (k Key) String() string {
	return fmt.Sprintf("(%c, %s)", k.Initial, k.Surname)
}

// EmptyNameError is returned when a name has no characters left to take
// an initial from.
type EmptyNameError struct {
	Name string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("name %q is empty after normalization", e.Name)
}

// stripped lists the characters removed from both parts of a name.
var stripped = strings.NewReplacer("-", "", "'", "", " ", "")

// Normalize converts a "given+family" name into its Key. The initial is the
// first character of the whole lowercased name once hyphens, apostrophes and
// spaces are removed; the surname is everything after the final '+' with the
// same characters removed. A name without '+' uses the whole string as its
// surname.
func Normalize(name string) (Key, error) {
	s := strings.ToLower(Deaccent(name))

	first := stripped.Replace(s)
	if first == "" {
		return Key{}, &EmptyNameError{Name: name}
	}
	initial, _ := utf8.DecodeRuneInString(first)

	last := s[strings.LastIndex(s, Separator)+1:]

	return Key{Initial: initial, Surname: stripped.Replace(last)}, nil
}

// Deaccent replaces accented characters with their unaccented base letter.
func Deaccent(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// JoinName converts a free-form name such as "John Q. Smith" into the
// "given+family" form by splitting at the last space. Names already
// containing '+' and single-token names are returned trimmed but otherwise
// unchanged.
func JoinName(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, Separator) {
		return name
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return name
	}
	return strings.TrimSpace(name[:idx]) + Separator + name[idx+1:]
}

// Set is an unordered collection of keys.
type Set map[Key]struct{}

// NewSet normalizes every name and collects the resulting keys.
func NewSet(names []string) (Set, error) {
	set := make(Set, len(names))
	for _, n := range names {
		k, err := Normalize(n)
		if err != nil {
			return nil, err
		}
		set[k] = struct{}{}
	}
	return set, nil
}

// Contains reports whether k is in the set.
func (s Set) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// MissingFieldError reports a candidate field that is absent or has no
// usable structure (e.g. "score", "author", "author[2]").
type MissingFieldError struct {
	Field  string
	Reason string
}

func (e *MissingFieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("candidate is missing required field %q", e.Field)
	}
	return fmt.Sprintf("candidate field %q is unusable: %s", e.Field, e.Reason)
}

// MalformedAuthorsError reports a query author string that cannot be split
// into names with the expected delimiter.
type MalformedAuthorsError struct {
	Authors string
	Reason  string
}

func (e *MalformedAuthorsError) Error() string {
	return fmt.Sprintf("malformed query authors %q: %s", e.Authors, e.Reason)
}

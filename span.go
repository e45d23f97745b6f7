package lzcomplex

import "fmt"

// Span captures a half-open [From,To) range of positions in a text buffer.
// Package suffixtree does not use it: its edges store an inclusive
// start/end pair with an OpenEnd sentinel.
type Span [2]int

// From returns the start position of the span.
func (s Span) From() int { return s[0] }

// To returns the position just behind the end of the span.
func (s Span) To() int { return s[1] }

// Len returns the length of the span, To()-From().
func (s Span) Len() int { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("[%d…%d)", s[0], s[1])
}

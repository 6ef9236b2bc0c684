package secretseq

import (
	"errors"
	"strings"
)

// Matcher names a Detector implementation.
type Matcher string

const (
	MatchSequence Matcher = "sequence"
	MatchBuffer   Matcher = "buffer"
)

// ErrUnknownMatcher is returned by ParseMatcher.
var ErrUnknownMatcher = errors.New("detector must be 'sequence' or 'buffer'")

// ParseMatcher parses a configured matcher name.
func ParseMatcher(s string) (Matcher, error) {
	switch m := Matcher(strings.ToLower(strings.TrimSpace(s))); m {
	case MatchSequence, MatchBuffer:
		return m, nil
	}
	return "", ErrUnknownMatcher
}

// New builds the detector m names. Unknown names get a SequenceDetector.
func New(m Matcher, opts Options) Detector {
	if m == MatchBuffer {
		return NewBufferDetector(opts)
	}
	return NewSequenceDetector(opts)
}

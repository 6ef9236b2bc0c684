package secretseq_test

import (
	"errors"
	"testing"

	"colloque/internal/domain/secretseq"
)

func TestParseMatcher(t *testing.T) {
	tests := []struct {
		in      string
		want    secretseq.Matcher
		wantErr error
	}{
		{in: "sequence", want: secretseq.MatchSequence},
		{in: " Buffer ", want: secretseq.MatchBuffer},
		{in: "konami", wantErr: secretseq.ErrUnknownMatcher},
		{in: "", wantErr: secretseq.ErrUnknownMatcher},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := secretseq.ParseMatcher(tt.in)
			if !errors.Is(err, tt.wantErr) || got != tt.want {
				t.Errorf("ParseMatcher(%q) = %q, %v; want %q, %v", tt.in, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestNew_PicksImplementation(t *testing.T) {
	if _, ok := secretseq.New(secretseq.MatchBuffer, secretseq.Options{}).(*secretseq.BufferDetector); !ok {
		t.Error("New(buffer) did not return a BufferDetector")
	}
	if _, ok := secretseq.New(secretseq.MatchSequence, secretseq.Options{}).(*secretseq.SequenceDetector); !ok {
		t.Error("New(sequence) did not return a SequenceDetector")
	}
}

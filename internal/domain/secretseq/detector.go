// Package secretseq detects a secret word typed on the keyboard.
//
// A Detector is a plain state machine fed one key at a time. It knows
// nothing about where keys come from; Listener binds a detector to a key
// source for the lifetime of one view and stops forwarding once released.
package secretseq

import (
	"strings"
	"unicode/utf8"
)

// DefaultToken is the word that reveals the admin view.
const DefaultToken = "admin"

// DefaultThreshold is the BufferDetector length past which the buffer is dropped.
const DefaultThreshold = 10

// State of a detector between keys.
type State int

const (
	// Listening is the only resting state.
	Listening State = iota
	// Triggered is entered and left within a single Feed call.
	Triggered
)

func (s State) String() string {
	if s == Triggered {
		return "triggered"
	}
	return "listening"
}

// Detector consumes keystrokes and reports when the token was typed.
type Detector interface {
	// Feed processes one key (as reported by a keydown event: "a", "Shift", "Enter").
	// It returns true when the key completed the token; the detector has then
	// already called its trigger callback and reset itself.
	Feed(key string) bool
	// Pending returns the keys held toward a match.
	Pending() string
	// Reset drops any pending keys.
	Reset()
}

// Options configures a detector. Zero values select the defaults.
type Options struct {
	Token     string
	Threshold int    // BufferDetector only
	OnTrigger func() // called once per match, before Feed returns
}

func (o Options) token() string {
	if o.Token == "" {
		return DefaultToken
	}
	return strings.ToLower(o.Token)
}

// BufferDetector accumulates keys into a rolling text buffer and fires when
// the token appears anywhere in it. Any run of keys that spells the token
// fires, including inside ordinary words, and a token interrupted by enough
// keys to overflow the buffer never fires.
type BufferDetector struct {
	token     string
	threshold int
	onTrigger func()
	buf       strings.Builder
	state     State
}

// NewBufferDetector returns a BufferDetector in the Listening state with an empty buffer.
func NewBufferDetector(opts Options) *BufferDetector {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &BufferDetector{
		token:     opts.token(),
		threshold: threshold,
		onTrigger: opts.OnTrigger,
	}
}

// Feed appends the lowercased key to the buffer.
// PRE: none; every key is accepted
// POST: on a match the callback ran and the buffer is empty; if the buffer
// grew past the threshold without a match it is empty
func (d *BufferDetector) Feed(key string) bool {
	d.buf.WriteString(strings.ToLower(key))
	text := d.buf.String()

	if strings.Contains(text, d.token) {
		d.state = Triggered
		if d.onTrigger != nil {
			d.onTrigger()
		}
		d.buf.Reset()
		d.state = Listening
		return true
	}
	if utf8.RuneCountInString(text) > d.threshold {
		d.buf.Reset()
	}
	return false
}

// Pending returns the current buffer.
func (d *BufferDetector) Pending() string { return d.buf.String() }

// Reset empties the buffer.
func (d *BufferDetector) Reset() { d.buf.Reset() }

// State is always Listening outside Feed.
func (d *BufferDetector) State() State { return d.state }

// SequenceDetector matches the token as an exact ordered run of character
// keys using a prefix automaton. It keeps only the length of the longest
// token prefix that ends at the last key, so there is no buffer to overflow.
// Named keys such as "Shift" or "Enter" break the run.
type SequenceDetector struct {
	token     []rune
	fail      []int
	matched   int
	onTrigger func()
	state     State
}

// NewSequenceDetector returns a SequenceDetector in the Listening state.
func NewSequenceDetector(opts Options) *SequenceDetector {
	token := []rune(opts.token())
	return &SequenceDetector{
		token:     token,
		fail:      failureTable(token),
		onTrigger: opts.OnTrigger,
	}
}

// failureTable computes, for each prefix length i+1, the length of its
// longest proper prefix that is also a suffix.
func failureTable(token []rune) []int {
	fail := make([]int, len(token))
	k := 0
	for i := 1; i < len(token); i++ {
		for k > 0 && token[i] != token[k] {
			k = fail[k-1]
		}
		if token[i] == token[k] {
			k++
		}
		fail[i] = k
	}
	return fail
}

// Feed advances the automaton by one key.
// PRE: none; every key is accepted
// POST: on a match the callback ran and no prefix is held
func (d *SequenceDetector) Feed(key string) bool {
	key = strings.ToLower(key)
	if utf8.RuneCountInString(key) != 1 {
		d.matched = 0
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)

	for d.matched > 0 && d.token[d.matched] != r {
		d.matched = d.fail[d.matched-1]
	}
	if d.token[d.matched] == r {
		d.matched++
	}
	if d.matched < len(d.token) {
		return false
	}

	d.state = Triggered
	if d.onTrigger != nil {
		d.onTrigger()
	}
	d.matched = 0
	d.state = Listening
	return true
}

// Pending returns the token prefix matched so far.
func (d *SequenceDetector) Pending() string { return string(d.token[:d.matched]) }

// Reset forgets any matched prefix.
func (d *SequenceDetector) Reset() { d.matched = 0 }

// State is always Listening outside Feed.
func (d *SequenceDetector) State() State { return d.state }

package secretseq

import (
	"errors"
	"sync"
)

// ReorderWindow is how far ahead of the next expected number KeyAt holds keys.
const ReorderWindow = 16

var (
	ErrReleased       = errors.New("listener released")
	ErrDuplicateKey   = errors.New("key number already seen")
	ErrKeyTooFarAhead = errors.New("key number too far ahead")
)

// Listener forwards keys from one view to a Detector until it is released.
// It is safe for concurrent use: key requests for the same view may race.
type Listener struct {
	mu       sync.Mutex
	detector Detector
	released bool

	next  uint64            // next KeyAt number to feed, from 1
	early map[uint64]string // keys numbered past a gap
}

// Listen attaches d to a new key subscription.
// PRE: d is non-nil and freshly reset
func Listen(d Detector) *Listener {
	return &Listener{detector: d, next: 1}
}

// Key forwards one key. ok is false once the listener has been released, in
// which case the key is dropped and nothing changes.
func (l *Listener) Key(key string) (triggered, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released {
		return false, false
	}
	return l.detector.Feed(key), true
}

// KeyAt forwards the key numbered seq, counting from 1, in number order
// whatever order calls arrive in. A key ahead of a gap is held until the gap
// fills. triggered reports whether any key fed by this call fired the
// detector.
// POST: keys reach the detector in seq order, each at most once
func (l *Listener) KeyAt(seq uint64, key string) (triggered bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released {
		return false, ErrReleased
	}
	switch {
	case seq < l.next:
		return false, ErrDuplicateKey
	case seq >= l.next+ReorderWindow:
		return false, ErrKeyTooFarAhead
	case seq > l.next:
		if l.early == nil {
			l.early = make(map[uint64]string)
		}
		if _, dup := l.early[seq]; dup {
			return false, ErrDuplicateKey
		}
		l.early[seq] = key
		return false, nil
	}

	if l.detector.Feed(key) {
		triggered = true
	}
	l.next++
	for {
		k, ok := l.early[l.next]
		if !ok {
			break
		}
		delete(l.early, l.next)
		if l.detector.Feed(k) {
			triggered = true
		}
		l.next++
	}
	return triggered, nil
}

// Pending reports the detector's held keys.
func (l *Listener) Pending() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.detector.Pending()
}

// Release unsubscribes. It is idempotent.
// POST: Active() is false; the detector is reset and never fed again
func (l *Listener) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released {
		return
	}
	l.released = true
	l.early = nil
	l.detector.Reset()
}

// Active reports whether keys are still forwarded.
func (l *Listener) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.released
}

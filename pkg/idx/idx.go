// Package idx generates the time-ordered identifiers handed to new directory
// records. ULIDs embed their creation time, so insertion order stays
// recoverable from the ids alone.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// generator produces ULIDs safely from a single monotonic entropy source.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

var (
	globalOnce sync.Once
	global     *generator
)

func initGlobal() {
	global = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a fresh lexicographically sortable id using the current UTC
// time.
func New() string {
	globalOnce.Do(initGlobal)
	return global.newAt(time.Now().UTC())
}

// NewAt generates an id at the provided time. Useful in tests that need
// known ordering.
func NewAt(t time.Time) string {
	globalOnce.Do(initGlobal)
	return global.newAt(t.UTC())
}

// Valid reports whether s parses as a canonical ULID.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// Time extracts the embedded UTC timestamp. Malformed ids yield the zero
// time rather than an error; callers only use this for display.
func Time(s string) time.Time {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}

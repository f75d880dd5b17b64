// Package uid generates short, probabilistically unique identifiers for
// labeling chart exports and dataset snapshots.
//
// Uniqueness history is explicit: each Generator owns its own record of
// issued IDs, so two consumers in the same process never silently share
// (or fail to share) collision tracking. There is no package-level state.
package uid

import (
	"crypto/rand"
	"fmt"
	"sync"
)

// alphabet excludes visually ambiguous characters (0/O, 1/l/I).
const alphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// DefaultLength is the ID length used by NewGenerator.
const DefaultLength = 6

// maxAttempts bounds the collision-retry loop; with a 57-character
// alphabet the space is large enough that hitting it means the generator
// is nearly exhausted.
const maxAttempts = 100

// Generator issues unique short IDs. Safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	length int
	issued map[string]bool
}

// NewGenerator returns a Generator issuing IDs of DefaultLength.
func NewGenerator() *Generator {
	return NewGeneratorLen(DefaultLength)
}

// NewGeneratorLen returns a Generator issuing IDs of the given length
// (minimum 2).
func NewGeneratorLen(length int) *Generator {
	if length < 2 {
		length = 2
	}
	return &Generator{length: length, issued: make(map[string]bool)}
}

// Next returns a fresh ID not previously issued by this generator.
func (g *Generator) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		id, err := randomID(g.length)
		if err != nil {
			return "", err
		}
		if !g.issued[id] {
			g.issued[id] = true
			return id, nil
		}
	}
	return "", fmt.Errorf("uid: could not find unused %d-character id after %d attempts", g.length, maxAttempts)
}

// Issued reports how many IDs this generator has handed out.
func (g *Generator) Issued() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.issued)
}

// randomID draws length characters uniformly from the alphabet.
func randomID(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("uid: reading randomness: %w", err)
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}

// Package gameid generates short, time-ordered identifiers for game sessions.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32 alphabet
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// RandSource supplies the random half of an ID. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generator builds UUIDv7-style IDs encoded as 26 base32 characters
type Generator struct {
	randSource RandSource
	clock      quartz.Clock
}

// NewGenerator creates a generator. A nil randSource uses crypto/rand and
// a nil clock uses the real clock.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{randSource: randSource, clock: clock}
}

// Generate returns a new ID using crypto randomness and the wall clock
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a new ID
func (g *Generator) Generate() string {
	return encode(g.uuid())
}

func (g *Generator) uuid() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp
	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("gameid: failed to read random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return id
}

// encode writes the 128 bits as 26 five-bit groups, most significant first.
// The first group only carries 3 bits so it is always 0-7.
func encode(data [16]byte) string {
	var out [Length]byte
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[data[15]&0x1f]
		shiftRight5(&data)
	}
	return string(out[:])
}

func shiftRight5(data *[16]byte) {
	var carry byte
	for i := 0; i < 16; i++ {
		b := data[i]
		data[i] = (b >> 5) | carry
		carry = b << 3
	}
}

// Validate checks if an ID is 26 valid base32 characters
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %c at position %d", r, i)
		}
	}
	return nil
}

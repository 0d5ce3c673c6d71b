package pkg

import (
	"crypto/rand"
	"math/big"
)

const (
	roomCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	roomCodeLength   = 6
)

// GenerateRoomCode - generates a short human-shareable room code.
// Ambiguous characters (0/O, 1/I/L) are left out of the alphabet.
func GenerateRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeAlphabet))))
		if err != nil {
			return ""
		}
		code[i] = roomCodeAlphabet[n.Int64()]
	}

	return string(code)
}

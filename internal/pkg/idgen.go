package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const gameIDUpperBound = 99999999

// GenerateNewSessionID - generates a new unique session ID for a player.
func GenerateNewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateGameID - generates a short numeric identifier for a game room.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(gameIDUpperBound))
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return n.String(), nil
}

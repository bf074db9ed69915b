package utils

import (
	"math/rand"
	"time"
)

const contractNumberLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewContractNumber returns a human-readable contract reference like
// "CT-7GQ2M9X4KD". The contracts table carries a unique index on it.
func NewContractNumber() string {
	b := make([]byte, contractNumberLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return "CT-" + string(b)
}

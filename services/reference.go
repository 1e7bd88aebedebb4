package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// referenceRetries bounds every collision-retry loop so reference
// generation always terminates.
const referenceRetries = 25

var refSuffixCharset = []byte("ABCDEFGHJKMNPQRSTUVWXYZ23456789")

func randomDigits4() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func randomSuffixChar() (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(refSuffixCharset))))
	if err != nil {
		return 0, err
	}
	return refSuffixCharset[n.Int64()], nil
}

// GenerateReference produces a human-readable booking reference
// (PREFIX + year + 4 random digits), re-rolling on collision against the
// supplied predicate. Fails after a bounded number of attempts.
func GenerateReference(prefix string, exists func(string) (bool, error)) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	year := time.Now().Year()

	for attempt := 0; attempt < referenceRetries; attempt++ {
		digits, err := randomDigits4()
		if err != nil {
			return "", fmt.Errorf("failed to generate reference digits: %w", err)
		}
		ref := fmt.Sprintf("%s%d%s", prefix, year, digits)

		taken, err := exists(ref)
		if err != nil {
			return "", fmt.Errorf("failed to check reference uniqueness: %w", err)
		}
		if !taken {
			return ref, nil
		}
	}
	return "", ErrReferenceGeneration
}

// SubReference derives the reference for slot index (1-based; index >= 2)
// of a split booking by appending "-<index>" to the base reference. Any
// leftover collision is resolved by appending random characters, bounded.
func SubReference(base string, index int, exists func(string) (bool, error)) (string, error) {
	if index < 2 {
		return "", fmt.Errorf("sub-reference index must be >= 2, got %d", index)
	}

	candidate := fmt.Sprintf("%s-%d", base, index)
	for attempt := 0; attempt < referenceRetries; attempt++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check sub-reference uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		ch, err := randomSuffixChar()
		if err != nil {
			return "", fmt.Errorf("failed to generate sub-reference suffix: %w", err)
		}
		candidate = candidate + string(ch)
	}
	return "", ErrReferenceGeneration
}

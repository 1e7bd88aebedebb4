package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"
)

func neverExists(string) (bool, error) { return false, nil }

func TestGenerateReferenceFormat(t *testing.T) {
	ref, err := GenerateReference("BK", neverExists)
	if err != nil {
		t.Fatalf("GenerateReference: %v", err)
	}

	wantPrefix := fmt.Sprintf("BK%d", time.Now().Year())
	if !strings.HasPrefix(ref, wantPrefix) {
		t.Errorf("reference %q missing prefix %q", ref, wantPrefix)
	}
	if ok, _ := regexp.MatchString(`^BK\d{8}$`, ref); !ok {
		t.Errorf("reference %q does not match expected shape", ref)
	}
}

func TestGenerateReferenceNormalizesPrefix(t *testing.T) {
	ref, err := GenerateReference("  hz ", neverExists)
	if err != nil {
		t.Fatalf("GenerateReference: %v", err)
	}
	if !strings.HasPrefix(ref, "HZ") {
		t.Errorf("reference %q should start with HZ", ref)
	}
}

func TestGenerateReferenceRerollsOnCollision(t *testing.T) {
	calls := 0
	exists := func(string) (bool, error) {
		calls++
		return calls <= 3, nil
	}

	ref, err := GenerateReference("BK", exists)
	if err != nil {
		t.Fatalf("GenerateReference: %v", err)
	}
	if ref == "" {
		t.Fatal("expected a reference after re-rolls")
	}
	if calls != 4 {
		t.Errorf("expected 4 uniqueness checks, got %d", calls)
	}
}

func TestGenerateReferenceBounded(t *testing.T) {
	calls := 0
	alwaysTaken := func(string) (bool, error) {
		calls++
		return true, nil
	}

	_, err := GenerateReference("BK", alwaysTaken)
	if !errors.Is(err, ErrReferenceGeneration) {
		t.Fatalf("expected ErrReferenceGeneration, got %v", err)
	}
	if calls != referenceRetries {
		t.Errorf("expected %d attempts, got %d", referenceRetries, calls)
	}
}

func TestGenerateReferencePropagatesLookupError(t *testing.T) {
	boom := errors.New("connection lost")
	_, err := GenerateReference("BK", func(string) (bool, error) { return false, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
}

func TestSubReference(t *testing.T) {
	got, err := SubReference("BK20261234", 2, neverExists)
	if err != nil {
		t.Fatalf("SubReference: %v", err)
	}
	if got != "BK20261234-2" {
		t.Errorf("SubReference = %q, want BK20261234-2", got)
	}

	got, err = SubReference("BK20261234", 3, neverExists)
	if err != nil {
		t.Fatalf("SubReference: %v", err)
	}
	if got != "BK20261234-3" {
		t.Errorf("SubReference = %q, want BK20261234-3", got)
	}
}

func TestSubReferenceRejectsLowIndex(t *testing.T) {
	if _, err := SubReference("BK20261234", 1, neverExists); err == nil {
		t.Fatal("expected error for index < 2")
	}
}

func TestSubReferenceResolvesCollisions(t *testing.T) {
	calls := 0
	exists := func(string) (bool, error) {
		calls++
		return calls <= 2, nil
	}

	got, err := SubReference("BK20261234", 2, exists)
	if err != nil {
		t.Fatalf("SubReference: %v", err)
	}
	if !strings.HasPrefix(got, "BK20261234-2") {
		t.Errorf("collision suffix lost the base: %q", got)
	}
	if len(got) != len("BK20261234-2")+2 {
		t.Errorf("expected two suffix characters, got %q", got)
	}
}

func TestSubReferenceBounded(t *testing.T) {
	alwaysTaken := func(string) (bool, error) { return true, nil }
	if _, err := SubReference("BK20261234", 2, alwaysTaken); !errors.Is(err, ErrReferenceGeneration) {
		t.Fatalf("expected ErrReferenceGeneration, got %v", err)
	}
}

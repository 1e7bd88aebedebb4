package utils

import "testing"

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token))
	}

	other, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	if token == other {
		t.Error("two generated tokens should not collide")
	}
}

func TestGenerateSecureTokenRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := GenerateSecureToken(n); err == nil {
			t.Errorf("expected error for length %d", n)
		}
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOTEL_TEST_KEY", "value")
	if got := EnvOrDefault("HOTEL_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("EnvOrDefault = %q, want value", got)
	}

	t.Setenv("HOTEL_TEST_KEY", "   ")
	if got := EnvOrDefault("HOTEL_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("EnvOrDefault = %q, want fallback for blank value", got)
	}

	if got := EnvOrDefault("HOTEL_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("EnvOrDefault = %q, want fallback for unset key", got)
	}
}

package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"+47 123 45 678", "+4712345678"},
		{"(555) 867-5309", "5558675309"},
		{"+49-30-1234567", "+49301234567"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSendWhatsAppMessageRequiresPhone(t *testing.T) {
	if err := SendWhatsAppMessage("---", "hello"); err == nil {
		t.Fatal("expected error for a phone with no digits")
	}
}

func TestSendWhatsAppMessageMockFallback(t *testing.T) {
	t.Setenv("WHATSAPP_API_URL", "")
	t.Setenv("WHATSAPP_API_TOKEN", "")
	if err := SendWhatsAppMessage("+4712345678", "hello"); err != nil {
		t.Fatalf("mock fallback should not fail: %v", err)
	}
}

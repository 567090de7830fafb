package id

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var lowerHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	if !lowerHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// Round-trips through hex back to the 16 random bytes.
	raw, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString: %v", err)
	}
	if len(raw) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(raw))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 200)
	for i := 0; i < 200; i++ {
		got := NewID32()
		if _, dup := seen[got]; dup {
			t.Fatalf("duplicate id after %d iterations: %q", i, got)
		}
		seen[got] = struct{}{}
	}
}

// Ids travel in URLs and headers, so the format stays bare lowercase hex
// with no separators.
func TestNewID32_NoUppercaseOrHyphen(t *testing.T) {
	got := NewID32()
	for _, r := range got {
		if (r >= 'A' && r <= 'Z') || r == '-' {
			t.Fatalf("unexpected character %q in id %q", r, got)
		}
	}
}

package otp

import (
	"strconv"
	"testing"
)

func TestGenerateCode_SixDigitsInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code length = %d, want 6 (%q)", len(code), code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code not numeric: %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of [100000, 999999]", n)
		}
	}
}

func TestHashCode_Consistent(t *testing.T) {
	h1 := HashCode("u1", "5512345678", "123456")
	h2 := HashCode("u1", "5512345678", "123456")
	if h1 != h2 {
		t.Errorf("HashCode not consistent: %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 (SHA-256 hex)", len(h1))
	}
}

func TestHashCode_BoundToIdentityAndPhone(t *testing.T) {
	base := HashCode("u1", "5512345678", "123456")
	if HashCode("u2", "5512345678", "123456") == base {
		t.Error("hash should differ for a different external id")
	}
	if HashCode("u1", "5500000000", "123456") == base {
		t.Error("hash should differ for a different phone")
	}
	if HashCode("u1", "5512345678", "654321") == base {
		t.Error("hash should differ for a different code")
	}
}

func TestCodeEqual(t *testing.T) {
	stored := HashCode("u1", "5512345678", "123456")
	if !CodeEqual("u1", "5512345678", "123456", stored) {
		t.Error("CodeEqual should match the original inputs")
	}
	if CodeEqual("u1", "5512345678", "654321", stored) {
		t.Error("CodeEqual should reject a wrong code")
	}
	if CodeEqual("u2", "5512345678", "123456", stored) {
		t.Error("CodeEqual should reject a different external id")
	}
}

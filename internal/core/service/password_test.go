package service

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/gctu/attendance-api/internal/core/domain"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct salts for identical plaintext")
	}
	if first == "pw1" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !h.Verify("pw1", first) || !h.Verify("pw1", second) {
		t.Fatalf("expected the hashed plaintext to verify")
	}
	if h.Verify("pw2", first) {
		t.Fatalf("expected different plaintext to fail")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, hash := range []string{"", "plaintext", "$2a$04$short"} {
		if h.Verify("anything", hash) {
			t.Fatalf("malformed hash %q must not verify", hash)
		}
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("x", 73)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	if h := NewBcryptHasher(1); h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost for out-of-range input, got %d", h.cost)
	}
}

package hash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("Password1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(digest, "$2a$") && !strings.HasPrefix(digest, "$2b$") {
		t.Errorf("expected a bcrypt digest, got: %s", digest)
	}
	if digest == "Password1!" {
		t.Error("digest must not equal the plaintext")
	}

	// Salted hashing must not be deterministic
	second, err := h.Hash("Password1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == second {
		t.Error("two hashes of the same password must differ")
	}
}

func TestBcryptHasher_Compare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("Password1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !h.Compare("Password1!", digest) {
		t.Error("expected matching password to verify")
	}
	if h.Compare("wrong-password", digest) {
		t.Error("expected mismatched password to fail")
	}
	if h.Compare("Password1!", "not-a-digest") {
		t.Error("expected garbage digest to fail")
	}
}

func TestBcryptHasher_CompareDummy(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.CompareDummy("anything") {
		t.Error("dummy comparison must always report failure")
	}
	if h.CompareDummy("") {
		t.Error("dummy comparison must always report failure")
	}
}

func TestNewBcryptHasher_CostClamping(t *testing.T) {
	// Out-of-range costs must not panic and must still produce valid digests
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		h := NewBcryptHasher(cost)
		digest, err := h.Hash("Password1!")
		if err != nil {
			t.Fatalf("cost %d: unexpected error: %v", cost, err)
		}
		if !h.Compare("Password1!", digest) {
			t.Errorf("cost %d: digest did not verify", cost)
		}
	}
}

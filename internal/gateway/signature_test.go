package gateway

import (
	"errors"
	"testing"

	"dinehub/internal/domain"
)

func TestVerifySignature(t *testing.T) {
	secret := []byte("whsec_test")
	body := []byte(`{"type":"payment.succeeded","intent_id":"pi_123"}`)

	if err := VerifySignature(secret, body, Sign(secret, body)); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	secret := []byte("whsec_test")
	sig := Sign(secret, []byte(`{"intent_id":"pi_123"}`))

	err := VerifySignature(secret, []byte(`{"intent_id":"pi_999"}`), sig)
	if !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("want ErrBadSignature, got %v", err)
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	body := []byte(`{}`)
	sig := Sign([]byte("whsec_a"), body)

	if err := VerifySignature([]byte("whsec_b"), body, sig); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("want ErrBadSignature, got %v", err)
	}
}

func TestVerifySignature_NotHex(t *testing.T) {
	if err := VerifySignature([]byte("s"), []byte(`{}`), "zzzz"); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("want ErrBadSignature, got %v", err)
	}
}

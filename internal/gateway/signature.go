package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"dinehub/internal/domain"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Dinehub-Signature"

func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the webhook signature in constant time. The payload
// must not be trusted before this passes.
func VerifySignature(secret, body []byte, signature string) error {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return domain.ErrBadSignature
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return domain.ErrBadSignature
	}
	return nil
}

package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
)

// hmacBase64URL computes URL-safe base64(HMAC-SHA256(key, message)).
func hmacBase64URL(key, message []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

// BuildPolyHmacSignature builds the L2 signature over the canonical string
// timestamp + METHOD + requestPath + body. The secret is base64 URL-safe
// encoded key material, matching what the /auth endpoints issue; the body, when
// present, must be the exact serialized payload that goes on the wire.
func BuildPolyHmacSignature(secret string, timestamp int64, method, requestPath string, body *string) (string, error) {
	key, err := base64.URLEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("decode api secret: %w", err)
	}

	message := strconv.FormatInt(timestamp, 10) + method + requestPath
	if body != nil {
		message += *body
	}

	return hmacBase64URL(key, []byte(message)), nil
}

// Package signature computes GitHub hub signatures for webhook bodies.
package signature

import (
	"crypto/hmac"
	"crypto/sha1" // #nosec G505 -- X-Hub-Signature is defined as HMAC-SHA1
	"encoding/hex"
)

// SHA1Prefix is the algorithm prefix of an X-Hub-Signature value
const SHA1Prefix = "sha1="

// SHA1 returns "sha1=<hex>" where hex is HMAC-SHA1 of body keyed by secret.
// The secret is used as raw bytes.
func SHA1(body []byte, secret string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return SHA1Prefix + hex.EncodeToString(mac.Sum(nil))
}

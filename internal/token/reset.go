// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package token

import (
	"crypto/sha256"
	"errors"
	"time"

	"github.com/gorilla/securecookie"
)

// ErrInvalidOrExpired is returned for any reset token failure. Tampering and
// expiry are deliberately not distinguished on this path; the client only
// ever learns "link invalid or expired".
var ErrInvalidOrExpired = errors.New("reset token invalid or expired")

// resetSalt separates the reset codec's signing context from the access
// codec's. It feeds both the key derivation and the securecookie name, so a
// reset token can never verify as an access token or vice versa.
const resetSalt = "password-reset"

// ResetCodec issues signed, time-limited tokens carrying a username, used
// only for password-reset confirmation. Tokens are multi-use within their
// validity window; there is no server-side consumption record.
type ResetCodec struct {
	sc *securecookie.SecureCookie
}

// NewResetCodec derives a dedicated HMAC key from the process secret and the
// fixed salt. The issuance timestamp securecookie embeds is checked against
// maxAge at decode time.
func NewResetCodec(secret string, maxAge time.Duration) *ResetCodec {
	key := sha256.Sum256([]byte(secret + ":" + resetSalt))
	sc := securecookie.New(key[:], nil)
	sc.MaxAge(int(maxAge.Seconds()))
	return &ResetCodec{sc: sc}
}

// Issue signs the username together with the current timestamp.
func (c *ResetCodec) Issue(username string) (string, error) {
	return c.sc.Encode(resetSalt, username)
}

// Verify checks signature and age and returns the embedded username.
func (c *ResetCodec) Verify(tokenString string) (string, error) {
	var username string
	if err := c.sc.Decode(resetSalt, tokenString, &username); err != nil {
		return "", ErrInvalidOrExpired
	}
	return username, nil
}

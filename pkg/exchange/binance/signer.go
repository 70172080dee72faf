package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"mbx/pkg/core"
)

// Signer appends recvWindow, timestamp and an HMAC-SHA256 signature to encoded parameters.
// It holds only the secret and a clock, so one Signer is safe for concurrent use.
type Signer struct {
	secret string
	now    func() time.Time
}

// SignerOption configures a Signer.
type SignerOption func(*Signer)

// WithSignerClock replaces the clock used for the timestamp parameter.
func WithSignerClock(now func() time.Time) SignerOption {
	return func(s *Signer) {
		s.now = now
	}
}

// NewSigner returns a Signer keyed with secret.
func NewSigner(secret string, opts ...SignerOption) *Signer {
	s := &Signer{
		secret: secret,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign encodes params and returns the complete signed query string.
// The clock is read exactly once.
func (s *Signer) Sign(params core.Params, recvWindow uint64) string {
	return s.SignAt(params.Encode(), recvWindow, s.now().UnixMilli())
}

// SignAt signs an already encoded parameter string with an explicit timestamp.
// The result is encoded&recvWindow=..&timestamp=..&signature=.., with no leading
// separator when encoded is empty.
func (s *Signer) SignAt(encoded string, recvWindow uint64, timestampMs int64) string {
	var sb strings.Builder
	sb.Grow(len(encoded) + 128)
	if encoded != "" {
		sb.WriteString(encoded)
		sb.WriteByte('&')
	}
	sb.WriteString("recvWindow=")
	sb.WriteString(strconv.FormatUint(recvWindow, 10))
	sb.WriteString("&timestamp=")
	sb.WriteString(strconv.FormatInt(timestampMs, 10))

	payload := sb.String()
	sb.WriteString("&signature=")
	sb.WriteString(Signature(payload, s.secret))
	return sb.String()
}

// Signature returns the lowercase hex HMAC-SHA256 of payload keyed with secret.
func Signature(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

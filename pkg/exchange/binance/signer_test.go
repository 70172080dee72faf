package binance

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mbx/pkg/core"
)

// Published exchange example key and request.
const (
	docSecret    = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	docQuery     = "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1"
	docTimestamp = int64(1499827319559)
	docSignature = "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"
)

func TestSignature_KnownVector(t *testing.T) {
	payload := docQuery + "&recvWindow=5000&timestamp=1499827319559"
	assert.Equal(t, docSignature, Signature(payload, docSecret))
}

func TestSigner_SignAt(t *testing.T) {
	s := NewSigner(docSecret)

	got := s.SignAt(docQuery, 5000, docTimestamp)
	assert.Equal(t, docQuery+"&recvWindow=5000&timestamp=1499827319559&signature="+docSignature, got)
}

func TestSigner_Pure(t *testing.T) {
	s := NewSigner(docSecret)

	a := s.SignAt(docQuery, 5000, docTimestamp)
	b := s.SignAt(docQuery, 5000, docTimestamp)
	assert.Equal(t, a, b)
}

func TestSigner_Sensitivity(t *testing.T) {
	base := NewSigner(docSecret).SignAt(docQuery, 5000, docTimestamp)

	tests := []struct {
		name string
		got  string
	}{
		{"timestamp", NewSigner(docSecret).SignAt(docQuery, 5000, docTimestamp+1)},
		{"recv_window", NewSigner(docSecret).SignAt(docQuery, 5001, docTimestamp)},
		{"params", NewSigner(docSecret).SignAt(strings.Replace(docQuery, "0.1", "0.2", 1), 5000, docTimestamp)},
		{"secret", NewSigner(docSecret+"x").SignAt(docQuery, 5000, docTimestamp)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, signatureOf(base), signatureOf(tt.got))
		})
	}
}

func signatureOf(query string) string {
	_, sig, _ := strings.Cut(query, "&signature=")
	return sig
}

func TestSigner_EmptyParams(t *testing.T) {
	s := NewSigner("secret")

	got := s.SignAt("", 5000, 1)
	assert.True(t, strings.HasPrefix(got, "recvWindow=5000&timestamp=1&signature="), got)
	assert.Len(t, signatureOf(got), 64)
}

func TestSigner_RecvWindowNotClamped(t *testing.T) {
	s := NewSigner("secret")

	got := s.SignAt("symbol=BTCUSDT", 70000, 1)
	assert.Contains(t, got, "&recvWindow=70000&")
}

func TestSigner_SignUsesClockOnce(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return time.UnixMilli(docTimestamp)
	}
	s := NewSigner(docSecret, WithSignerClock(clock))

	params := core.NewParams(
		"symbol", "LTCBTC", "side", "BUY", "type", "LIMIT",
		"timeInForce", "GTC", "quantity", "1", "price", "0.1",
	)
	got := s.Sign(params, 5000)

	assert.Equal(t, 1, calls)
	assert.Equal(t, docSignature, signatureOf(got))
}

func TestSigner_Concurrent(t *testing.T) {
	s := NewSigner(docSecret)
	want := s.SignAt(docQuery, 5000, docTimestamp)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, s.SignAt(docQuery, 5000, docTimestamp))
		}()
	}
	wg.Wait()
}

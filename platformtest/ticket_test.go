package platformtest

import (
	"testing"
	"time"

	"github.com/lanternworks/gridlink/internal/testutil/testlog"
	"github.com/lanternworks/gridlink/platform"
)

func TestVerifyTicket(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := New(Config{
		Logger:    testlog.Start(t),
		TicketTTL: time.Minute,
		Clock:     func() time.Time { return now },
	})

	buf := make([]byte, 1024)
	_, n := p.GetAuthSessionTicket(buf)
	ticket := buf[:n]
	if n != ticketLen {
		t.Fatalf("unexpected ticket length: %d", n)
	}

	tests := []struct {
		name   string
		mutate func([]byte)
		want   platform.BeginResult
	}{
		{name: "valid", mutate: func([]byte) {}, want: platform.BeginOK},
		{name: "flipped mac byte", mutate: func(tk []byte) { tk[ticketMacOffset] ^= 1 }, want: platform.BeginInvalidTicket},
		{name: "flipped body byte", mutate: func(tk []byte) { tk[20] ^= 1 }, want: platform.BeginInvalidTicket},
		{name: "wrong version", mutate: func(tk []byte) { tk[0] = 9 }, want: platform.BeginInvalidVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := make([]byte, len(ticket))
			copy(tk, ticket)
			tc.mutate(tk)

			p.mu.Lock()
			_, res := p.verifyTicket(tk)
			p.mu.Unlock()
			if res != tc.want {
				t.Fatalf("expected result %d, got %d", tc.want, res)
			}
		})
	}
}

func TestVerifyTicketUnknownHandle(t *testing.T) {
	p := New(Config{Logger: testlog.Start(t)})

	// Correctly MAC'd for this emulator and app, but never issued
	// through GetAuthSessionTicket, so no handle state exists.
	orphan := p.MintForeignTicket(p.cfg.AppID)

	p.mu.Lock()
	_, res := p.verifyTicket(orphan)
	p.mu.Unlock()
	if res != platform.BeginInvalidTicket {
		t.Fatalf("expected invalid-ticket result, got %d", res)
	}
}

func TestVerifyTicketExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := New(Config{
		Logger:    testlog.Start(t),
		TicketTTL: time.Minute,
		Clock:     func() time.Time { return now },
	})

	buf := make([]byte, 1024)
	_, n := p.GetAuthSessionTicket(buf)
	ticket := buf[:n]

	check := func(want platform.BeginResult) {
		t.Helper()
		p.mu.Lock()
		_, res := p.verifyTicket(ticket)
		p.mu.Unlock()
		if res != want {
			t.Fatalf("expected result %d, got %d", want, res)
		}
	}

	check(platform.BeginOK)
	now = now.Add(59 * time.Second)
	check(platform.BeginOK)
	now = now.Add(2 * time.Second)
	check(platform.BeginExpiredTicket)
}

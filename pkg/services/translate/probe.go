package translate

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
)

// Prober reports whether the translation backend is reachable.
type Prober interface {
	Online(ctx context.Context) bool
}

// NetProber dials a fixed TCP endpoint with a short timeout.
type NetProber struct {
	Addr    string
	Timeout time.Duration
}

// NewProber returns a prober against the configured host and port.
func NewProber() *NetProber {
	cfg := settings.Current
	return &NetProber{
		Addr:    net.JoinHostPort(cfg.ProbeHost, strconv.Itoa(cfg.ProbePort)),
		Timeout: cfg.ProbeTimeout,
	}
}

func (p *NetProber) Online(ctx context.Context) bool {
	d := net.Dialer{Timeout: p.Timeout}
	conn, err := d.DialContext(ctx, "tcp", p.Addr)
	if err != nil {
		logger().Infow("connectivity probe fail", "addr", p.Addr, "err", err)
		return false
	}
	_ = conn.Close()
	logger().Debugw("connectivity verified", "addr", p.Addr)
	return true
}

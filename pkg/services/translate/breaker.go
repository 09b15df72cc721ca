package translate

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

const (
	breakerCooldown = time.Second * 30
	breakerTripAt   = 5
)

// breakerTranslator fails fast once the backend keeps erroring, until the
// cooldown lets a probe request through again.
type breakerTranslator struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker
}

func withBreaker(name string, inner Translator) Translator {
	return &breakerTranslator{
		inner: inner,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    name,
			Timeout: breakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerTripAt
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger().Infow("breaker state change", "name", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

func (b *breakerTranslator) Translate(ctx context.Context, text string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

package evergreen

import (
	"context"
	"errors"
	"log"
	"strings"
)

// Canned blessings used when generation is unavailable.
const (
	MissingKeyBlessing = "May your holidays be filled with golden moments and emerald dreams."
	FallbackBlessing   = "The stars align to grant your heart's deepest desires this season."
)

// ErrNoCredentials is returned by a Blesser that has no API credentials.
var ErrNoCredentials = errors.New("evergreen: blessing credentials missing")

// Blesser generates a short blessing inspired by a wish. Implementations live
// outside this package and may block on the network.
type Blesser interface {
	Bless(ctx context.Context, wish string) (string, error)
}

// BlesserFunc adapts a function to the Blesser interface.
type BlesserFunc func(ctx context.Context, wish string) (string, error)

// Bless calls fn(ctx, wish).
func (fn BlesserFunc) Bless(ctx context.Context, wish string) (string, error) {
	return fn(ctx, wish)
}

// BlessOrFallback asks b for a blessing and substitutes a canned one on any
// failure, so the result can always be submitted as a wish. A nil b counts as
// missing credentials.
func BlessOrFallback(ctx context.Context, b Blesser, wish string) string {
	if b == nil {
		return MissingKeyBlessing
	}
	text, err := b.Bless(ctx, wish)
	switch {
	case errors.Is(err, ErrNoCredentials):
		return MissingKeyBlessing
	case err != nil:
		log.Printf("evergreen: blessing generation failed: %v", err)
		return FallbackBlessing
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackBlessing
	}
	return text
}

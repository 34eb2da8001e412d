package outbound

import (
	"context"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// CatalogPort reads the provider's locale and voice catalogs. Both calls
// are idempotent, side-effect-free reads; callers must not rely on any
// ordering beyond what the provider returns.
type CatalogPort interface {
	// FetchLocales returns the supported locales in provider order.
	// Fails with domain.ErrCatalogUnavailable when the catalog cannot be
	// reached.
	FetchLocales(ctx context.Context) ([]domain.Locale, error)

	// FetchVoices returns the voices for one locale in provider order.
	// Fails with domain.ErrLocaleNotFound for a locale the provider does
	// not know.
	FetchVoices(ctx context.Context, locale string) ([]domain.Voice, error)
}

package outbound

import "context"

// TranslatorPort translates the source announcement into the target
// locale's language before synthesis.
type TranslatorPort interface {
	Translate(ctx context.Context, text string, targetLocale string) (string, error)
}

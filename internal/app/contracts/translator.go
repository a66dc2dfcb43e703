package contracts

import "context"

// Translator renders Arabic source text into English. Implementations
// fall back to the source text when translation fails.
type Translator interface {
	TranslateToEnglish(ctx context.Context, text string) string
}

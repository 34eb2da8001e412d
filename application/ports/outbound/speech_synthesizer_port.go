package outbound

import (
	"context"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// SpeechSession is a single-use provider handle bound to exactly one
// locale/voice pair. Its configuration is immutable; it must not be reused
// for another pair. Close releases the provider resources and must be
// called on every exit path.
type SpeechSession interface {
	// Speak synthesizes the text and returns the raw WAV audio.
	Speak(ctx context.Context, text string) ([]byte, error)
	Close() error
}

// SpeechSessionFactoryPort acquires a fresh synthesis session per target.
type SpeechSessionFactoryPort interface {
	NewSession(target domain.SynthesisTarget) (SpeechSession, error)
}

package inbound

import (
	"context"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// SynthesisOrchestratorPort turns one request into an ordered list of
// audio+transcript results. Result index i corresponds exactly to target
// index i. Any single-target failure fails the whole batch; no partial
// results are ever returned.
type SynthesisOrchestratorPort interface {
	Synthesize(ctx context.Context, request domain.SynthesisRequest) ([]domain.SynthesisResult, error)
}

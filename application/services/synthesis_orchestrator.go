package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/inbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

const audioFileExtension = ".wav"

type synthesisOrchestrator struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	sessions   outbound.SpeechSessionFactoryPort
	translator outbound.TranslatorPort
	audioStore outbound.AudioStorePort
	prober     outbound.AudioDurationPort
}

// NewSynthesisOrchestrator wires the per-target pipeline: translate,
// acquire a single-use speech session, synthesize, probe the duration and
// persist the artifact. The translator may be nil, in which case the
// transcript is the source text.
func NewSynthesisOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	sessions outbound.SpeechSessionFactoryPort, translator outbound.TranslatorPort,
	audioStore outbound.AudioStorePort, prober outbound.AudioDurationPort) inbound.SynthesisOrchestratorPort {
	return &synthesisOrchestrator{
		logger:     logger,
		workerPool: workerPool,
		sessions:   sessions,
		translator: translator,
		audioStore: audioStore,
		prober:     prober,
	}
}

// Synthesize processes the targets concurrently on the worker pool but
// collects results into indexed slots, so the output order always matches
// the request order. The first failure cancels the batch context and the
// whole batch fails; partially produced results are discarded.
func (s *synthesisOrchestrator) Synthesize(ctx context.Context, request domain.SynthesisRequest) ([]domain.SynthesisResult, error) {
	if request.Text == "" {
		return nil, fmt.Errorf("synthesis request text must not be empty")
	}
	if len(request.Targets) == 0 {
		return nil, fmt.Errorf("synthesis request must have at least one target")
	}

	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]domain.SynthesisResult, len(request.Targets))
	errCh := make(chan error, len(request.Targets))

	var wg sync.WaitGroup
	for i, target := range request.Targets {
		i, target := i, target
		wg.Add(1)
		err := s.workerPool.Submit(func() {
			defer wg.Done()

			if newCtx.Err() != nil {
				return
			}

			result, err := s.synthesizeOne(newCtx, request.Text, target)
			if err != nil {
				errCh <- err
				cancel()
				return
			}
			results[i] = result
		})
		if err != nil {
			wg.Done()
			errCh <- err
			cancel()
		}
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	// Workers skip their targets silently once the caller's context is
	// gone; the batch must still fail rather than return empty results.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *synthesisOrchestrator) synthesizeOne(ctx context.Context, text string, target domain.SynthesisTarget) (domain.SynthesisResult, error) {
	transcript := text
	if s.translator != nil {
		translated, err := s.translator.Translate(ctx, text, target.Locale)
		if err != nil {
			return domain.SynthesisResult{}, domain.NewSynthesisError(domain.KindTranslationFailed, target, err)
		}
		transcript = translated
	}

	session, err := s.sessions.NewSession(target)
	if err != nil {
		return domain.SynthesisResult{}, domain.NewSynthesisError(domain.KindProviderCanceled, target, err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			s.logger.ErrorWithFields(closeErr, "failed to release speech session", map[string]interface{}{
				"locale": target.Locale,
				"voice":  target.VoiceID,
			})
		}
	}()

	audio, err := session.Speak(ctx, transcript)
	if err != nil {
		kind := domain.KindProviderCanceled
		if errors.Is(err, domain.ErrUnexpectedProviderResult) {
			kind = domain.KindProviderUnexpectedResult
		}
		return domain.SynthesisResult{}, domain.NewSynthesisError(kind, target, err)
	}
	if len(audio) == 0 {
		return domain.SynthesisResult{}, domain.NewSynthesisError(domain.KindEmptyResult, target,
			errors.New("provider completed without audio"))
	}

	duration, err := s.prober.Probe(audio)
	if err != nil {
		return domain.SynthesisResult{}, domain.NewSynthesisError(domain.KindEmptyResult, target, err)
	}

	name := uuid.NewString() + audioFileExtension
	url, err := s.audioStore.Upload(ctx, audio, name)
	if err != nil {
		return domain.SynthesisResult{}, domain.NewSynthesisError(domain.KindStorageFailure, target, err)
	}

	s.logger.DebugWithFields("synthesized announcement", map[string]interface{}{
		"locale":   target.Locale,
		"voice":    target.VoiceID,
		"duration": duration,
		"url":      url,
	})

	return domain.SynthesisResult{
		Transcript:      transcript,
		AudioURL:        url,
		DurationSeconds: duration,
	}, nil
}

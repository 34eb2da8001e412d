package services

import (
	"context"
	"sync"
	"time"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/inbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// RevealCadence is the fixed typing cadence of the transcript reveal.
const RevealCadence = 50 * time.Millisecond

type playbackSequencer struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	player     outbound.AudioPlayerPort
	presenter  outbound.TranscriptPresenterPort

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewPlaybackSequencer(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	player outbound.AudioPlayerPort, presenter outbound.TranscriptPresenterPort) inbound.PlaybackSequencerPort {
	return &playbackSequencer{
		logger:     logger,
		workerPool: workerPool,
		player:     player,
		presenter:  presenter,
	}
}

func (p *playbackSequencer) Play(status domain.ProcessingStatus, results []domain.SynthesisResult) (<-chan struct{}, error) {
	done := make(chan struct{})

	if status != domain.StatusSuccess || len(results) == 0 {
		close(done)
		return done, nil
	}

	p.mu.Lock()
	p.seq++
	token := p.seq
	if p.cancel != nil {
		// Supersede the in-flight sequence; its callbacks carry an older
		// token and will be discarded.
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.mu.Unlock()

	err := p.workerPool.Submit(func() {
		defer close(done)
		p.run(ctx, token, results)
	})
	if err != nil {
		p.mu.Lock()
		if p.seq == token {
			p.cancel = nil
		}
		p.mu.Unlock()
		cancel()
		close(done)
		return done, err
	}

	return done, nil
}

func (p *playbackSequencer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *playbackSequencer) run(ctx context.Context, token uint64, results []domain.SynthesisResult) {
	defer func() {
		p.mu.Lock()
		if p.seq == token {
			p.cancel = nil
		}
		p.mu.Unlock()
	}()

	for i, result := range results {
		if p.stale(token) || ctx.Err() != nil {
			return
		}

		if err := p.player.Play(ctx, result.AudioURL); err != nil {
			// Keep pacing the reveal even when local playback fails, so the
			// announcement sequence stays intact.
			p.logger.WarnWithFields("audio playback failed", map[string]interface{}{
				"index": i,
				"url":   result.AudioURL,
				"error": err.Error(),
			})
		}

		p.presenter.BeginTranscript(i, result.Transcript)

		transcript := []rune(result.Transcript)
		for _, r := range transcript {
			if !p.pause(ctx, RevealCadence) || p.stale(token) {
				return
			}
			p.presenter.AppendRune(r)
		}

		revealDuration := time.Duration(len(transcript)) * RevealCadence
		audioDuration := time.Duration(result.DurationSeconds * float64(time.Second))
		if extra := audioDuration - revealDuration; extra > 0 {
			// Text must never finish before the audio it accompanies.
			if !p.pause(ctx, extra) || p.stale(token) {
				return
			}
		}

		p.presenter.EndTranscript(i)
	}
}

func (p *playbackSequencer) stale(token uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq != token
}

// pause sleeps for d or until the sequence is cancelled. It never leaks
// the timer.
func (p *playbackSequencer) pause(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

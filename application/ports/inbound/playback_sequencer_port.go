package inbound

import (
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// PlaybackSequencerPort replays an ordered result list: typed transcript
// reveal plus audio per result, never advancing before both the reveal and
// the audio of the current result have finished.
type PlaybackSequencerPort interface {
	// Play starts a new sequence and supersedes any in-flight one. It is a
	// no-op unless status is success and results is non-empty. The returned
	// channel closes when the sequence ends or is superseded.
	Play(status domain.ProcessingStatus, results []domain.SynthesisResult) (<-chan struct{}, error)

	// Stop abandons any in-flight sequence.
	Stop()
}

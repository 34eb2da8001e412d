package outbound

import "context"

// AudioPlayerPort starts playback of an audio artifact. Play returns once
// playback has started; the sequencer paces itself from the result's
// measured duration. Cancelling the context stops playback.
type AudioPlayerPort interface {
	Play(ctx context.Context, audioURL string) error
}

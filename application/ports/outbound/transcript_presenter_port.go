package outbound

// TranscriptPresenterPort receives the typed-text reveal of a transcript,
// one rune per cadence tick.
type TranscriptPresenterPort interface {
	BeginTranscript(index int, transcript string)
	AppendRune(r rune)
	EndTranscript(index int)
}

package inbound

import (
	"context"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// LanguageSettingStorePort owns the ordered target-language configuration
// list and the selected index into it. Updates are tagged operations, each
// with its own invalidation effect: SetLocale clears the voice and its
// adjustments, SetVoice attaches derived defaults, SetStyle/SetPitch/
// SetRate touch only their own dimension.
type LanguageSettingStorePort interface {
	// Settings returns a snapshot of the ordered configuration list.
	Settings() []domain.LanguageSetting

	// SelectedIndex returns the currently selected entry's index.
	SelectedIndex() int

	// SelectIndex moves the selection. Out-of-bounds indices are a silent
	// no-op.
	SelectIndex(i int)

	SetLocale(i int, locale domain.Locale) error
	SetVoice(i int, voice domain.Voice) error
	SetStyle(i int, style string) error
	SetPitch(i int, pitch float64) error
	SetRate(i int, rate float64) error

	// ResolveVoice fetches the voice list for the setting's locale and, if
	// the setting still has none, assigns the first fetched voice with
	// derived default adjustments. Concurrent triggers for the same setting
	// coalesce into a single in-flight fetch; a fetch superseded by a
	// locale change never applies its results. The returned channel yields
	// at most one error and is closed when the resolution settles.
	ResolveVoice(ctx context.Context, i int) <-chan error

	// VoicesFor returns the cached voice list for setting i, if fetched.
	VoicesFor(i int) []domain.Voice

	// Status reports the processing status gating edits and playback.
	Status() domain.ProcessingStatus

	// BeginProcessing locks edits and flips the status to pending.
	BeginProcessing() error

	// FinishProcessing unlocks edits with the terminal status.
	FinishProcessing(success bool)

	// Targets builds the ordered synthesis targets from the settings.
	// Fails with domain.ErrUnresolvedVoice when any setting has no voice.
	Targets() ([]domain.SynthesisTarget, error)
}

package domain

type ProcessingStatus string

const (
	StatusIdle    ProcessingStatus = "idle"
	StatusPending ProcessingStatus = "pending"
	StatusSuccess ProcessingStatus = "success"
	StatusFailure ProcessingStatus = "failure"
)

// Locale identifies a target spoken language/region as reported by the
// speech provider's catalog.
type Locale struct {
	Code        string
	DisplayName string
}

// Range bounds a tunable prosody dimension.
type Range struct {
	Min float64
	Max float64
}

// Midpoint is the default value applied when a voice is newly selected.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Voice is a synthesizer voice bound to one locale. PitchRange and
// RateRange are nil when the voice does not support tuning that dimension.
type Voice struct {
	ID          string
	DisplayName string
	Locale      string
	Styles      []string
	PitchRange  *Range
	RateRange   *Range
}

func (v Voice) SupportsPitch() bool {
	return v.PitchRange != nil
}

func (v Voice) SupportsRate() bool {
	return v.RateRange != nil
}

// VoiceAdjustments holds the style/pitch/rate applied to one synthesis
// call. A nil field means the selected voice does not support that
// dimension and it must not be rendered or submitted.
type VoiceAdjustments struct {
	Style *string
	Pitch *float64
	Rate  *float64
}

// LanguageSetting is one entry in the ordered target-language list. Voice
// and Adjustments stay nil until resolved for the current locale; changing
// the locale invalidates both.
type LanguageSetting struct {
	Locale      Locale
	Voice       *Voice
	Adjustments *VoiceAdjustments
}

// Resolved reports whether the setting can be turned into a synthesis
// target.
func (s LanguageSetting) Resolved() bool {
	return s.Voice != nil
}

// SynthesisTarget is one (locale, voice) pair of a synthesis request.
// Absent adjustment dimensions are not submitted.
type SynthesisTarget struct {
	Locale      string
	VoiceID     string
	Adjustments *VoiceAdjustments
}

type SynthesisRequest struct {
	Text    string
	Targets []SynthesisTarget
}

// SynthesisResult carries one translated announcement. Results of a batch
// are ordered exactly like the request targets.
type SynthesisResult struct {
	Transcript      string
	AudioURL        string
	DurationSeconds float64
}

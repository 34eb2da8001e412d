package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable means the provider's locale/voice catalog could
	// not be reached. Settings stay editable and the fetch is retriable.
	ErrCatalogUnavailable = errors.New("locale catalog unavailable")

	// ErrLocaleNotFound means the provider does not know the requested locale.
	ErrLocaleNotFound = errors.New("locale not found")

	// ErrUnexpectedProviderResult marks a provider response that is neither a
	// completion nor a cancellation.
	ErrUnexpectedProviderResult = errors.New("unexpected provider result")

	// ErrSettingsBusy is returned for edits attempted while a synthesis
	// request is pending.
	ErrSettingsBusy = errors.New("language settings are locked while processing")

	// ErrUnresolvedVoice is returned when a synthesis request is built from a
	// setting whose voice has not been resolved yet.
	ErrUnresolvedVoice = errors.New("language setting has no resolved voice")
)

type SynthesisErrorKind string

const (
	KindProviderCanceled         SynthesisErrorKind = "provider_canceled"
	KindProviderUnexpectedResult SynthesisErrorKind = "provider_unexpected_result"
	KindTranslationFailed        SynthesisErrorKind = "translation_failed"
	KindStorageFailure           SynthesisErrorKind = "storage_failure"
	KindEmptyResult              SynthesisErrorKind = "empty_result"
)

// SynthesisError is the single terminal failure shape of a synthesis
// batch. It names the target that failed; no partial results accompany it.
type SynthesisError struct {
	Kind    SynthesisErrorKind
	Locale  string
	VoiceID string
	Err     error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis failed for %s/%s (%s): %v", e.Locale, e.VoiceID, e.Kind, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

func NewSynthesisError(kind SynthesisErrorKind, target SynthesisTarget, err error) *SynthesisError {
	return &SynthesisError{
		Kind:    kind,
		Locale:  target.Locale,
		VoiceID: target.VoiceID,
		Err:     err,
	}
}

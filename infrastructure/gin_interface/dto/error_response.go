package dto

import (
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

type FailedTarget struct {
	Locale  string `json:"locale"`
	VoiceID string `json:"voice_id"`
}

// ErrorResponse is the single failure payload of the API; a synthesis
// batch either succeeds completely or yields exactly one of these.
type ErrorResponse struct {
	Kind         string        `json:"kind"`
	Message      string        `json:"message"`
	FailedTarget *FailedTarget `json:"failed_target,omitempty"`
}

func FromSynthesisError(err *domain.SynthesisError) ErrorResponse {
	return ErrorResponse{
		Kind:    string(err.Kind),
		Message: err.Error(),
		FailedTarget: &FailedTarget{
			Locale:  err.Locale,
			VoiceID: err.VoiceID,
		},
	}
}

package dto

import (
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

type SynthesisTargetRequest struct {
	Locale  string   `json:"locale" binding:"required"`
	VoiceID string   `json:"voice_id" binding:"required"`
	Style   *string  `json:"style,omitempty"`
	Pitch   *float64 `json:"pitch,omitempty"`
	Rate    *float64 `json:"rate,omitempty"`
}

type SynthesizeRequest struct {
	Text    string                   `json:"text" binding:"required"`
	Targets []SynthesisTargetRequest `json:"targets" binding:"required,min=1,dive"`
}

func (r SynthesizeRequest) ToDomain() domain.SynthesisRequest {
	targets := make([]domain.SynthesisTarget, 0, len(r.Targets))
	for _, target := range r.Targets {
		var adjustments *domain.VoiceAdjustments
		if target.Style != nil || target.Pitch != nil || target.Rate != nil {
			adjustments = &domain.VoiceAdjustments{
				Style: target.Style,
				Pitch: target.Pitch,
				Rate:  target.Rate,
			}
		}
		targets = append(targets, domain.SynthesisTarget{
			Locale:      target.Locale,
			VoiceID:     target.VoiceID,
			Adjustments: adjustments,
		})
	}
	return domain.SynthesisRequest{
		Text:    r.Text,
		Targets: targets,
	}
}

func FromDomainTarget(target domain.SynthesisTarget) SynthesisTargetRequest {
	request := SynthesisTargetRequest{
		Locale:  target.Locale,
		VoiceID: target.VoiceID,
	}
	if target.Adjustments != nil {
		request.Style = target.Adjustments.Style
		request.Pitch = target.Adjustments.Pitch
		request.Rate = target.Adjustments.Rate
	}
	return request
}

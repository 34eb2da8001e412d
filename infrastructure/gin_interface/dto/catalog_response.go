package dto

import (
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

type LocaleResponse struct {
	Locale      string `json:"locale"`
	DisplayName string `json:"display_name"`
}

type RangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type VoiceResponse struct {
	VoiceID     string         `json:"voice_id"`
	DisplayName string         `json:"display_name"`
	Locale      string         `json:"locale"`
	Styles      []string       `json:"styles,omitempty"`
	PitchRange  *RangeResponse `json:"pitch_range,omitempty"`
	RateRange   *RangeResponse `json:"rate_range,omitempty"`
}

func FromDomainLocales(locales []domain.Locale) []LocaleResponse {
	response := make([]LocaleResponse, 0, len(locales))
	for _, locale := range locales {
		response = append(response, LocaleResponse{
			Locale:      locale.Code,
			DisplayName: locale.DisplayName,
		})
	}
	return response
}

func (r LocaleResponse) ToDomain() domain.Locale {
	return domain.Locale{Code: r.Locale, DisplayName: r.DisplayName}
}

func FromDomainVoices(voices []domain.Voice) []VoiceResponse {
	response := make([]VoiceResponse, 0, len(voices))
	for _, voice := range voices {
		response = append(response, FromDomainVoice(voice))
	}
	return response
}

func FromDomainVoice(voice domain.Voice) VoiceResponse {
	result := VoiceResponse{
		VoiceID:     voice.ID,
		DisplayName: voice.DisplayName,
		Locale:      voice.Locale,
		Styles:      voice.Styles,
	}
	if voice.PitchRange != nil {
		result.PitchRange = &RangeResponse{Min: voice.PitchRange.Min, Max: voice.PitchRange.Max}
	}
	if voice.RateRange != nil {
		result.RateRange = &RangeResponse{Min: voice.RateRange.Min, Max: voice.RateRange.Max}
	}
	return result
}

func (r VoiceResponse) ToDomain() domain.Voice {
	voice := domain.Voice{
		ID:          r.VoiceID,
		DisplayName: r.DisplayName,
		Locale:      r.Locale,
		Styles:      r.Styles,
	}
	if r.PitchRange != nil {
		voice.PitchRange = &domain.Range{Min: r.PitchRange.Min, Max: r.PitchRange.Max}
	}
	if r.RateRange != nil {
		voice.RateRange = &domain.Range{Min: r.RateRange.Min, Max: r.RateRange.Max}
	}
	return voice
}

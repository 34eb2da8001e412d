package dto

import (
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

type SynthesisResultResponse struct {
	Transcript      string  `json:"transcript"`
	AudioURL        string  `json:"audio_url"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type SynthesizeResponse struct {
	Results []SynthesisResultResponse `json:"results"`
}

func FromDomainResults(results []domain.SynthesisResult) SynthesizeResponse {
	response := SynthesizeResponse{
		Results: make([]SynthesisResultResponse, 0, len(results)),
	}
	for _, result := range results {
		response.Results = append(response.Results, SynthesisResultResponse{
			Transcript:      result.Transcript,
			AudioURL:        result.AudioURL,
			DurationSeconds: result.DurationSeconds,
		})
	}
	return response
}

func (r SynthesizeResponse) ToDomain() []domain.SynthesisResult {
	results := make([]domain.SynthesisResult, 0, len(r.Results))
	for _, result := range r.Results {
		results = append(results, domain.SynthesisResult{
			Transcript:      result.Transcript,
			AudioURL:        result.AudioURL,
			DurationSeconds: result.DurationSeconds,
		})
	}
	return results
}

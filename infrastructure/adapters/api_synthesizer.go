package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/inbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/gin_interface/dto"
)

type apiSynthesizer struct {
	logger  outbound.LoggerPort
	baseURL string
	token   string
	client  *http.Client
}

// NewApiSynthesizer lets the announcer drive the synthesis API's
// /synthesize endpoint through the same orchestrator port the server
// implements locally.
func NewApiSynthesizer(logger outbound.LoggerPort, baseURL string, token string, timeout time.Duration) inbound.SynthesisOrchestratorPort {
	return &apiSynthesizer{
		logger:  logger,
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (a *apiSynthesizer) Synthesize(ctx context.Context, request domain.SynthesisRequest) ([]domain.SynthesisResult, error) {
	targets := make([]dto.SynthesisTargetRequest, 0, len(request.Targets))
	for _, target := range request.Targets {
		targets = append(targets, dto.FromDomainTarget(target))
	}

	payload, err := json.Marshal(dto.SynthesizeRequest{Text: request.Text, Targets: targets})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/synthesize", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, decodeSynthesisFailure(res.StatusCode, body)
	}

	var response dto.SynthesizeResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode synthesis response: %w", err)
	}
	return response.ToDomain(), nil
}

// decodeSynthesisFailure rebuilds the server's failure shape so callers
// can inspect the failing target locally.
func decodeSynthesisFailure(status int, body []byte) error {
	var payload dto.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Kind == "" {
		return fmt.Errorf("synthesis request failed with status %d: %s", status, string(body))
	}

	synthErr := &domain.SynthesisError{
		Kind: domain.SynthesisErrorKind(payload.Kind),
		Err:  errors.New(payload.Message),
	}
	if payload.FailedTarget != nil {
		synthErr.Locale = payload.FailedTarget.Locale
		synthErr.VoiceID = payload.FailedTarget.VoiceID
	}
	return synthErr
}

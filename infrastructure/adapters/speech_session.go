package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/config"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

const speechOutputFormat = "riff-24khz-16bit-mono-pcm"

type speechSessionFactory struct {
	logger       outbound.LoggerPort
	speechConfig *config.SpeechConfig
}

// NewSpeechSessionFactory builds single-use synthesis sessions against the
// speech provider's REST endpoint. Each session is configured for exactly
// one locale/voice pair and must be closed after its Speak call.
func NewSpeechSessionFactory(logger outbound.LoggerPort, speechConfig *config.SpeechConfig) outbound.SpeechSessionFactoryPort {
	return &speechSessionFactory{
		logger:       logger,
		speechConfig: speechConfig,
	}
}

func (f *speechSessionFactory) NewSession(target domain.SynthesisTarget) (outbound.SpeechSession, error) {
	if target.Locale == "" || target.VoiceID == "" {
		return nil, fmt.Errorf("speech session requires both locale and voice, got %q/%q", target.Locale, target.VoiceID)
	}

	return &speechSession{
		logger:       f.logger,
		speechConfig: f.speechConfig,
		target:       target,
		client:       &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type speechSession struct {
	logger       outbound.LoggerPort
	speechConfig *config.SpeechConfig
	target       domain.SynthesisTarget
	client       *http.Client

	mu     sync.Mutex
	used   bool
	closed bool
}

func (s *speechSession) Speak(ctx context.Context, text string) ([]byte, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("speech session already closed")
	}
	if s.used {
		s.mu.Unlock()
		return nil, fmt.Errorf("speech session is single-use and was already spoken")
	}
	s.used = true
	s.mu.Unlock()

	ssml := buildSSML(s.target, text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.speechConfig.Endpoint+"/cognitiveservices/v1", strings.NewReader(ssml))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.speechConfig.ApiKey)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", speechOutputFormat)

	res, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("locale", s.target.Locale).Str("voice", s.target.VoiceID).
			Msg("Speech synthesis request failed")
		return nil, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		contentType := res.Header.Get("Content-Type")
		if contentType != "" && !strings.Contains(contentType, "audio") {
			return nil, fmt.Errorf("provider replied with content type %q: %w",
				contentType, domain.ErrUnexpectedProviderResult)
		}
		return io.ReadAll(res.Body)
	case res.StatusCode >= http.StatusBadRequest:
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("provider canceled synthesis: status %d: %s", res.StatusCode, string(detail))
	default:
		return nil, fmt.Errorf("provider replied with status %d: %w", res.StatusCode, domain.ErrUnexpectedProviderResult)
	}
}

func (s *speechSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.client.CloseIdleConnections()
	return nil
}

// buildSSML renders the synthesis request. Only adjustment dimensions the
// voice supports are present on the target, so absent dimensions never
// reach the wire.
func buildSSML(target domain.SynthesisTarget, text string) string {
	var b strings.Builder

	b.WriteString(`<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xmlns:mstts="https://www.w3.org/2001/mstts" xml:lang="`)
	b.WriteString(target.Locale)
	b.WriteString(`"><voice name="`)
	b.WriteString(target.VoiceID)
	b.WriteString(`">`)

	style := ""
	prosody := ""
	if target.Adjustments != nil {
		if target.Adjustments.Style != nil {
			style = *target.Adjustments.Style
		}
		if target.Adjustments.Pitch != nil {
			prosody = fmt.Sprintf(` pitch="%+.0f%%"`, *target.Adjustments.Pitch)
		}
		if target.Adjustments.Rate != nil {
			prosody += fmt.Sprintf(` rate="%.0f%%"`, *target.Adjustments.Rate)
		}
	}

	if style != "" {
		b.WriteString(`<mstts:express-as style="` + xmlEscape(style) + `">`)
	}
	if prosody != "" {
		b.WriteString("<prosody" + prosody + ">")
	}

	b.WriteString(xmlEscape(text))

	if prosody != "" {
		b.WriteString("</prosody>")
	}
	if style != "" {
		b.WriteString("</mstts:express-as>")
	}

	b.WriteString("</voice></speak>")
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

package config

import (
	"fmt"
	"os"
)

type SpeechConfig struct {
	ApiKey   string
	Region   string
	Endpoint string
}

func GetSpeechConfig() (*SpeechConfig, error) {
	apiKey := os.Getenv("SPEECH_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SPEECH_API_KEY must be set")
	}

	region := os.Getenv("SPEECH_REGION")
	if region == "" {
		return nil, fmt.Errorf("SPEECH_REGION must be set")
	}

	// SPEECH_ENDPOINT overrides the regional endpoint, mainly for the local
	// fake provider.
	endpoint := os.Getenv("SPEECH_ENDPOINT")
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.tts.speech.microsoft.com", region)
	}

	return &SpeechConfig{
		ApiKey:   apiKey,
		Region:   region,
		Endpoint: endpoint,
	}, nil
}

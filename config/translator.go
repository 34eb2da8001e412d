package config

import (
	"fmt"
	"os"
)

type TranslatorConfig struct {
	ApiKey   string
	Region   string
	Endpoint string
}

func GetTranslatorConfig() (*TranslatorConfig, error) {
	apiKey := os.Getenv("TRANSLATOR_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("TRANSLATOR_API_KEY must be set")
	}

	region := os.Getenv("TRANSLATOR_REGION")
	if region == "" {
		return nil, fmt.Errorf("TRANSLATOR_REGION must be set")
	}

	endpoint := os.Getenv("TRANSLATOR_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://api.cognitive.microsofttranslator.com"
	}

	return &TranslatorConfig{
		ApiKey:   apiKey,
		Region:   region,
		Endpoint: endpoint,
	}, nil
}

package config

import (
	"os"
)

type GatewayConfig struct {
	Port         string
	JwksURL      string
	MockProvider bool
	AudioDir     string
	AudioBaseURL string
}

func GetGatewayConfig() (*GatewayConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// AUDIO_DIR switches artifact storage from S3 to a locally served
	// directory, for running against the local fake provider.
	audioBaseURL := os.Getenv("AUDIO_BASE_URL")
	if audioBaseURL == "" {
		audioBaseURL = "http://localhost:" + port + "/audio"
	}

	// JWKS_URL is optional; the auth middleware is skipped when it is
	// unset so the service can run without an identity provider.
	return &GatewayConfig{
		Port:         port,
		JwksURL:      os.Getenv("JWKS_URL"),
		MockProvider: os.Getenv("MOCK_PROVIDER") == "true",
		AudioDir:     os.Getenv("AUDIO_DIR"),
		AudioBaseURL: audioBaseURL,
	}, nil
}

package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AnnouncerConfig configures the terminal client.
type AnnouncerConfig struct {
	// ApiURL is the base URL of the synthesis API.
	ApiURL string `envconfig:"ANNOUNCER_API_URL" default:"http://localhost:8080"`

	// ApiToken is the bearer token sent to the API, if it requires auth.
	ApiToken string `envconfig:"ANNOUNCER_API_TOKEN" default:""`

	// PlayerCommand is the external audio player invoked with the audio URL
	// appended, e.g. "ffplay -nodisp -autoexit -loglevel quiet".
	PlayerCommand string `envconfig:"ANNOUNCER_PLAYER_COMMAND" default:"ffplay -nodisp -autoexit -loglevel quiet"`

	// RequestTimeout bounds the synthesis call, in seconds.
	RequestTimeout int `envconfig:"ANNOUNCER_REQUEST_TIMEOUT" default:"120"`

	// Verbose enables debug logging.
	Verbose bool `envconfig:"ANNOUNCER_VERBOSE" default:"false"`
}

func GetAnnouncerConfig() (*AnnouncerConfig, error) {
	_ = godotenv.Load()

	var cfg AnnouncerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load announcer config: %w", err)
	}
	return &cfg, nil
}

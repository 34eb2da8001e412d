package adapters

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/mattn/go-shellwords"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
)

type execAudioPlayer struct {
	logger outbound.LoggerPort
	cmd    []string
}

// NewExecAudioPlayer starts an external player process per audio artifact,
// appending the audio URL to the configured command. Playback runs in the
// background; cancelling the context kills the process.
func NewExecAudioPlayer(logger outbound.LoggerPort, command string) (outbound.AudioPlayerPort, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse player command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("player command empty")
	}
	return &execAudioPlayer{logger: logger, cmd: args}, nil
}

func (p *execAudioPlayer) Play(ctx context.Context, audioURL string) error {
	args := append([]string{}, p.cmd[1:]...)
	args = append(args, audioURL)

	cmd := exec.CommandContext(ctx, p.cmd[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start audio player: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			p.logger.WarnWithFields("audio player exited with error", map[string]interface{}{
				"url":   audioURL,
				"error": err.Error(),
			})
		}
	}()

	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/services"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/channel_utils"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/config"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/adapters"
)

func main() {
	phrase := flag.Int("phrase", 0, "announce the nth preset phrase instead of the arguments")
	flag.Parse()

	announcerConfig, err := config.GetAnnouncerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get announcer config")
	}

	level := zerolog.WarnLevel
	if announcerConfig.Verbose {
		level = zerolog.DebugLevel
	}
	logger := adapters.NewConsoleZerologWrapper(level)

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		index := *phrase - 1
		if index < 0 || index >= len(domain.PresetPhrases) {
			index = 0
		}
		text = domain.PresetPhrases[index]
	}

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(20, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	catalog := adapters.NewApiCatalog(logger, announcerConfig.ApiURL, announcerConfig.ApiToken)
	store := services.NewLanguageSettingStore(logger, catalog, workerPool, domain.PresetSettings())

	resolveCtx, cancelResolve := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelResolve()

	errChs := make([]<-chan error, 0, len(store.Settings()))
	for i := range store.Settings() {
		errChs = append(errChs, store.ResolveVoice(resolveCtx, i))
	}
	merged, err := channel_utils.MergeChannels(workerPool, errChs...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to merge voice resolution channels")
	}
	for resolveErr := range merged {
		if resolveErr != nil {
			log.Fatal().Err(resolveErr).Msg("Failed to resolve voices")
		}
	}

	targets, err := store.Targets()
	if err != nil {
		log.Fatal().Err(err).Msg("Voices unresolved")
	}

	if err := store.BeginProcessing(); err != nil {
		log.Fatal().Err(err).Msg("Settings busy")
	}

	synthesizer := adapters.NewApiSynthesizer(logger, announcerConfig.ApiURL, announcerConfig.ApiToken,
		time.Duration(announcerConfig.RequestTimeout)*time.Second)

	synthesisCtx, cancelSynthesis := context.WithTimeout(context.Background(),
		time.Duration(announcerConfig.RequestTimeout)*time.Second)
	defer cancelSynthesis()

	results, err := synthesizer.Synthesize(synthesisCtx, domain.SynthesisRequest{Text: text, Targets: targets})
	store.FinishProcessing(err == nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Synthesis failed")
	}

	player, err := adapters.NewExecAudioPlayer(logger, announcerConfig.PlayerCommand)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create audio player")
	}

	sequencer := services.NewPlaybackSequencer(logger, workerPool, player, adapters.NewTerminalPresenter(os.Stdout))

	done, err := sequencer.Play(store.Status(), results)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start playback")
	}
	<-done
}

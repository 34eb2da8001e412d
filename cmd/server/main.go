package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/services"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/config"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/adapters"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/gin_interface/controllers"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/middleware"
	mockprovider "github.com/pras0411/mslearn-intro-translator-text-to-speech/mock"
)

func main() {
	gatewayConfig, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gateway config")
	}

	speechConfig, err := config.GetSpeechConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get speech config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	fetcher := adapters.NewContentFetcher(zeroLogger)

	catalog := adapters.NewSpeechCatalog(zeroLogger, fetcher, speechConfig)
	sessionFactory := adapters.NewSpeechSessionFactory(zeroLogger, speechConfig)

	var translator outbound.TranslatorPort
	if translatorConfig, translatorErr := config.GetTranslatorConfig(); translatorErr == nil {
		translator = adapters.NewTranslator(zeroLogger, fetcher, translatorConfig)
	} else {
		zeroLogger.Warn("Translation disabled, transcripts will carry the source text")
	}

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	var audioStore outbound.AudioStorePort
	if gatewayConfig.AudioDir != "" {
		audioStore, err = adapters.NewFileAudioStore(zeroLogger, gatewayConfig.AudioDir, gatewayConfig.AudioBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create file audio store")
		}
		router.Static("/audio", gatewayConfig.AudioDir)
	} else {
		s3Config, s3Err := config.GetS3Config()
		if s3Err != nil {
			log.Fatal().Err(s3Err).Msg("Failed to get s3 config")
		}
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		audioStore = adapters.NewS3AudioStore(s3.New(sess), s3Config)
	}

	orchestrator := services.NewSynthesisOrchestrator(zeroLogger, workerPool, sessionFactory,
		translator, audioStore, adapters.NewWavProber())

	announcementsController := controllers.NewAnnouncementsController(zeroLogger, orchestrator, catalog)

	if gatewayConfig.JwksURL != "" {
		authHandler, authErr := middleware.NewAuthHandler(gatewayConfig.JwksURL)
		if authErr != nil {
			log.Fatal().Err(authErr).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	} else {
		zeroLogger.Warn("JWKS_URL not set, running without authentication")
	}

	if gatewayConfig.MockProvider {
		mockprovider.Init(router, zeroLogger)
	}

	announcementsController.RegisterRoutes(router)

	err = router.Run(":" + gatewayConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

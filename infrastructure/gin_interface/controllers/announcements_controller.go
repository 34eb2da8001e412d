package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/inbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/infrastructure/gin_interface/dto"
)

type AnnouncementsController interface {
	Synthesize(c *gin.Context)
	ListLocales(c *gin.Context)
	ListVoices(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type announcementsController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.SynthesisOrchestratorPort
	catalog      outbound.CatalogPort
}

func NewAnnouncementsController(logger outbound.LoggerPort, orchestrator inbound.SynthesisOrchestratorPort,
	catalog outbound.CatalogPort) AnnouncementsController {
	return &announcementsController{
		logger:       logger,
		orchestrator: orchestrator,
		catalog:      catalog,
	}
}

func (a *announcementsController) Synthesize(c *gin.Context) {
	var request dto.SynthesizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Kind:    "invalid_request",
			Message: err.Error(),
		})
		return
	}

	results, err := a.orchestrator.Synthesize(c.Request.Context(), request.ToDomain())
	if err != nil {
		a.logger.Error(err, "synthesis batch failed")

		var synthErr *domain.SynthesisError
		if errors.As(err, &synthErr) {
			c.JSON(http.StatusBadGateway, dto.FromSynthesisError(synthErr))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Kind:    "internal",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromDomainResults(results))
}

func (a *announcementsController) ListLocales(c *gin.Context) {
	locales, err := a.catalog.FetchLocales(c.Request.Context())
	if err != nil {
		a.logger.Error(err, "failed to fetch locales")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Kind:    "catalog_unavailable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromDomainLocales(locales))
}

func (a *announcementsController) ListVoices(c *gin.Context) {
	locale := c.Query("locale")
	if locale == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Kind:    "invalid_request",
			Message: "locale query parameter is required",
		})
		return
	}

	voices, err := a.catalog.FetchVoices(c.Request.Context(), locale)
	if err != nil {
		if errors.Is(err, domain.ErrLocaleNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Kind:    "locale_not_found",
				Message: err.Error(),
			})
			return
		}
		a.logger.Error(err, "failed to fetch voices")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Kind:    "catalog_unavailable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromDomainVoices(voices))
}

func (a *announcementsController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	g.GET("/locales", a.ListLocales)
	g.GET("/voices", a.ListVoices)
	g.POST("/synthesize", a.Synthesize)
}

package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nadira/tripstylist/internal/domain/intent"
	"github.com/nadira/tripstylist/internal/domain/narrative"
	"github.com/nadira/tripstylist/internal/domain/recommend"
	apperrors "github.com/nadira/tripstylist/pkg/errors"
)

// NarrativeComposer phrases a pipeline result as a chat reply.
type NarrativeComposer interface {
	Compose(ctx context.Context, query string, travel intent.TravelIntent, result *recommend.Result) narrative.Narrative
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	parser      *intent.Parser
	recommender recommend.Service
	composer    NarrativeComposer
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(parser *intent.Parser, recommender recommend.Service, composer NarrativeComposer, logger *slog.Logger) *Handler {
	return &Handler{
		parser:      parser,
		recommender: recommender,
		composer:    composer,
		logger:      logger.With("component", "http.handler"),
	}
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
}

// ChatResponse bundles the reply with the structured data behind it so
// frontends can render product cards alongside the message.
type ChatResponse struct {
	RequestID string              `json:"requestId"`
	SessionID string              `json:"sessionId,omitempty"`
	Intent    intent.TravelIntent `json:"intent"`
	narrative.Narrative
	Recommendation *recommend.Result `json:"recommendation,omitempty"`
}

// Chat runs the full pipeline for one user message.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "message cannot be empty", nil))
		return
	}

	travel := h.parser.Parse(req.Message)

	result, err := h.recommender.Recommend(c.Request.Context(), travel)
	if err != nil {
		status := http.StatusInternalServerError
		code := "chat_failed"
		if apperrors.IsCode(err, recommend.ErrCatalogUnavailable) {
			status = http.StatusBadGateway
			code = "catalog_unavailable"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	reply := h.composer.Compose(c.Request.Context(), req.Message, travel, result)

	c.JSON(http.StatusOK, ChatResponse{
		RequestID:      requestIDFrom(c),
		SessionID:      req.SessionID,
		Intent:         travel,
		Narrative:      reply,
		Recommendation: result,
	})
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Gateway,NoticeLoader

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gppgateway/internal/notice/models"
	"gppgateway/internal/ted"
	"gppgateway/pkg/platform/httputil"
	"gppgateway/pkg/requestcontext"
)

// Gateway is the remote rendering and validation service.
type Gateway interface {
	Render(ctx context.Context, xml, language string) ted.Result
	Validate(ctx context.Context, xml, sdkVersion, language, mode string) ted.Result
}

// NoticeLoader parses a notice so its SDK version can be sent along.
type NoticeLoader interface {
	LoadNotice(ctx context.Context, xml string, manualTesting bool) (models.Notice, error)
}

// Handler proxies visualization and validation to the TED API. Remote
// failures are reported in the body with status 200.
type Handler struct {
	gateway Gateway
	loader  NoticeLoader
	logger  *slog.Logger
}

// New constructs a TED proxy handler.
func New(gateway Gateway, loader NoticeLoader, logger *slog.Logger) *Handler {
	return &Handler{
		gateway: gateway,
		loader:  loader,
		logger:  logger,
	}
}

// Register mounts the proxy endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/visualize-notice", h.HandleVisualize)
	r.Post("/validate-notice", h.HandleValidate)
}

// HandleVisualize handles POST /visualize-notice?language=.
func (h *Handler) HandleVisualize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[VisualizeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	language := strings.TrimSpace(r.URL.Query().Get("language"))
	if language == "" {
		language = defaultLanguage
	}

	result := h.gateway.Render(ctx, req.NoticeXML, language)

	h.logger.InfoContext(ctx, "notice visualized",
		"request_id", requestID,
		"language", language,
		"ok", result.OK,
		"remote_status", result.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, toVisualizeResponse(result))
}

// HandleValidate handles POST /validate-notice. The notice is loaded first to
// read its SDK version; a notice that cannot be loaded is a client error.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	notice, err := h.loader.LoadNotice(ctx, req.NoticeXML, false)
	if err != nil {
		h.logger.WarnContext(ctx, "notice could not be loaded for validation",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result := h.gateway.Validate(ctx, req.NoticeXML, notice.SDKVersion(), req.Language, req.ValidationMode)

	h.logger.InfoContext(ctx, "notice validated",
		"request_id", requestID,
		"sdk_version", notice.SDKVersion(),
		"validation_mode", req.ValidationMode,
		"ok", result.OK,
		"remote_status", result.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, toValidateResponse(result))
}

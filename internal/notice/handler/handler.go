package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gppgateway/internal/notice/models"
	dErrors "gppgateway/pkg/domain-errors"
	"gppgateway/pkg/platform/httputil"
	"gppgateway/pkg/requestcontext"
)

const unicornBanner = "🦄 This is the unicorn endpoint!"

// Service is the analyzer facade.
type Service interface {
	AnalyzeNotice(ctx context.Context, xml string, manualTesting bool) (*models.AnalysisResult, error)
	SuggestPatches(ctx context.Context, xml string, criteria []models.Criterion, manualTesting bool) ([]models.Patch, error)
	ApplyPatches(ctx context.Context, xml string, patches []models.Patch, manualTesting bool) (models.Notice, error)
}

// Handler wires the notice analysis and patch endpoints to the facade.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a notice handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the notice endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/analyze-notice", h.HandleAnalyze)
	r.Post("/suggest-patches", h.HandleSuggestPatches)
	r.Post("/apply-patches", h.HandleApplyPatches)
	r.Get("/unicorn", h.HandleUnicorn)
}

// HandleAnalyze handles POST /analyze-notice. The body is the raw notice XML.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	manual, err := parseManualTesting(r.URL.Query().Get("manualTesting"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to read notice body",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, httputil.BodyReadError(err, "request body could not be read"))
		return
	}
	xml := string(raw)
	if strings.TrimSpace(xml) == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "notice XML body is required"))
		return
	}

	result, err := h.service.AnalyzeNotice(ctx, xml, manual)
	if err != nil {
		h.logError(ctx, "notice analysis failed", requestID, manual, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "notice analyzed",
		"request_id", requestID,
		"manual_testing", manual,
		"sdk_version", result.SDKVersion,
		"lots", len(result.Lots),
		"is_gpp", result.IsGPP,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleSuggestPatches handles POST /suggest-patches.
func (h *Handler) HandleSuggestPatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	manual, err := parseManualTesting(r.URL.Query().Get("manualTesting"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[SuggestPatchesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := requireNotice(req.NoticeXML, manual); err != nil {
		httputil.WriteError(w, err)
		return
	}

	patches, err := h.service.SuggestPatches(ctx, req.NoticeXML, req.Criteria, manual)
	if err != nil {
		h.logError(ctx, "patch suggestion failed", requestID, manual, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "patches suggested",
		"request_id", requestID,
		"manual_testing", manual,
		"patches", len(patches),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, &SuggestPatchesResponse{SuggestedPatches: patches})
}

// HandleApplyPatches handles POST /apply-patches.
func (h *Handler) HandleApplyPatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	manual, err := parseManualTesting(r.URL.Query().Get("manualTesting"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[ApplyPatchesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := requireNotice(req.NoticeXML, manual); err != nil {
		httputil.WriteError(w, err)
		return
	}

	patched, err := h.service.ApplyPatches(ctx, req.NoticeXML, req.Patches, manual)
	if err != nil {
		h.logError(ctx, "patch application failed", requestID, manual, err)
		httputil.WriteError(w, err)
		return
	}
	xml, err := patched.XML()
	if err != nil {
		h.logError(ctx, "patched notice could not be serialized", requestID, manual, err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to serialize patched notice"))
		return
	}

	h.logger.InfoContext(ctx, "patches applied",
		"request_id", requestID,
		"manual_testing", manual,
		"patches", len(req.Patches),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, &ApplyPatchesResponse{PatchedNoticeXML: xml})
}

// HandleUnicorn handles GET /unicorn, a plain-text liveness check.
func (h *Handler) HandleUnicorn(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "unicorn endpoint called",
		"request_id", requestcontext.RequestID(r.Context()),
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, unicornBanner)
}

// logError logs client errors at warn and everything else at error.
func (h *Handler) logError(ctx context.Context, msg, requestID string, manual bool, err error) {
	level := slog.LevelError
	if dErrors.CodeOf(err) != dErrors.CodeInternal {
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestID,
		"manual_testing", manual,
		"error", err,
	)
}

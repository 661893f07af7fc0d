package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Analyzer,NoticeStore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gppgateway/internal/notice/metrics"
	"gppgateway/internal/notice/models"
	dErrors "gppgateway/pkg/domain-errors"
	"gppgateway/pkg/platform/sentinel"
	"gppgateway/pkg/requestcontext"
)

// Analyzer is the external analysis collaborator. Detection rules and patch
// semantics live behind it.
type Analyzer interface {
	LoadNotice(xml string) (models.Notice, error)
	AnalyzeNotice(notice models.Notice) (*models.AnalysisResult, error)
	SuggestPatches(notice models.Notice, criteria []models.Criterion) ([]models.Patch, error)
	ApplyPatches(notice models.Notice, patches []models.Patch) (models.Notice, error)
}

// NoticeStore is the single-slot manual-testing store.
type NoticeStore interface {
	Put(ctx context.Context, notice models.Notice) error
	Get(ctx context.Context) (models.Notice, error)
}

const (
	opLoad    = "load"
	opAnalyze = "analyze"
	opSuggest = "suggest"
	opApply   = "apply"
)

// Service is the analyzer facade. It forwards to the collaborator and owns
// only the manual-testing branch: storing on load/analyze, recalling on
// suggest/apply.
type Service struct {
	analyzer Analyzer
	store    NoticeStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the facade. A nil store disables manual testing: every call
// with the flag set then fails instead of touching shared state.
func New(analyzer Analyzer, store NoticeStore, opts ...Option) *Service {
	s := &Service{
		analyzer: analyzer,
		store:    store,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadNotice parses xml through the collaborator. With manualTesting set the
// notice also replaces the manual-testing slot.
func (s *Service) LoadNotice(ctx context.Context, xml string, manualTesting bool) (notice models.Notice, err error) {
	defer s.observe(opLoad, time.Now(), &err)
	return s.loadAndRemember(ctx, xml, manualTesting)
}

// AnalyzeNotice loads xml (storing it when manualTesting is set) and runs the
// collaborator's analysis.
func (s *Service) AnalyzeNotice(ctx context.Context, xml string, manualTesting bool) (result *models.AnalysisResult, err error) {
	defer s.observe(opAnalyze, time.Now(), &err)

	notice, err := s.loadAndRemember(ctx, xml, manualTesting)
	if err != nil {
		return nil, err
	}
	result, err = s.analyzer.AnalyzeNotice(notice)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "notice analysis failed")
	}
	return result, nil
}

// SuggestPatches returns the collaborator's patches for the given criteria in
// the order it produced them. With manualTesting set, xml is ignored and the
// stored notice is used.
func (s *Service) SuggestPatches(ctx context.Context, xml string, criteria []models.Criterion, manualTesting bool) (patches []models.Patch, err error) {
	defer s.observe(opSuggest, time.Now(), &err)

	notice, err := s.resolve(ctx, xml, manualTesting)
	if err != nil {
		return nil, err
	}
	patches, err = s.analyzer.SuggestPatches(notice, criteria)
	if err != nil {
		if errors.Is(err, models.ErrUnknownCriterion) {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid criteria")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "patch suggestion failed")
	}
	if patches == nil {
		patches = []models.Patch{}
	}
	if s.metrics != nil {
		s.metrics.AddPatchesSuggested(len(patches))
	}
	s.logger.InfoContext(ctx, "patches suggested",
		"request_id", requestcontext.RequestID(ctx),
		"manual_testing", manualTesting,
		"criteria", len(criteria),
		"patches", len(patches),
	)
	return patches, nil
}

// ApplyPatches applies patches in order. Application is all-or-nothing: any
// failure aborts the call and no patched notice is returned.
func (s *Service) ApplyPatches(ctx context.Context, xml string, patches []models.Patch, manualTesting bool) (patched models.Notice, err error) {
	defer s.observe(opApply, time.Now(), &err)

	notice, err := s.resolve(ctx, xml, manualTesting)
	if err != nil {
		return nil, err
	}
	patched, err = s.analyzer.ApplyPatches(notice, patches)
	if err != nil {
		if !errors.Is(err, models.ErrPatchApplication) {
			err = fmt.Errorf("%w: %v", models.ErrPatchApplication, err)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnprocessable, "patches could not be applied")
	}
	if patched == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "analyzer returned no notice")
	}
	if s.metrics != nil {
		s.metrics.AddPatchesApplied(len(patches))
	}
	s.logger.InfoContext(ctx, "patches applied",
		"request_id", requestcontext.RequestID(ctx),
		"manual_testing", manualTesting,
		"patches", len(patches),
	)
	return patched, nil
}

func (s *Service) loadAndRemember(ctx context.Context, xml string, manualTesting bool) (models.Notice, error) {
	if manualTesting && s.store == nil {
		return nil, manualTestingDisabled()
	}
	notice, err := s.load(xml)
	if err != nil {
		return nil, err
	}
	if manualTesting {
		if err := s.store.Put(ctx, notice); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store manual-testing notice")
		}
		if s.metrics != nil {
			s.metrics.IncrementManualNoticeLoads()
		}
		s.logger.InfoContext(ctx, "manual testing notice stored",
			"request_id", requestcontext.RequestID(ctx),
			"sdk_version", notice.SDKVersion(),
		)
	}
	return notice, nil
}

// resolve picks the notice a suggest/apply call works on.
func (s *Service) resolve(ctx context.Context, xml string, manualTesting bool) (models.Notice, error) {
	if !manualTesting {
		return s.load(xml)
	}
	if s.store == nil {
		return nil, manualTestingDisabled()
	}
	s.logger.InfoContext(ctx, "manual testing mode enabled",
		"request_id", requestcontext.RequestID(ctx),
	)
	notice, err := s.store.Get(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(models.ErrNoManualNoticeLoaded, dErrors.CodeInvalidState,
			"load a notice with manualTesting=true before using manual mode")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read manual-testing notice")
	}
	return notice, nil
}

func (s *Service) load(xml string) (models.Notice, error) {
	notice, err := s.analyzer.LoadNotice(xml)
	if err != nil {
		if !errors.Is(err, models.ErrMalformedNotice) {
			err = fmt.Errorf("%w: %v", models.ErrMalformedNotice, err)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "notice XML could not be loaded")
	}
	return notice, nil
}

func (s *Service) observe(operation string, start time.Time, err *error) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, start, *err)
	}
}

func manualTestingDisabled() error {
	return dErrors.Wrap(models.ErrManualTestingDisabled, dErrors.CodeForbidden, "manual testing is disabled")
}

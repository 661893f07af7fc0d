package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"gppgateway/internal/notice/metrics"
	"gppgateway/internal/notice/models"
	"gppgateway/internal/notice/service/mocks"
	"gppgateway/internal/notice/store"
	dErrors "gppgateway/pkg/domain-errors"
	"gppgateway/pkg/platform/sentinel"
)

type fakeNotice struct {
	version string
	xml     string
}

func (n *fakeNotice) SDKVersion() string   { return n.version }
func (n *fakeNotice) XML() (string, error) { return n.xml, nil }

type ServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	analyzer *mocks.MockAnalyzer
	store    *store.InMemoryStore
	metrics  *metrics.Metrics
	svc      *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.analyzer = mocks.NewMockAnalyzer(s.ctrl)
	s.store = store.NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = New(s.analyzer, s.store, WithMetrics(s.metrics))
}

func (s *ServiceSuite) TestAnalyzeNotice() {
	ctx := context.Background()
	notice := &fakeNotice{version: "eforms-sdk-1.10", xml: "<ContractNotice/>"}
	expected := &models.AnalysisResult{SDKVersion: "eforms-sdk-1.10"}

	s.Run("without manual testing the store is untouched", func() {
		s.analyzer.EXPECT().LoadNotice("<ContractNotice/>").Return(notice, nil)
		s.analyzer.EXPECT().AnalyzeNotice(notice).Return(expected, nil)

		result, err := s.svc.AnalyzeNotice(ctx, "<ContractNotice/>", false)
		s.Require().NoError(err)
		s.Equal(expected, result)

		_, err = s.store.Get(ctx)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("manual testing stores the notice before analysis", func() {
		gomock.InOrder(
			s.analyzer.EXPECT().LoadNotice("<ContractNotice/>").Return(notice, nil),
			s.analyzer.EXPECT().AnalyzeNotice(notice).Return(expected, nil),
		)

		_, err := s.svc.AnalyzeNotice(ctx, "<ContractNotice/>", true)
		s.Require().NoError(err)

		stored, err := s.store.Get(ctx)
		s.Require().NoError(err)
		s.Same(notice, stored)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.ManualNoticeLoads))
	})

	s.Run("malformed notice", func() {
		s.analyzer.EXPECT().LoadNotice("garbage").Return(nil, errors.New("syntax error"))

		_, err := s.svc.AnalyzeNotice(ctx, "garbage", false)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.ErrorIs(err, models.ErrMalformedNotice)
	})
}

func (s *ServiceSuite) TestLoadNoticeManualTesting() {
	ctx := context.Background()
	first := &fakeNotice{version: "eforms-sdk-1.9"}
	second := &fakeNotice{version: "eforms-sdk-1.10"}

	s.analyzer.EXPECT().LoadNotice("first").Return(first, nil)
	s.analyzer.EXPECT().LoadNotice("second").Return(second, nil)

	_, err := s.svc.LoadNotice(ctx, "first", true)
	s.Require().NoError(err)
	_, err = s.svc.LoadNotice(ctx, "second", true)
	s.Require().NoError(err)

	stored, err := s.store.Get(ctx)
	s.Require().NoError(err)
	s.Same(second, stored, "last write wins")
}

func (s *ServiceSuite) TestSuggestPatches() {
	ctx := context.Background()
	notice := &fakeNotice{version: "eforms-sdk-1.10"}

	s.Run("manual testing before any load fails", func() {
		_, err := s.svc.SuggestPatches(ctx, "", nil, true)
		s.Require().Error(err)
		s.ErrorIs(err, models.ErrNoManualNoticeLoaded)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("empty criteria are forwarded, not rejected", func() {
		s.analyzer.EXPECT().LoadNotice("<n/>").Return(notice, nil)
		s.analyzer.EXPECT().SuggestPatches(notice, gomock.Len(0)).Return(nil, nil)

		patches, err := s.svc.SuggestPatches(ctx, "<n/>", []models.Criterion{}, false)
		s.Require().NoError(err)
		s.NotNil(patches)
		s.Empty(patches)
	})

	s.Run("collaborator order is preserved", func() {
		criteria := []models.Criterion{{ID: "b"}, {ID: "a"}, {ID: "a"}}
		ordered := []models.Patch{{Name: "z"}, {Name: "y"}, {Name: "z"}}
		s.analyzer.EXPECT().LoadNotice("<n/>").Return(notice, nil)
		s.analyzer.EXPECT().SuggestPatches(notice, criteria).Return(ordered, nil)

		patches, err := s.svc.SuggestPatches(ctx, "<n/>", criteria, false)
		s.Require().NoError(err)
		s.Equal(ordered, patches)
	})

	s.Run("manual testing ignores caller xml", func() {
		s.Require().NoError(s.store.Put(ctx, notice))
		s.analyzer.EXPECT().SuggestPatches(notice, gomock.Any()).Return([]models.Patch{{Name: "p"}}, nil)

		patches, err := s.svc.SuggestPatches(ctx, "<ignored/>", []models.Criterion{{ID: "a"}}, true)
		s.Require().NoError(err)
		s.Len(patches, 1)
	})

	s.Run("unknown criterion is a validation error", func() {
		s.analyzer.EXPECT().LoadNotice("<n/>").Return(notice, nil)
		s.analyzer.EXPECT().SuggestPatches(notice, gomock.Any()).
			Return(nil, errors.Join(models.ErrUnknownCriterion, errors.New("nope")))

		_, err := s.svc.SuggestPatches(ctx, "<n/>", []models.Criterion{{ID: "nope"}}, false)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestApplyPatches() {
	ctx := context.Background()
	notice := &fakeNotice{version: "eforms-sdk-1.10", xml: "<n/>"}
	patched := &fakeNotice{version: "eforms-sdk-1.10", xml: "<n><patched/></n>"}

	s.Run("empty list returns the notice unchanged", func() {
		s.analyzer.EXPECT().LoadNotice("<n/>").Return(notice, nil)
		s.analyzer.EXPECT().ApplyPatches(notice, gomock.Len(0)).Return(notice, nil)

		got, err := s.svc.ApplyPatches(ctx, "<n/>", nil, false)
		s.Require().NoError(err)
		s.Same(notice, got)
	})

	s.Run("failure returns no notice", func() {
		s.analyzer.EXPECT().LoadNotice("<n/>").Return(notice, nil)
		s.analyzer.EXPECT().ApplyPatches(notice, gomock.Any()).Return(patched, errors.New("lot not found"))

		got, err := s.svc.ApplyPatches(ctx, "<n/>", []models.Patch{{Name: "a"}, {Name: "b"}}, false)
		s.Nil(got)
		s.ErrorIs(err, models.ErrPatchApplication)
		s.True(dErrors.HasCode(err, dErrors.CodeUnprocessable))
	})

	s.Run("manual testing applies to the stored notice", func() {
		s.Require().NoError(s.store.Put(ctx, notice))
		patches := []models.Patch{{Name: "a"}}
		s.analyzer.EXPECT().ApplyPatches(notice, patches).Return(patched, nil)

		got, err := s.svc.ApplyPatches(ctx, "", patches, true)
		s.Require().NoError(err)
		s.Same(patched, got)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.PatchesApplied))
	})
}

func TestManualTestingDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	svc := New(analyzer, nil)
	ctx := context.Background()

	_, err := svc.AnalyzeNotice(ctx, "<n/>", true)
	assert.ErrorIs(t, err, models.ErrManualTestingDisabled)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))

	_, err = svc.ApplyPatches(ctx, "", nil, true)
	assert.ErrorIs(t, err, models.ErrManualTestingDisabled)
}

func TestStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	noticeStore := mocks.NewMockNoticeStore(ctrl)
	svc := New(analyzer, noticeStore)
	ctx := context.Background()

	t.Run("put failure aborts analysis", func(t *testing.T) {
		notice := &fakeNotice{version: "eforms-sdk-1.10"}
		analyzer.EXPECT().LoadNotice("<n/>").Return(notice, nil)
		noticeStore.EXPECT().Put(gomock.Any(), notice).Return(sentinel.ErrUnavailable)

		_, err := svc.AnalyzeNotice(ctx, "<n/>", true)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("get failure is internal", func(t *testing.T) {
		noticeStore.EXPECT().Get(gomock.Any()).Return(nil, sentinel.ErrUnavailable)

		_, err := svc.SuggestPatches(ctx, "", nil, true)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
		assert.False(t, errors.Is(err, models.ErrNoManualNoticeLoaded))
	})
}

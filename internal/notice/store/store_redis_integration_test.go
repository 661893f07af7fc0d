//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"gppgateway/internal/eforms"
	"gppgateway/internal/notice/models"
	"gppgateway/internal/notice/store"
	"gppgateway/pkg/platform/sentinel"
	"gppgateway/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.RedisStore
	xml   string
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	analyzer := eforms.NewAnalyzer()
	s.store = store.NewRedis(s.redis.Client, "", analyzer.LoadNotice)

	raw, err := os.ReadFile("../../eforms/testdata/contract_notice.xml")
	s.Require().NoError(err)
	s.xml = string(raw)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestEmptySlot() {
	_, err := s.store.Get(context.Background())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	notice, err := eforms.ParseNotice(s.xml)
	s.Require().NoError(err)

	s.Require().NoError(s.store.Put(ctx, notice))

	got, err := s.store.Get(ctx)
	s.Require().NoError(err)
	s.Equal("eforms-sdk-1.10", got.SDKVersion())

	stored, err := s.redis.Client.Get(ctx, store.DefaultManualNoticeKey).Result()
	s.Require().NoError(err)
	s.Contains(stored, "LOT-0002")
}

func (s *RedisStoreSuite) TestLastWriteWins() {
	ctx := context.Background()
	first, err := eforms.ParseNotice(s.xml)
	s.Require().NoError(err)
	analyzer := eforms.NewAnalyzer()
	patched, err := analyzer.ApplyPatches(first, []models.Patch{{
		Name:  "rename-lot",
		LotID: "LOT-0001",
		Op:    models.PatchOpUpdate,
		Path:  "cac:ProcurementProject/cbc:Name",
		Value: "Second write",
	}})
	s.Require().NoError(err)

	s.Require().NoError(s.store.Put(ctx, first))
	s.Require().NoError(s.store.Put(ctx, patched))

	got, err := s.store.Get(ctx)
	s.Require().NoError(err)
	xml, err := got.XML()
	s.Require().NoError(err)
	s.Contains(xml, "Second write")
}

func (s *RedisStoreSuite) TestCorruptSlot() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, store.DefaultManualNoticeKey, "not xml", 0).Err())

	_, err := s.store.Get(ctx)
	s.ErrorIs(err, models.ErrMalformedNotice)
}

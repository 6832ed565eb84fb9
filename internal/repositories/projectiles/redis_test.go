package projectiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	repo   Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:    s.client,
		TTL:       30 * time.Second,
		KeyPrefix: "test:",
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestAttachUsesTTL() {
	ctx := context.Background()

	s.mock.ExpectSet("test:arrow-1", `{"attack":5}`, 30*time.Second).SetVal("OK")

	s.NoError(s.repo.Attach(ctx, "arrow-1", attribute.Empty().With(attribute.KeyAttack, 5)))
}

func (s *RedisRepoTestSuite) TestAttachDependencyError() {
	ctx := context.Background()

	s.mock.ExpectSet("test:arrow-1", `{"attack":5}`, 30*time.Second).SetErr(errors.New("connection refused"))

	err := s.repo.Attach(ctx, "arrow-1", attribute.Empty().With(attribute.KeyAttack, 5))
	s.True(atterr.IsUnavailable(err))
	s.Equal("arrow-1", atterr.GetMeta(err)["entity_id"])
}

func (s *RedisRepoTestSuite) TestConsumingTakeUsesGetDel() {
	ctx := context.Background()

	s.mock.ExpectGetDel("test:arrow-1").SetVal(`{"defense":2}`)

	set, ok, err := s.repo.Take(ctx, "arrow-1", true)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(2.0, set.Get(attribute.KeyDefense))
}

func (s *RedisRepoTestSuite) TestPeekUsesGet() {
	ctx := context.Background()

	s.mock.ExpectGet("test:arrow-1").RedisNil()

	_, ok, err := s.repo.Take(ctx, "arrow-1", false)
	s.NoError(err)
	s.False(ok)
}

func (s *RedisRepoTestSuite) TestTakeCorruptEntry() {
	ctx := context.Background()

	s.mock.ExpectGet("test:arrow-1").SetVal("nope")

	_, ok, err := s.repo.Take(ctx, "arrow-1", false)
	s.False(ok)
	s.Equal(atterr.CodeInternal, atterr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestDiscardDependencyError() {
	ctx := context.Background()

	s.mock.ExpectDel("test:arrow-1").SetErr(errors.New("timeout"))

	s.True(atterr.IsUnavailable(s.repo.Discard(ctx, "arrow-1")))
}

func TestNewRedisRepository_DefaultTTL(t *testing.T) {
	client, _ := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client}).(*redisRepo)

	if repo.ttl != time.Minute {
		t.Fatalf("expected default ttl of 1m, got %s", repo.ttl)
	}
	if repo.prefix != defaultKeyPrefix {
		t.Fatalf("expected default prefix, got %s", repo.prefix)
	}
}

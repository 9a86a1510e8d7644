package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flixe/goapi/base/ctx"
	hcdomain "github.com/flixe/goapi/domain/healthcheck"
	"github.com/flixe/goapi/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	repo := &mocks.HealthCheckRepo{}
	defer repo.AssertExpectations(t)

	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	repo.On("BlockNumber", mock.Anything).Return(uint64(1200), nil).Once()

	res, err := New(repo).Check(ctx.Background())
	req.NoError(err)
	req.True(res.Healthy)
	req.Equal(uint64(1200), res.BlockNumber)
	req.Equal("ok", res.Components[hcdomain.ComponentChain])
}

func TestCheckVisitsEveryDependency(t *testing.T) {
	req := require.New(t)
	repo := &mocks.HealthCheckRepo{}
	defer repo.AssertExpectations(t)

	repo.On("PingDB", mock.Anything).Return(errors.New("server selection timeout")).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	repo.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("dial tcp refused")).Once()

	res, err := New(repo).Check(ctx.Background())
	req.ErrorIs(err, hcdomain.ErrUnhealthy)
	req.False(res.Healthy)
	req.Equal("server selection timeout", res.Components[hcdomain.ComponentMongo])
	req.Equal("ok", res.Components[hcdomain.ComponentRedis])
	req.Equal("dial tcp refused", res.Components[hcdomain.ComponentChain])
}

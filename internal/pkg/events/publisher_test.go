package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"usersvc/internal/domain"
	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/events"
	"usersvc/internal/pkg/logger"
)

type MockStreamClient struct {
	mock.Mock
}

func (m *MockStreamClient) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	args := m.Called(ctx, a)
	return args.Get(0).(*redis.StringCmd)
}

func TestPublish_Success(t *testing.T) {
	client := new(MockStreamClient)
	pub := events.NewRedisPublisher(client, logger.NewNop())
	event := domain.VerifyEmailEvent{UserID: "user-1", Username: "jane@example.com", AuthToken: "tok"}

	client.On("XAdd", mock.Anything, mock.MatchedBy(func(a *redis.XAddArgs) bool {
		if a.Stream != "verify_email" {
			return false
		}
		values, ok := a.Values.(map[string]interface{})
		if !ok {
			return false
		}
		var got domain.VerifyEmailEvent
		return json.Unmarshal([]byte(values["data"].(string)), &got) == nil && got == event
	})).Return(redis.NewStringResult("1700000000000-0", nil))

	res := pub.Publish(context.Background(), "verify_email", event)

	require.True(t, res.IsOk())
	assert.Equal(t, "1700000000000-0", res.Value())
	client.AssertExpectations(t)
}

func TestPublish_BrokerError(t *testing.T) {
	client := new(MockStreamClient)
	pub := events.NewRedisPublisher(client, logger.NewNop())

	client.On("XAdd", mock.Anything, mock.Anything).Return(redis.NewStringResult("", errors.New("connection refused")))

	res := pub.Publish(context.Background(), "verify_email", domain.VerifyEmailEvent{UserID: "user-1"})

	assert.False(t, res.IsOk())
	assert.Equal(t, apperror.KindInternalServerError, res.Error().Kind())
}

func TestPublish_EncodeError(t *testing.T) {
	client := new(MockStreamClient)
	pub := events.NewRedisPublisher(client, logger.NewNop())

	res := pub.Publish(context.Background(), "verify_email", make(chan int))

	assert.False(t, res.IsOk())
	client.AssertNotCalled(t, "XAdd", mock.Anything, mock.Anything)
}

package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"usersvc/internal/pkg/session"
)

func TestUserIDRoundTrip(t *testing.T) {
	ctx := session.WithUserID(context.Background(), "user-1")

	id, ok := session.UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)
}

func TestUserIDMissing(t *testing.T) {
	_, ok := session.UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = session.UserIDFromContext(session.WithUserID(context.Background(), ""))
	assert.False(t, ok)
}

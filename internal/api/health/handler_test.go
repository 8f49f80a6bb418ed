package health_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"usersvc/internal/api/health"
	"usersvc/internal/pkg/logger"
)

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) DatabaseHealthy(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		body    string
		healthy bool
		status  int
	}{
		{"banco ok", "/healthz", "", true, http.StatusOK},
		{"banco fora", "/healthz", "", false, http.StatusServiceUnavailable},
		{"query sem valor", "/healthz?q", "", true, http.StatusBadRequest},
		{"query com valor", "/healthz?q=2", "", true, http.StatusBadRequest},
		{"corpo texto", "/healthz", "test-body", true, http.StatusBadRequest},
		{"corpo json", "/healthz", `{"myparam":"test"}`, true, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockHealthService)
			svc.On("DatabaseHealthy", mock.Anything).Return(tt.healthy).Maybe()
			h := health.NewHandler(svc, logger.NewNop())

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(http.MethodGet, tt.target, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(http.MethodGet, tt.target, nil)
			}
			rec := httptest.NewRecorder()

			h.HealthzHandler(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestHealthz_BadRequestSkipsPing(t *testing.T) {
	svc := new(MockHealthService)
	h := health.NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HealthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz?q", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "DatabaseHealthy", mock.Anything)
}

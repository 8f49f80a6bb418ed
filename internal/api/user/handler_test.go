package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"usersvc/internal/api/user"
	"usersvc/internal/domain"
	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/result"
)

// MockUserService é uma implementação mock da interface UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, fields domain.UserFields, skip bool) result.Result[domain.PublicUser] {
	return m.Called(ctx, fields, skip).Get(0).(result.Result[domain.PublicUser])
}

func (m *MockUserService) UpdateUser(ctx context.Context, fields domain.UserFields) result.Result[domain.PublicUser] {
	return m.Called(ctx, fields).Get(0).(result.Result[domain.PublicUser])
}

func (m *MockUserService) GetUser(ctx context.Context) result.Result[domain.PublicUser] {
	return m.Called(ctx).Get(0).(result.Result[domain.PublicUser])
}

func (m *MockUserService) VerifyEmail(ctx context.Context, email, token string) result.Result[string] {
	return m.Called(ctx, email, token).Get(0).(result.Result[string])
}

func (m *MockUserService) ResendVerification(ctx context.Context) result.Result[string] {
	return m.Called(ctx).Get(0).(result.Result[string])
}

func (m *MockUserService) IssueToken(ctx context.Context) result.Result[domain.TokenResponse] {
	return m.Called(ctx).Get(0).(result.Result[domain.TokenResponse])
}

func TestCreateUserHandler_PassesSkipVerification(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop(), true)

	svc.On("CreateUser", mock.Anything, domain.UserFields{"username": "jane@example.com"}, true).
		Return(result.Ok(domain.PublicUser{ID: "user-1", EmailVerified: true}))

	req := httptest.NewRequest(http.MethodPost, "/v2/user", strings.NewReader(`{"username":"jane@example.com"}`))
	rec := httptest.NewRecorder()
	h.CreateUserHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email_verified":true`)
	svc.AssertExpectations(t)
}

func TestCreateUserHandler_ServiceInternalError(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop(), false)

	svc.On("CreateUser", mock.Anything, mock.Anything, false).
		Return(result.Err[domain.PublicUser](apperror.NewInternalError("Created User. Unable to send verify email.", nil)))

	req := httptest.NewRequest(http.MethodPost, "/v2/user", strings.NewReader(`{"username":"jane@example.com"}`))
	rec := httptest.NewRecorder()
	h.CreateUserHandler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Created User. Unable to send verify email."}`, rec.Body.String())
}

func TestUpdateSelfHandler_NullBody(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop(), false)

	rec := httptest.NewRecorder()
	h.UpdateSelfHandler(rec, httptest.NewRequest(http.MethodPut, "/v2/user/self", strings.NewReader("null")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.String())
	svc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestVerifyEmailHandler_MissingParams(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop(), false)

	svc.On("VerifyEmail", mock.Anything, "", "").
		Return(result.Err[string](apperror.NewValidationError("Invalid link. Cannot verify email")))

	rec := httptest.NewRecorder()
	h.VerifyEmailHandler(rec, httptest.NewRequest(http.MethodGet, "/v2/user/verify", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid link. Cannot verify email"}`, rec.Body.String())
}

func TestResendVerificationHandler(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop(), false)

	svc.On("ResendVerification", mock.Anything).Return(result.Ok("Verification email sent"))

	rec := httptest.NewRecorder()
	h.ResendVerificationHandler(rec, httptest.NewRequest(http.MethodPost, "/v2/user/self/verify", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"Verification email sent"`, rec.Body.String())
}

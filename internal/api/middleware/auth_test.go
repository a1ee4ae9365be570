package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/integrations/identity"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeResolver struct {
	user *identity.UserIdentity
	err  error

	gotToken string
}

func (f *fakeResolver) Resolve(ctx context.Context, token string) (*identity.UserIdentity, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func runAuth(t *testing.T, resolver *fakeResolver, authHeader string) (*httptest.ResponseRecorder, *identity.UserIdentity) {
	t.Helper()

	var captured *identity.UserIdentity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := UserFromContext(r.Context()); ok {
			captured = user
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkin/status", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	Auth(resolver, nopLogger{})(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_ResolvesIdentityIntoContext(t *testing.T) {
	resolver := &fakeResolver{user: &identity.UserIdentity{Email: "amy@corp.example", Name: "Amy"}}

	rec, user := runAuth(t, resolver, "Bearer token-123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token-123", resolver.gotToken)
	require.NotNil(t, user)
	assert.Equal(t, "amy@corp.example", user.Email)
}

func TestAuth_MissingToken(t *testing.T) {
	resolver := &fakeResolver{}

	rec, user := runAuth(t, resolver, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, user)
	assert.Empty(t, resolver.gotToken)
}

func TestAuth_NonBearerScheme(t *testing.T) {
	resolver := &fakeResolver{}

	rec, _ := runAuth(t, resolver, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_TokenRejected(t *testing.T) {
	resolver := &fakeResolver{err: identity.ErrUnauthorized}

	rec, _ := runAuth(t, resolver, "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ProviderUnreachable(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("connection refused")}

	rec, _ := runAuth(t, resolver, "Bearer token-123")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestUserFromContext_Empty(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}

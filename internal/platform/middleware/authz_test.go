// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/middleware"
	"github.com/pakapat-jp/edu-mcru/internal/platform/sec"
)

// fakeVerifier accepts the single token "good-token".
type fakeVerifier struct {
	claims *sec.AuthClaims
}

func (verifier *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == "good-token" {
		return verifier.claims, nil
	}
	return nil, errors.New("signature mismatch")
}

func editorClaims() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: 7, Username: "editor1", Role: string(sec.RoleEditor)}
}

// protectedChain builds Authenticate → RequireAuth around a terminal
// handler, the same shape the router uses for content writes.
func protectedChain(verifier middleware.TokenVerifier, hit *bool) http.Handler {
	terminal := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*hit = true
		writer.WriteHeader(http.StatusOK)
	})
	return middleware.Authenticate(verifier)(middleware.RequireAuth(terminal))
}

/*
TestAuth_MissingTokenIs401 verifies the gate distinguishes an absent
credential (401) from a presented-but-bad one (403).
*/
func TestAuth_MissingTokenIs401(t *testing.T) {
	hit := false
	chain := protectedChain(&fakeVerifier{claims: editorClaims()}, &hit)

	request := httptest.NewRequest("POST", "/api/news", nil)
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, hit, "handler must not run")
}

func TestAuth_InvalidTokenIs403(t *testing.T) {
	hit := false
	chain := protectedChain(&fakeVerifier{claims: editorClaims()}, &hit)

	request := httptest.NewRequest("POST", "/api/news", nil)
	request.Header.Set("Authorization", "Bearer forged-token")
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, hit, "handler must not run")
}

func TestAuth_MalformedHeaderIs403(t *testing.T) {
	hit := false
	chain := protectedChain(&fakeVerifier{claims: editorClaims()}, &hit)

	request := httptest.NewRequest("POST", "/api/news", nil)
	request.Header.Set("Authorization", "good-token")
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, hit)
}

func TestAuth_ValidTokenPasses(t *testing.T) {
	hit := false
	chain := protectedChain(&fakeVerifier{claims: editorClaims()}, &hit)

	request := httptest.NewRequest("POST", "/api/news", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, hit)
}

/*
TestRequireRole_EditorCannotManageUsers verifies the role gate: an
authenticated editor is 403 on admin-only routes, while an anonymous
caller stays 401.
*/
func TestRequireRole_EditorCannotManageUsers(t *testing.T) {
	hit := false
	terminal := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hit = true
		writer.WriteHeader(http.StatusOK)
	})
	verifier := &fakeVerifier{claims: editorClaims()}
	chain := middleware.Authenticate(verifier)(middleware.RequireRole(sec.RoleAdmin)(terminal))

	// Authenticated, wrong role.
	request := httptest.NewRequest("GET", "/api/users", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, hit)

	// Anonymous.
	request = httptest.NewRequest("GET", "/api/users", nil)
	recorder = httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.False(t, hit)
}

func TestRequireRole_AdminPasses(t *testing.T) {
	hit := false
	terminal := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hit = true
		writer.WriteHeader(http.StatusOK)
	})
	admin := &sec.AuthClaims{UserID: 1, Username: "admin1", Role: string(sec.RoleAdmin)}
	chain := middleware.Authenticate(&fakeVerifier{claims: admin})(middleware.RequireRole(sec.RoleAdmin)(terminal))

	request := httptest.NewRequest("GET", "/api/users", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, hit)
}

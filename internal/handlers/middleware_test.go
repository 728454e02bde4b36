package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"artshare/internal/service"
	"artshare/internal/token"
)

func getWithAuth(r http.Handler, path, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthTokenMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no token after scheme",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad-token",
			parseErr:   errors.New("token is expired"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuth{
				parseClaims: &token.Claims{UserID: "u-1", Email: "a@x.com"},
				parseErr:    tt.parseErr,
			}
			s := &service.Service{
				Authorization: auth,
				Accounts:      &mockAccounts{},
			}
			r := newTestRouter(s)

			w := getWithAuth(r, "/api/v1/users", tt.header)
			if w.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && auth.lastParsed != "good-token" {
				t.Fatalf("expected token forwarded to ParseToken, got %q", auth.lastParsed)
			}
		})
	}
}

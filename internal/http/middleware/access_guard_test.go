package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testCookie = CookieConfig{Name: "portal_session", MaxAge: 3600}

func guardRouter(guard *AccessGuard) *gin.Engine {
	r := gin.New()
	r.GET("/me", guard.RequireAuth(), func(c *gin.Context) {
		info, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": info.UserID})
	})
	r.GET("/admin", guard.RequireAuth(), guard.RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie.Name, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validSession(roleID int) func(ctx context.Context, token string) (*domain.SessionInfo, error) {
	return func(ctx context.Context, token string) (*domain.SessionInfo, error) {
		return &domain.SessionInfo{UserID: "u-1", RoleID: roleID, Email: "maria@example.com", Token: token}, nil
	}
}

func TestAccessGuard_RequireAuth(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		validateErr  error
		wantStatus   int
		wantClearing bool
	}{
		{
			name:       "valid session passes",
			token:      "tok-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing cookie",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "unknown token clears the cookie",
			token:        "gone",
			validateErr:  domain.ErrSessionNotFound,
			wantStatus:   http.StatusUnauthorized,
			wantClearing: true,
		},
		{
			name:         "expired session clears the cookie",
			token:        "old",
			validateErr:  domain.ErrSessionExpired,
			wantStatus:   http.StatusUnauthorized,
			wantClearing: true,
		},
		{
			name:         "inactive owner clears the cookie",
			token:        "tok-1",
			validateErr:  domain.ErrUserInactive,
			wantStatus:   http.StatusUnauthorized,
			wantClearing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionSvc := mocks.NewMockSessionService()
			if tt.validateErr != nil {
				sessionSvc.ValidateFunc = func(ctx context.Context, token string) (*domain.SessionInfo, error) {
					return nil, tt.validateErr
				}
			} else if tt.token != "" {
				sessionSvc.ValidateFunc = validSession(2)
			}

			guard := NewAccessGuard(sessionSvc, mocks.NewMockRoleDirectory(), mocks.NewMockAuditService(), testCookie)
			w := doRequest(guardRouter(guard), "/me", tt.token)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			setCookie := w.Header().Get("Set-Cookie")
			if tt.wantClearing && !strings.Contains(setCookie, testCookie.Name+"=") {
				t.Errorf("expected stale cookie to be cleared, got %q", setCookie)
			}
			if tt.wantStatus == http.StatusOK && !strings.Contains(w.Body.String(), `"userId":"u-1"`) {
				t.Errorf("expected session info in context, got %s", w.Body.String())
			}
		})
	}
}

func TestAccessGuard_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roleID     int
		wantStatus int
		wantDenied bool
	}{
		{"admin passes", 1, http.StatusOK, false},
		{"regular user is denied", 2, http.StatusForbidden, true},
		{"dangling role is denied", 99, http.StatusForbidden, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionSvc := mocks.NewMockSessionService()
			sessionSvc.ValidateFunc = validSession(tt.roleID)
			audit := mocks.NewMockAuditService()

			guard := NewAccessGuard(sessionSvc, mocks.NewMockRoleDirectory(), audit, testCookie)
			w := doRequest(guardRouter(guard), "/admin", "tok-1")

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			denials := audit.EventsByAction(domain.ActionAccessDenied)
			if tt.wantDenied {
				if len(denials) != 1 {
					t.Fatalf("expected exactly 1 ACCESS_DENIED event, got %d", len(denials))
				}
				if denials[0].ActorID != "u-1" {
					t.Errorf("expected actor u-1, got %s", denials[0].ActorID)
				}
			} else if len(denials) != 0 {
				t.Errorf("unexpected ACCESS_DENIED events: %d", len(denials))
			}
		})
	}
}

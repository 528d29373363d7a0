package handlers

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

// adminTestRouter plants an admin session in the context the way the
// access guard would.
func adminTestRouter(userSvc domain.UserService, audit domain.AuditService) *gin.Engine {
	h := NewAdminHandlers(userSvc, audit)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session", &domain.SessionInfo{UserID: "admin-1", RoleID: 1, Email: "admin@example.com", Token: "tok-admin"})
	})
	r.GET("/admin/users", h.ListUsers)
	r.POST("/admin/users", h.CreateUser)
	r.PATCH("/admin/users/:id", h.UpdateUser)
	r.DELETE("/admin/users/:id", h.DeleteUser)
	r.GET("/admin/logs", h.Logs)
	return r
}

func TestAdminHandlers_ListUsers(t *testing.T) {
	userSvc := mocks.NewMockUserService()
	userSvc.ListUsersFunc = func(ctx context.Context) ([]domain.User, error) {
		return []domain.User{
			{ID: "u-1", Name: "Maria Silva", Email: "maria@example.com", PasswordHash: "$2b$12$secret", RoleID: 2},
		}, nil
	}
	r := adminTestRouter(userSvc, mocks.NewMockAuditService())

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "maria@example.com") {
		t.Errorf("expected user in response, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "$2b$") {
		t.Error("password hash leaked into the response")
	}
}

func TestAdminHandlers_CreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		setupMocks     func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name:           "successful creation",
			body:           map[string]any{"name": "Joao Santos", "email": "joao@example.com", "password": "Str0ngpass", "roleId": 2},
			setupMocks:     func(svc *mocks.MockUserService) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			body:           map[string]any{"name": "Joao Santos", "email": "nope", "password": "Str0ngpass", "roleId": 2},
			setupMocks:     func(svc *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown role",
			body: map[string]any{"name": "Joao Santos", "email": "joao@example.com", "password": "Str0ngpass", "roleId": 42},
			setupMocks: func(svc *mocks.MockUserService) {
				svc.CreateUserFunc = func(ctx context.Context, input domain.AdminCreateUserInput) (*domain.User, error) {
					return nil, domain.ErrRoleNotFound
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: map[string]any{"name": "Joao Santos", "email": "joao@example.com", "password": "Str0ngpass", "roleId": 2},
			setupMocks: func(svc *mocks.MockUserService) {
				svc.CreateUserFunc = func(ctx context.Context, input domain.AdminCreateUserInput) (*domain.User, error) {
					return nil, domain.ErrEmailTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userSvc := mocks.NewMockUserService()
			tt.setupMocks(userSvc)
			r := adminTestRouter(userSvc, mocks.NewMockAuditService())

			w := postJSON(r, "/admin/users", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAdminHandlers_Logs(t *testing.T) {
	t.Run("query parameters narrow the filter and the read is audited", func(t *testing.T) {
		audit := mocks.NewMockAuditService()
		var gotFilter domain.AuditFilter
		audit.QueryFunc = func(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error) {
			gotFilter = filter
			return []domain.AuditRecord{
				{AuditEntry: domain.AuditEntry{ID: "a-1", Action: domain.ActionLogin}},
			}, nil
		}
		r := adminTestRouter(mocks.NewMockUserService(), audit)

		req := httptest.NewRequest(http.MethodGet, "/admin/logs?userId=u-1&action=LOGIN&limit=10&offset=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotFilter.UserID != "u-1" || gotFilter.Action != domain.ActionLogin || gotFilter.Limit != 10 || gotFilter.Offset != 5 {
			t.Errorf("unexpected filter %+v", gotFilter)
		}

		reads := audit.EventsByAction(domain.ActionDataAccess)
		if len(reads) != 1 {
			t.Fatalf("expected the log read itself to be audited once, got %d", len(reads))
		}
		if reads[0].ActorID != "admin-1" || reads[0].Resource != "audit_logs" {
			t.Errorf("unexpected audit event %+v", reads[0])
		}
	})

	t.Run("bad parameters are rejected", func(t *testing.T) {
		r := adminTestRouter(mocks.NewMockUserService(), mocks.NewMockAuditService())

		for _, query := range []string{"?limit=0", "?limit=5000", "?limit=abc", "?offset=-1", "?action=NOT_A_THING"} {
			req := httptest.NewRequest(http.MethodGet, "/admin/logs"+query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("query %q: expected 400, got %d", query, w.Code)
			}
		}
	})
}

func TestAdminHandlers_DeleteUser(t *testing.T) {
	userSvc := mocks.NewMockUserService()
	var deletedBy, deleted string
	userSvc.DeleteUserFunc = func(ctx context.Context, actorID, userID, ip, userAgent string) error {
		deletedBy, deleted = actorID, userID
		return nil
	}
	r := adminTestRouter(userSvc, mocks.NewMockAuditService())

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/u-2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if deletedBy != "admin-1" || deleted != "u-2" {
		t.Errorf("expected admin-1 deleting u-2, got %s deleting %s", deletedBy, deleted)
	}
}

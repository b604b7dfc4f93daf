package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/middleware"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
	"github.com/gadsdencode/pixprofolio/internal/validator"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

const testCookieName = "test_session"

// fakeInvoiceService counts pipeline entries so tests can assert that
// invalid requests never reach the billing layer.
type fakeInvoiceService struct {
	mu          sync.Mutex
	createCalls int
}

func (f *fakeInvoiceService) CreateAndSend(_ context.Context, _ *gorm.DB, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	return &models.Invoice{
		StripeInvoiceID:  "in_test",
		Amount:           "250",
		Status:           models.InvoiceStatusSent,
		HostedInvoiceURL: "https://invoice.example.com/in_test",
		Description:      req.ServiceDescription,
	}, nil
}

func (f *fakeInvoiceService) ListAll(_ *gorm.DB) ([]models.Invoice, error) {
	return []models.Invoice{}, nil
}

func (f *fakeInvoiceService) ListForEmail(_ *gorm.DB, _ string) ([]models.Invoice, error) {
	return []models.Invoice{}, nil
}

func (f *fakeInvoiceService) UpdateStatus(_ *gorm.DB, _, _ string) (*models.Invoice, error) {
	return nil, apperrors.ErrNotFound(nil)
}

type fakeSessionService struct {
	users map[string]*models.User
}

func (f *fakeSessionService) Establish(_ *gorm.DB, userID string) (*models.Session, error) {
	return &models.Session{UserID: userID, Token: "fixed-token"}, nil
}

func (f *fakeSessionService) Resolve(_ *gorm.DB, token string) (*models.User, error) {
	user, ok := f.users[token]
	if !ok {
		return nil, apperrors.ErrNotAuthenticated
	}
	return user, nil
}

func (f *fakeSessionService) Terminate(_ *gorm.DB, _ string) error { return nil }

func (f *fakeSessionService) PurgeExpired(_ *gorm.DB) (int64, error) { return 0, nil }

func newInvoiceTestRouter(invoiceService *fakeInvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sessions := &fakeSessionService{users: map[string]*models.User{
		"owner-token":  {Email: "owner@studio.com", Role: models.UserRoleOwner},
		"client-token": {Email: "client@example.com", Role: models.UserRoleClient},
	}}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.DBKey, &gorm.DB{})
		c.Next()
	})
	router.Use(middleware.Authenticate(sessions, testCookieName))

	handler := NewInvoiceHandler(NewBaseHandler(validator.New()), invoiceService)
	handler.RegisterRoutes(router.Group("/api"))

	return router
}

func postInvoice(router *gin.Engine, token string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/create-invoice", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validInvoiceBody() map[string]interface{} {
	return map[string]interface{}{
		"clientName":         "Jane Doe",
		"clientEmail":        "jane@example.com",
		"serviceDescription": "Full-day wedding photography package",
		"amount":             250,
	}
}

func TestCreateInvoice_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeInvoiceService{}
	router := newInvoiceTestRouter(svc)

	w := postInvoice(router, "owner-token", validInvoiceBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "in_test", resp["invoiceId"])
	assert.Equal(t, "https://invoice.example.com/in_test", resp["invoiceUrl"])
	assert.Equal(t, 1, svc.createCalls)
}

func TestCreateInvoice_InvalidInputNeverReachesBilling(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(map[string]interface{})
		field  string
	}{
		{"short client name", func(b map[string]interface{}) { b["clientName"] = "J" }, "clientName"},
		{"bad email", func(b map[string]interface{}) { b["clientEmail"] = "not-an-email" }, "clientEmail"},
		{"short description", func(b map[string]interface{}) { b["serviceDescription"] = "too short" }, "serviceDescription"},
		{"negative amount", func(b map[string]interface{}) { b["amount"] = -10 }, "amount"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeInvoiceService{}
			router := newInvoiceTestRouter(svc)

			body := validInvoiceBody()
			tc.mutate(body)

			w := postInvoice(router, "owner-token", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, svc.createCalls)

			var resp apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
			assert.Contains(t, resp.Details, tc.field)
		})
	}
}

func TestCreateInvoice_RoleGating(t *testing.T) {
	t.Parallel()

	t.Run("anonymous", func(t *testing.T) {
		svc := &fakeInvoiceService{}
		router := newInvoiceTestRouter(svc)

		w := postInvoice(router, "", validInvoiceBody())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 0, svc.createCalls)
	})

	t.Run("client role", func(t *testing.T) {
		svc := &fakeInvoiceService{}
		router := newInvoiceTestRouter(svc)

		w := postInvoice(router, "client-token", validInvoiceBody())
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 0, svc.createCalls)
	})
}

func TestClientInvoices_RequiresClientRole(t *testing.T) {
	t.Parallel()

	svc := &fakeInvoiceService{}
	router := newInvoiceTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/client/invoices", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "owner-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports/mocks"
	"split-wallet-engine/pkg/apperror"
	"split-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func auditRouter(audit *mocks.MockAuditService, status int) *gin.Engine {
	r := gin.New()
	r.Use(AuditLog(audit))
	handler := func(c *gin.Context) {
		c.Set(CtxUserID, "mallory")
		if status == http.StatusForbidden {
			response.Error(c, apperror.ErrUnauthorized("Only the creator can cancel this split wallet"))
			return
		}
		c.Status(status)
	}
	r.POST("/api/v1/splits/:id/cancel", handler)
	r.GET("/api/v1/splits/:id", handler)
	return r
}

func TestAuditLog_RecordsDeniedWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditService(ctrl)
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, log *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionDenied, log.Action)
		assert.Equal(t, "split_wallet", log.ResourceType)
		assert.Equal(t, "w-1", log.ResourceID)
		assert.Equal(t, "mallory", log.ActorID)
		assert.Contains(t, log.Details, `"route":"/api/v1/splits/:id/cancel"`)
	})

	w := httptest.NewRecorder()
	auditRouter(audit, http.StatusForbidden).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/splits/w-1/cancel", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuditLog_SkipsAllowedWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditService(ctrl)

	w := httptest.NewRecorder()
	auditRouter(audit, http.StatusOK).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/splits/w-1/cancel", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditService(ctrl)

	w := httptest.NewRecorder()
	auditRouter(audit, http.StatusForbidden).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/splits/w-1", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResourceOf(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/internal/v1/roulette/draw", nil)
	kind, id := resourceOf(c)
	assert.Equal(t, "roulette", kind)
	assert.Empty(t, id)

	c.Request = httptest.NewRequest(http.MethodPost, "/health", nil)
	kind, _ = resourceOf(c)
	assert.Equal(t, "http", kind)
}

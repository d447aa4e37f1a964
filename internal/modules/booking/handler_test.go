package booking

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"petbnb/internal/domain"
	"petbnb/internal/gateway"
	"petbnb/internal/middleware"
)

func newTestRouter(gw Gateway, role domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxToken, "tok")
		c.Set(middleware.CtxRole, string(role))
	})
	NewHandler(NewService(gw, nil, zap.NewNop())).RegisterRoutes(r.Group("/"))
	return r
}

func TestHandler_ActionWithoutBody(t *testing.T) {
	gw := new(MockGateway)
	details := &gateway.BookingDetails{
		Booking: domain.Booking{ID: "b1", Status: domain.BookingPending},
	}
	gw.On("GetBookingDetails", mock.Anything, "tok", "b1").Return(details, nil)
	updated := &domain.Booking{ID: "b1", Status: domain.BookingConfirmed}
	gw.On("UpdateBookingStatus", mock.Anything, "tok", "b1", domain.BookingConfirmed, "").Return(updated, nil)

	r := newTestRouter(gw, domain.RoleCaregiver)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/b1/accept", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	gw.AssertExpectations(t)
}

func TestHandler_ActionRejectsUnknownStatus(t *testing.T) {
	gw := new(MockGateway)
	r := newTestRouter(gw, domain.RoleCaregiver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/b1/accept",
		strings.NewReader(`{"current_status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, gw.Calls)
}

func TestHandler_PreconditionFailureMapsToConflict(t *testing.T) {
	gw := new(MockGateway)
	r := newTestRouter(gw, domain.RolePetOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/b1/accept",
		strings.NewReader(`{"current_status":"pending"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PRECONDITION_FAILED")
	assert.Empty(t, gw.Calls)
}

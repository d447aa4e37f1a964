package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petbnb/internal/domain"
	"petbnb/internal/middleware"
	"petbnb/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/owner", middleware.RequireRole(domain.RolePetOwner), h.OwnerDashboard)
	rg.GET("/dashboard/caregiver", middleware.RequireRole(domain.RoleCaregiver), h.CaregiverDashboard)
}

// OwnerDashboard always answers 200: partial upstream failures surface in
// the model's error field, not as an HTTP error, so screens can render
// whatever did load.
func (h *Handler) OwnerDashboard(c *gin.Context) {
	model := h.service.GetOwnerDashboard(
		c.Request.Context(),
		c.GetString(middleware.CtxToken),
		c.GetString(middleware.CtxUserID),
	)
	response.Success(c, http.StatusOK, model)
}

func (h *Handler) CaregiverDashboard(c *gin.Context) {
	model := h.service.GetCaregiverDashboard(
		c.Request.Context(),
		c.GetString(middleware.CtxToken),
		c.GetString(middleware.CtxUserID),
	)
	response.Success(c, http.StatusOK, model)
}

package booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"petbnb/internal/domain"
	"petbnb/internal/gateway"
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
	rg.GET("/bookings/:id", h.GetDetails)
	rg.POST("/bookings/:id/accept", h.action(domain.ActionAccept))
	rg.POST("/bookings/:id/decline", h.action(domain.ActionDecline))
	rg.POST("/bookings/:id/start", h.action(domain.ActionStart))
	rg.POST("/bookings/:id/complete", h.action(domain.ActionComplete))
	rg.POST("/bookings/:id/cancel", h.action(domain.ActionCancel))
}

func (h *Handler) GetDetails(c *gin.Context) {
	view, err := h.service.GetDetails(
		c.Request.Context(),
		c.GetString(middleware.CtxToken),
		domain.Role(c.GetString(middleware.CtxRole)),
		c.Param("id"),
	)
	if err != nil {
		status, code := httpStatusFor(string(gateway.KindOf(err)))
		response.Error(c, status, code, gateway.UserMessage(err))
		return
	}
	response.Success(c, http.StatusOK, view)
}

// action builds the handler for one of the five booking actions. Role
// checking is left to the transition guard so a wrong-role attempt reports
// a precondition failure, same as the mobile client computes locally.
func (h *Handler) action(act domain.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The body is optional; an id-only request works, the service just
		// fetches the current status itself.
		var req ActionRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
		if req.CurrentStatus != "" && !req.CurrentStatus.Valid() {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking status")
			return
		}

		ctx := c.Request.Context()
		token := c.GetString(middleware.CtxToken)
		actor := domain.Role(c.GetString(middleware.CtxRole))
		id := c.Param("id")

		var result ActionResult
		switch act {
		case domain.ActionAccept:
			result = h.service.Accept(ctx, token, actor, id, req.CurrentStatus)
		case domain.ActionDecline:
			result = h.service.Decline(ctx, token, actor, id, req.CurrentStatus, req.Reason)
		case domain.ActionStart:
			result = h.service.Start(ctx, token, actor, id, req.CurrentStatus)
		case domain.ActionComplete:
			result = h.service.Complete(ctx, token, actor, id, req.CurrentStatus)
		case domain.ActionCancel:
			result = h.service.Cancel(ctx, token, actor, id, req.CurrentStatus, req.Reason)
		}

		if !result.Success {
			status, code := httpStatusFor(result.Error.Kind)
			response.Error(c, status, code, result.Error.Message)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"booking": result.Booking})
	}
}

func httpStatusFor(kind string) (int, string) {
	switch kind {
	case KindPrecondition:
		return http.StatusConflict, "PRECONDITION_FAILED"
	case string(gateway.KindAuth):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case string(gateway.KindForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case string(gateway.KindNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case string(gateway.KindValidation):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR"
	case string(gateway.KindNetwork), string(gateway.KindServer):
		return http.StatusBadGateway, "UPSTREAM_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

package handlers

import (
	"errors"
	"net/http"
	request "polyforge/internal/adapter/http/dto/request"
	response "polyforge/internal/adapter/http/dto/response"
	"polyforge/internal/usecase"
	"polyforge/pkg"

	"github.com/gin-gonic/gin"
)

const AdminAccessCodeHeader = "X-Admin-Access-Code"

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// Unlock godoc
// @Summary      Check the admin access code
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      request.AdminUnlockRequest  true  "Access code"
// @Success      200   {object}  response.AdminUnlockResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /admin/unlock [post]
func (h *AdminHandler) Unlock(c *gin.Context) {
	var payload request.AdminUnlockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Unlock(c.Request.Context(), payload.AccessCode); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AdminUnlockResponse{Unlocked: true})
}

// Dashboard godoc
// @Summary      Ledger aggregates and order list
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Access-Code  header    string  true  "Access code"
// @Success      200                  {object}  response.DashboardResponse
// @Failure      401                  {object}  pkg.HTTPError
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context(), c.GetHeader(AdminAccessCodeHeader))
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccessCode):
		return pkg.NewDomainErrorSimple("INVALID_ACCESS_CODE", "Invalid Access Code", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

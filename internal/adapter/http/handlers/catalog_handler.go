package handlers

import (
	"errors"
	"net/http"
	response "polyforge/internal/adapter/http/dto/response"
	"polyforge/internal/usecase"
	"polyforge/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the fixed product list.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts godoc
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   response.ProductResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        product_id  path      string  true  "Product ID"
// @Success      200         {object}  response.ProductResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /products/{product_id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	request "polyforge/internal/adapter/http/dto/request"
	response "polyforge/internal/adapter/http/dto/response"
	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase"
	"polyforge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler exposes the checkout state machine.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// StartCheckout godoc
// @Summary      Start a checkout for a product
// @Tags         checkouts
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutStartRequest  true  "Product"
// @Success      201   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /checkouts [post]
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	var payload request.CheckoutStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	checkout, err := h.usecase.StartCheckout(c.Request.Context(), payload.ResolveProductID())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckout(checkout))
}

// GetCheckout godoc
// @Summary      Get checkout state
// @Tags         checkouts
// @Produce      json
// @Param        checkout_id  path      string  true  "Checkout ID"
// @Success      200          {object}  response.CheckoutResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /checkouts/{checkout_id} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	checkout, err := h.usecase.GetCheckout(c.Request.Context(), c.Param("checkout_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckout(checkout))
}

// SelectMethod godoc
// @Summary      Choose CASH or ASK_FOR_FREE
// @Tags         checkouts
// @Accept       json
// @Produce      json
// @Param        checkout_id  path      string                         true  "Checkout ID"
// @Param        body         body      request.CheckoutMethodRequest  true  "Method"
// @Success      200          {object}  response.CheckoutResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /checkouts/{checkout_id}/method [patch]
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var payload request.CheckoutMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	checkout, err := h.usecase.SelectMethod(c.Request.Context(), c.Param("checkout_id"), payload.ResolveMethod())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckout(checkout))
}

// Back godoc
// @Summary      Return from the form to method selection
// @Tags         checkouts
// @Produce      json
// @Param        checkout_id  path      string  true  "Checkout ID"
// @Success      200          {object}  response.CheckoutResponse
// @Failure      409          {object}  pkg.HTTPError
// @Router       /checkouts/{checkout_id}/back [patch]
func (h *CheckoutHandler) Back(c *gin.Context) {
	checkout, err := h.usecase.Back(c.Request.Context(), c.Param("checkout_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckout(checkout))
}

// Submit godoc
// @Summary      Submit the checkout form
// @Description  Runs the cash verification or the AI judgment. A denied free request is a 200 with status DENIED.
// @Tags         checkouts
// @Accept       json
// @Produce      json
// @Param        checkout_id  path      string                         true  "Checkout ID"
// @Param        body         body      request.CheckoutSubmitRequest  true  "Form"
// @Success      200          {object}  response.CheckoutResultResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /checkouts/{checkout_id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	checkoutID := c.Param("checkout_id")
	log.Printf("[checkout][handler] submit start checkout_id=%s", checkoutID)

	var payload request.CheckoutSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload checkout_id=%s err=%v", checkoutID, err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), checkoutID, payload.ToForm())
	if err != nil {
		log.Printf("[checkout][handler] submit failed checkout_id=%s err=%v", checkoutID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] submit done checkout_id=%s status=%s", checkoutID, result.Status)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidCheckoutID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Payment method must be CASH or ASK_FOR_FREE", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingCustomerName):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER_NAME", "Customer name is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingJustification):
		return pkg.NewDomainErrorSimple("MISSING_JUSTIFICATION", "A justification is required to ask for free", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutInProgress):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_PROGRESS", "Checkout is already processing", http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutConflict):
		return pkg.NewDomainErrorSimple("CHECKOUT_CONFLICT", "Checkout changed concurrently", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidCheckoutTransition):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_STEP", "Action not allowed in the current checkout step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	request "brushworks/internal/adapter/http/dto/request"
	response "brushworks/internal/adapter/http/dto/response"
	"brushworks/internal/domain/pricing"
	"brushworks/internal/usecase"
	"brushworks/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote computation and retrieval.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ComputeQuote prices a job and persists the resulting quote record.
//
// The response carries either a single priced result or, for a tiered
// scheme with no explicit tier requested, one result per enabled tier.
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	var payload request.QuoteComputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	record, err := h.usecase.ComputeQuote(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRecord(record))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	record, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRecord(record))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	records, err := h.usecase.ListByTenantID(c.Request.Context(), c.Query("tenant_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.QuoteRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, response.FromQuoteRecord(r))
	}
	c.JSON(http.StatusOK, out)
}

func mapQuoteError(err error) *pkg.AppError {
	var validationErr *pricing.ValidationError
	var configErr *pricing.ConfigurationError
	var formulaErr *pricing.FormulaError
	var computationErr *pricing.ComputationError
	var productErr *pricing.UnknownProductError
	var sheenErr *pricing.InvalidSheenError

	switch {
	case errors.Is(err, request.ErrMissingTenantID),
		errors.Is(err, request.ErrInvalidGBBTier),
		errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidTier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSchemeNotFound):
		return pkg.NewDomainErrorSimple("SCHEME_NOT_FOUND", "Pricing scheme not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoDefaultScheme):
		return pkg.NewDomainErrorSimple("NO_DEFAULT_SCHEME", "Tenant has no default pricing scheme", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoRateTable):
		return pkg.NewDomainErrorSimple("NO_RATE_TABLE", "Tenant has no configured rate table", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTierNotEnabled):
		return pkg.NewDomainErrorSimple("TIER_NOT_ENABLED", "Requested tier is not enabled for this scheme", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", validationErr.Error(), http.StatusBadRequest).
			WithField(validationErr.Field)
	case errors.As(err, &productErr), errors.As(err, &sheenErr):
		return pkg.NewDomainErrorSimple("UNKNOWN_PRODUCT", err.Error(), http.StatusBadRequest)
	case errors.As(err, &formulaErr):
		return pkg.NewDomainErrorSimple("INVALID_FORMULA", formulaErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &configErr):
		return pkg.NewDomainErrorSimple("SCHEME_MISCONFIGURED", configErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &computationErr):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_COMPUTABLE", computationErr.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

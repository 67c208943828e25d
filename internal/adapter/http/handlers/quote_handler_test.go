package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brushworks/internal/adapter/http/handlers/mocks"
	"brushworks/internal/domain/entities"
	"brushworks/internal/domain/pricing"
	"brushworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleRecord() entities.QuoteRecord {
	return entities.QuoteRecord{
		ID:               "quote-1",
		TenantID:         "tenant-1",
		SchemeID:         "scheme-1",
		RateTableVersion: 2,
		Result: &entities.QuoteResult{
			SchemeID:         "scheme-1",
			TenantID:         "tenant-1",
			RateTableVersion: 2,
			LaborSubtotal:    decimal.RequireFromString("520"),
			MaterialSubtotal: decimal.RequireFromString("150"),
			Total:            decimal.RequireFromString("670"),
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestQuoteHandler_ComputeQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *QuoteHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/quotes/compute", h.ComputeQuote)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/compute", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"tenant-1","gbb_tier":"premium"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ComputeQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd usecase.ComputeQuoteCommand) (entities.QuoteRecord, error) {
				if cmd.TenantID != "tenant-1" || cmd.SchemeID != "scheme-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return sampleRecord(), nil
			})
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"tenant-1","pricing_scheme_id":"scheme-1","labor":{"hours":8,"category":"journeyman","material_cost":150}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["quote_id"] != "quote-1" {
			t.Fatalf("expected quote_id quote-1, got %v", body["quote_id"])
		}
		result, ok := body["result"].(map[string]any)
		if !ok {
			t.Fatalf("expected result object, got %v", body["result"])
		}
		if result["total"] != "670.00" {
			t.Fatalf("expected total 670.00, got %v", result["total"])
		}
	})

	t.Run("scheme not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ComputeQuote(gomock.Any(), gomock.Any()).
			Return(entities.QuoteRecord{}, usecase.ErrSchemeNotFound)
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"tenant-1","pricing_scheme_id":"missing"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("tier not enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ComputeQuote(gomock.Any(), gomock.Any()).
			Return(entities.QuoteRecord{}, usecase.ErrTierNotEnabled)
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"tenant-1","gbb_tier":"best"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("engine validation error includes field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ComputeQuote(gomock.Any(), gomock.Any()).
			Return(entities.QuoteRecord{}, &pricing.ValidationError{Field: "surfaces[0].measurement", Reason: "must not be negative"})
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"tenant-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["field"] != "surfaces[0].measurement" {
			t.Fatalf("expected field in error body, got %v", body)
		}
	})

	t.Run("formula error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ComputeQuote(gomock.Any(), gomock.Any()).
			Return(entities.QuoteRecord{}, &pricing.FormulaError{
				SchemeID: "scheme-1",
				Formula:  "sqft * unknownRate",
				Err:      errors.New("unknown variable \"unknownRate\""),
			})
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"tenant-1"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ComputeQuote(gomock.Any(), gomock.Any()).
			Return(entities.QuoteRecord{}, errors.New("dynamodb unavailable"))
		r := newRouter(NewQuoteHandler(uc))

		w := post(r, `{"tenant_id":"tenant-1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			GetByID(gomock.Any(), "quote-1").
			Return(sampleRecord(), nil)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/quote-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(entities.QuoteRecord{}, usecase.ErrQuoteNotFound)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tenant query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ListByTenantID(gomock.Any(), "").
			Return(nil, usecase.ErrInvalidTenantID)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lists tenant quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			ListByTenantID(gomock.Any(), "tenant-1").
			Return([]entities.QuoteRecord{sampleRecord()}, nil)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?tenant_id=tenant-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["tenant_id"] != "tenant-1" {
			t.Fatalf("unexpected list body: %v", body)
		}
	})
}

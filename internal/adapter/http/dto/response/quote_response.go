package response

import (
	"time"

	"brushworks/internal/domain/entities"
)

// Monetary fields are decimal strings with exactly two fraction digits;
// binary floating point never crosses the API boundary.

type LineItemResponse struct {
	Description  string `json:"description"`
	Quantity     string `json:"quantity"`
	MaterialCost string `json:"material_cost"`
	LaborCost    string `json:"labor_cost"`
}

type QuoteResultResponse struct {
	Tier             string             `json:"tier,omitempty"`
	RateTableVersion int64              `json:"rate_table_version"`
	LineItems        []LineItemResponse `json:"line_items"`
	MaterialSubtotal string             `json:"material_subtotal"`
	LaborSubtotal    string             `json:"labor_subtotal"`
	MarkupAmount     string             `json:"markup_amount"`
	OverheadAmount   string             `json:"overhead_amount"`
	ProfitAmount     string             `json:"profit_amount"`
	TaxAmount        string             `json:"tax_amount"`
	DepositAmount    string             `json:"deposit_amount"`
	Total            string             `json:"total"`
}

type TieredQuoteResponse struct {
	Good   *QuoteResultResponse `json:"good,omitempty"`
	Better *QuoteResultResponse `json:"better,omitempty"`
	Best   *QuoteResultResponse `json:"best,omitempty"`
}

type QuoteRecordResponse struct {
	QuoteID          string               `json:"quote_id"`
	TenantID         string               `json:"tenant_id"`
	SchemeID         string               `json:"scheme_id"`
	RateTableVersion int64                `json:"rate_table_version"`
	RequestedTier    string               `json:"requested_tier,omitempty"`
	Result           *QuoteResultResponse `json:"result,omitempty"`
	Tiered           *TieredQuoteResponse `json:"tiered,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

func FromQuoteResult(q entities.QuoteResult) QuoteResultResponse {
	lines := make([]LineItemResponse, 0, len(q.LineItems))
	for _, line := range q.LineItems {
		lines = append(lines, LineItemResponse{
			Description:  line.Description,
			Quantity:     line.Quantity.String(),
			MaterialCost: line.MaterialCost.StringFixed(2),
			LaborCost:    line.LaborCost.StringFixed(2),
		})
	}
	return QuoteResultResponse{
		Tier:             string(q.Tier),
		RateTableVersion: q.RateTableVersion,
		LineItems:        lines,
		MaterialSubtotal: q.MaterialSubtotal.StringFixed(2),
		LaborSubtotal:    q.LaborSubtotal.StringFixed(2),
		MarkupAmount:     q.MarkupAmount.StringFixed(2),
		OverheadAmount:   q.OverheadAmount.StringFixed(2),
		ProfitAmount:     q.ProfitAmount.StringFixed(2),
		TaxAmount:        q.TaxAmount.StringFixed(2),
		DepositAmount:    q.DepositAmount.StringFixed(2),
		Total:            q.Total.StringFixed(2),
	}
}

func FromQuoteRecord(r entities.QuoteRecord) QuoteRecordResponse {
	out := QuoteRecordResponse{
		QuoteID:          r.ID,
		TenantID:         r.TenantID,
		SchemeID:         r.SchemeID,
		RateTableVersion: r.RateTableVersion,
		RequestedTier:    string(r.RequestedTier),
		CreatedAt:        r.CreatedAt,
	}
	if r.Result != nil {
		res := FromQuoteResult(*r.Result)
		out.Result = &res
	}
	if r.Tiered != nil {
		tiered := &TieredQuoteResponse{}
		if r.Tiered.Good != nil {
			res := FromQuoteResult(*r.Tiered.Good)
			tiered.Good = &res
		}
		if r.Tiered.Better != nil {
			res := FromQuoteResult(*r.Tiered.Better)
			tiered.Better = &res
		}
		if r.Tiered.Best != nil {
			res := FromQuoteResult(*r.Tiered.Best)
			tiered.Best = &res
		}
		out.Tiered = tiered
	}
	return out
}

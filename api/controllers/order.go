package controllers

import (
	"bytes"
	"net/http"

	"github.com/Alberto-Moura/pedidos-backend/api/middleware"
	"github.com/Alberto-Moura/pedidos-backend/api/responses"
	"github.com/Alberto-Moura/pedidos-backend/api/validators"
	"github.com/Alberto-Moura/pedidos-backend/internal/capture"
	"github.com/Alberto-Moura/pedidos-backend/internal/export"
	"github.com/Alberto-Moura/pedidos-backend/internal/orders"
	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
	"github.com/Alberto-Moura/pedidos-backend/pkg/logger"
)

type draftRequest struct {
	FranchiseeCode   string         `json:"franchisee_code" validate:"required"`
	PaymentCondition string         `json:"payment_condition" validate:"required"`
	Quantities       map[string]int `json:"quantities"`
}

type lineView struct {
	BatchID     string `json:"batch_id"`
	ProductCode string `json:"product_code"`
	SizeColor   string `json:"size_color"`
	Quantity    int    `json:"quantity"`
	TotalValue  string `json:"total_value"`
}

type orderView struct {
	Header *headerView `json:"header,omitempty"`
	Lines  []lineView  `json:"lines"`
}

type headerView struct {
	FranchiseeCode   string `json:"franchisee_code"`
	FranchiseeName   string `json:"franchisee_name"`
	PaymentCondition string `json:"payment_condition"`
	OrderDate        string `json:"order_date"`
}

type summaryView struct {
	TotalQuantity int         `json:"total_quantity"`
	TotalValue    string      `json:"total_value"`
	Batches       []batchView `json:"batches"`
}

type batchView struct {
	BatchID    string `json:"batch_id"`
	Quantity   int    `json:"quantity"`
	TotalValue string `json:"total_value"`
	BatchDate  string `json:"batch_date"`
}

// OrderDraftUpsert stores the session's draft: franchisee, payment
// condition and per-variant quantities.
func OrderDraftUpsert(svc *capture.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "capture service unavailable"))
			return
		}

		var payload draftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		condition, err := enums.ParsePaymentCondition(payload.PaymentCondition)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "payment condition"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := svc.SaveDraft(r.Context(), sessionID, capture.DraftInput{
			FranchiseeCode:   payload.FranchiseeCode,
			PaymentCondition: condition,
			Quantities:       payload.Quantities,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"franchisee_code":   state.FranchiseeCode,
			"payment_condition": state.PaymentCondition,
			"quantities":        state.Quantities,
		})
	}
}

// OrderBuild runs the order builder over the session's draft.
func OrderBuild(svc *capture.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "capture service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := svc.Build(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderView{Lines: newLineViews(state.Lines)})
	}
}

// OrderFetch returns the session's built lines for review.
func OrderFetch(svc *capture.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "capture service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		lines, header, err := svc.Current(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view := orderView{Lines: newLineViews(lines)}
		if header != nil {
			view.Header = &headerView{
				FranchiseeCode:   header.FranchiseeCode,
				FranchiseeName:   header.FranchiseeName,
				PaymentCondition: header.PaymentCondition.String(),
				OrderDate:        header.OrderDate.Format("2006-01-02"),
			}
		}
		responses.WriteSuccess(w, view)
	}
}

// OrderSummary returns whole-order totals and the per-batch breakdown.
func OrderSummary(svc *capture.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "capture service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		summary, err := svc.Summary(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view := summaryView{
			TotalQuantity: summary.TotalQuantity,
			TotalValue:    summary.TotalValue.StringFixed(2),
			Batches:       make([]batchView, 0, len(summary.Batches)),
		}
		for _, batch := range summary.Batches {
			view.Batches = append(view.Batches, batchView{
				BatchID:    batch.BatchID,
				Quantity:   batch.Quantity,
				TotalValue: batch.TotalValue.StringFixed(2),
				BatchDate:  batch.BatchDate,
			})
		}
		responses.WriteSuccess(w, view)
	}
}

// OrderExport streams the session's order as a CSV download.
func OrderExport(svc *capture.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "capture service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		// Orders are small; buffering keeps the error path clean.
		var buf bytes.Buffer
		if err := svc.Export(r.Context(), sessionID, &buf); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename=`+export.FileName)
		if _, err := buf.WriteTo(w); err != nil && logg != nil {
			logg.Error(r.Context(), "streaming csv export", err)
		}
	}
}

func newLineViews(lines []orders.OrderLine) []lineView {
	views := make([]lineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, lineView{
			BatchID:     line.BatchID,
			ProductCode: line.ProductCode,
			SizeColor:   line.SizeColor,
			Quantity:    line.Quantity,
			TotalValue:  line.TotalValue.StringFixed(2),
		})
	}
	return views
}

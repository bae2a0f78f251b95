package controllers

import (
	"net/http"

	"github.com/Alberto-Moura/pedidos-backend/api/middleware"
	"github.com/Alberto-Moura/pedidos-backend/api/responses"
	"github.com/Alberto-Moura/pedidos-backend/internal/capture"
	"github.com/Alberto-Moura/pedidos-backend/internal/catalog"
	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
	"github.com/Alberto-Moura/pedidos-backend/pkg/logger"
)

type variantView struct {
	Key         string `json:"key"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	UnitPrice   string `json:"unit_price"`
	BatchID     string `json:"batch_id"`
	BatchDate   string `json:"batch_date"`
	Grade       int    `json:"grade"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

// CatalogVariants lists the expanded catalog with the session's current
// draft quantity against each variant.
func CatalogVariants(svc *capture.Service, cat *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		quantities, err := svc.Quantities(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		variants := cat.Variants()
		views := make([]variantView, 0, len(variants))
		for _, v := range variants {
			key := v.Key().String()
			views = append(views, variantView{
				Key:         key,
				ProductCode: v.ProductCode,
				ProductName: v.ProductName,
				Size:        v.Size,
				Color:       v.Color,
				UnitPrice:   v.UnitPrice.StringFixed(2),
				BatchID:     v.BatchID,
				BatchDate:   v.BatchDate.Format("2006-01-02"),
				Grade:       v.Grade,
				Image:       v.Image,
				Quantity:    quantities[key],
			})
		}
		responses.WriteSuccess(w, views)
	}
}

// CatalogFranchisees lists the static franchisee reference data.
func CatalogFranchisees(cat *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, cat.Franchisees())
	}
}

// CatalogPaymentConditions lists the enumerated payment condition set.
func CatalogPaymentConditions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, enums.PaymentConditions())
	}
}

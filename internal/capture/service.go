package capture

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Alberto-Moura/pedidos-backend/internal/catalog"
	"github.com/Alberto-Moura/pedidos-backend/internal/export"
	"github.com/Alberto-Moura/pedidos-backend/internal/orders"
	"github.com/Alberto-Moura/pedidos-backend/internal/sessions"
	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
	"github.com/Alberto-Moura/pedidos-backend/pkg/metrics"
)

// Service drives one order-capture session: draft input, build, review,
// export. All order computation is delegated to the pure core; the service
// only owns loading and overwriting the per-session state.
type Service struct {
	catalog *catalog.Service
	store   sessions.Store
	metrics *metrics.OrderMetrics
	now     func() time.Time
}

// ServiceParams wires the capture service dependencies.
type ServiceParams struct {
	Catalog *catalog.Service
	Store   sessions.Store
	Metrics *metrics.OrderMetrics
	Now     func() time.Time
}

// NewService builds a capture service backed by the provided stack.
func NewService(params ServiceParams) (*Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Service{
		catalog: params.Catalog,
		store:   params.Store,
		metrics: params.Metrics,
		now:     params.Now,
	}, nil
}

// DraftInput is the raw order input supplied by the client.
type DraftInput struct {
	FranchiseeCode   string
	PaymentCondition enums.PaymentCondition
	Quantities       map[string]int
}

// SaveDraft validates and stores the session's draft. Quantities are keyed
// by the variant wire key; negative quantities and unknown payment
// conditions are rejected here, before they can reach the core.
func (s *Service) SaveDraft(ctx context.Context, sessionID string, input DraftInput) (*sessions.OrderState, error) {
	if !input.PaymentCondition.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unknown payment condition %q", input.PaymentCondition))
	}
	if _, err := s.catalog.FranchiseeName(input.FranchiseeCode); err != nil {
		return nil, err
	}

	quantities := make(map[string]int, len(input.Quantities))
	for rawKey, qty := range input.Quantities {
		if qty < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("negative quantity %d for variant %q", qty, rawKey))
		}
		key, err := catalog.ParseVariantKey(rawKey)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid variant key")
		}
		if _, ok := s.catalog.Lookup(key); !ok {
			return nil, pkgerrors.New(pkgerrors.CodeDataIntegrity,
				fmt.Sprintf("variant %q not found in catalog", rawKey))
		}
		quantities[rawKey] = qty
	}

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.FranchiseeCode = input.FranchiseeCode
	state.PaymentCondition = input.PaymentCondition
	state.Quantities = quantities

	if err := s.store.Put(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Build rebuilds the session's order lines from its draft, replacing any
// previously built lines in full.
func (s *Service) Build(ctx context.Context, sessionID string) (*sessions.OrderState, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.FranchiseeCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no draft to build: select a franchisee first")
	}

	quantities := make(map[catalog.VariantKey]int, len(state.Quantities))
	for rawKey, qty := range state.Quantities {
		key, err := catalog.ParseVariantKey(rawKey)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "corrupt draft quantity key")
		}
		quantities[key] = qty
	}

	state.Lines = orders.Build(s.catalog.Variants(), quantities, state.FranchiseeCode, state.PaymentCondition, s.now())

	if err := s.store.Put(ctx, sessionID, state); err != nil {
		return nil, err
	}
	s.metrics.ObserveBuild(state.PaymentCondition.String(), len(state.Lines))
	return state, nil
}

// Current returns the session's built lines. An empty order is not an
// error; the header is only present when lines exist.
func (s *Service) Current(ctx context.Context, sessionID string) ([]orders.OrderLine, *orders.OrderHeader, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if len(state.Lines) == 0 {
		return nil, nil, nil
	}
	header, err := orders.Header(state.Lines, s.catalog)
	if err != nil {
		return nil, nil, err
	}
	return state.Lines, &header, nil
}

// Summary aggregates the session's built lines.
func (s *Service) Summary(ctx context.Context, sessionID string) (orders.OrderSummary, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return orders.OrderSummary{}, err
	}
	return orders.Summarize(state.Lines, s.catalog), nil
}

// Export writes the session's built lines as CSV.
func (s *Service) Export(ctx context.Context, sessionID string, w io.Writer) error {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := export.WriteOrderCSV(w, state.Lines); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialising order csv")
	}
	s.metrics.IncExport()
	return nil
}

// Quantities exposes the session's draft quantities for catalog display.
func (s *Service) Quantities(ctx context.Context, sessionID string) (map[string]int, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Quantities, nil
}

func (s *Service) loadState(ctx context.Context, sessionID string) (*sessions.OrderState, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = sessions.NewOrderState()
	}
	return state, nil
}

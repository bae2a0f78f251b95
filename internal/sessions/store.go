package sessions

import (
	"context"

	"github.com/Alberto-Moura/pedidos-backend/internal/orders"
	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
)

// OrderState is the per-session order being captured: the draft inputs and
// the lines of the last build. It is overwritten in full on every change;
// nothing merges.
type OrderState struct {
	FranchiseeCode   string                 `json:"franchisee_code"`
	PaymentCondition enums.PaymentCondition `json:"payment_condition"`
	Quantities       map[string]int         `json:"quantities"`
	Lines            []orders.OrderLine     `json:"lines"`
}

// NewOrderState returns an empty state with no quantities entered.
func NewOrderState() *OrderState {
	return &OrderState{Quantities: map[string]int{}}
}

// Store keeps order state isolated per session identity.
//
// Get returns (nil, nil) for a session that has no state yet; callers start
// from NewOrderState in that case.
type Store interface {
	Get(ctx context.Context, sessionID string) (*OrderState, error)
	Put(ctx context.Context, sessionID string, state *OrderState) error
	Delete(ctx context.Context, sessionID string) error
}

package payments

import (
	"context"
	"log"
	"time"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"
)

const DefaultCashVerifyDelay = 1500 * time.Millisecond

// SimulatedCashRegister stands in for a real payment terminal: cash is always
// accepted after a fixed verification delay. No money moves.
type SimulatedCashRegister struct {
	delay time.Duration
}

var _ interfaces.ICashRegister = (*SimulatedCashRegister)(nil)

func NewSimulatedCashRegister(delay time.Duration) *SimulatedCashRegister {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedCashRegister{delay: delay}
}

// VerifyCashPayment waits for the verification delay. It only fails when ctx
// is done first.
func (r *SimulatedCashRegister) VerifyCashPayment(ctx context.Context, p entities.Product) error {
	log.Printf("[payment][cash] verify start product_id=%s amount=%s delay=%s", p.ID, p.Price.StringFixed(2), r.delay)
	if r.delay == 0 {
		return nil
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Printf("[payment][cash] verify success product_id=%s", p.ID)
		return nil
	case <-ctx.Done():
		log.Printf("[payment][cash] verify interrupted product_id=%s err=%v", p.ID, ctx.Err())
		return ctx.Err()
	}
}

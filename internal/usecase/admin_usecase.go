package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"
)

var ErrInvalidAccessCode = errors.New("invalid access code")

// AdminDashboard is the read-only admin view over the ledger.
type AdminDashboard struct {
	Summary entities.LedgerSummary
	Orders  []entities.Order
}

// IAdminUseCase gates the admin dashboard behind a single shared access code.
type IAdminUseCase interface {
	Unlock(ctx context.Context, accessCode string) error
	Dashboard(ctx context.Context, accessCode string) (AdminDashboard, error)
}

type AdminUseCase struct {
	ledger     interfaces.IOrderLedger
	accessCode string
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

// NewAdminUseCase builds the admin gate. An empty accessCode keeps the
// dashboard locked for every input.
func NewAdminUseCase(ledger interfaces.IOrderLedger, accessCode string) *AdminUseCase {
	return &AdminUseCase{ledger: ledger, accessCode: accessCode}
}

// Unlock succeeds only when accessCode is byte-for-byte the configured code.
func (u *AdminUseCase) Unlock(_ context.Context, accessCode string) error {
	if u.accessCode == "" || subtle.ConstantTimeCompare([]byte(accessCode), []byte(u.accessCode)) != 1 {
		log.Printf("[admin][usecase] unlock rejected")
		return ErrInvalidAccessCode
	}
	return nil
}

// Dashboard recomputes the aggregates from the ledger on every call.
func (u *AdminUseCase) Dashboard(ctx context.Context, accessCode string) (AdminDashboard, error) {
	if err := u.Unlock(ctx, accessCode); err != nil {
		return AdminDashboard{}, err
	}

	orders, err := u.ledger.List(ctx)
	if err != nil {
		log.Printf("[admin][usecase] ledger list failed err=%v", err)
		return AdminDashboard{}, err
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	return AdminDashboard{Summary: entities.Summarize(orders), Orders: orders}, nil
}

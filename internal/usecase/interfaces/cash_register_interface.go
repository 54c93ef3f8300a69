package interfaces

import (
	"context"
	"polyforge/internal/domain/entities"
)

// ICashRegister verifies a cash payment for a product.
//
//go:generate mockgen -source=cash_register_interface.go -destination=mocks/mock_cash_register.go -package=mock_interfaces
type ICashRegister interface {
	VerifyCashPayment(ctx context.Context, p entities.Product) error
}

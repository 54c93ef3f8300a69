package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

const PrintPathPrefix = "/print/"

type IReceiptUseCase interface {
	RenderReceipt(ctx context.Context, orderID string) (entities.Receipt, error)
}

type ReceiptUseCase struct {
	ledger interfaces.IOrderLedger
	qr     interfaces.IQRCodeProvider
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(ledger interfaces.IOrderLedger, qr interfaces.IQRCodeProvider) *ReceiptUseCase {
	return &ReceiptUseCase{ledger: ledger, qr: qr}
}

func (u *ReceiptUseCase) RenderReceipt(ctx context.Context, orderID string) (entities.Receipt, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Receipt{}, ErrInvalidOrderID
	}

	o, err := u.ledger.GetByID(ctx, orderID)
	if err != nil {
		return entities.Receipt{}, err
	}
	if o.ID == "" {
		return entities.Receipt{}, ErrOrderNotFound
	}

	qrURL := ""
	if u.qr != nil {
		qrURL = u.qr.ImageURL(entities.QRCodePayload(o.ID))
	}
	return entities.NewReceipt(o, qrURL, PrintPathPrefix+url.PathEscape(o.ID)), nil
}

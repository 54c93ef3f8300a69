package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"polyforge/internal/domain/entities"
	"polyforge/internal/infrastructure/metrics"
	"polyforge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCheckoutNotFound   = errors.New("checkout not found")
	ErrInvalidCheckoutID  = errors.New("invalid checkout id")
	ErrCheckoutInProgress = errors.New("checkout already processing")
	ErrCheckoutConflict   = errors.New("checkout changed concurrently")
)

type CheckoutStatus string

const (
	CheckoutStatusCompleted CheckoutStatus = "COMPLETED"
	CheckoutStatusDenied    CheckoutStatus = "DENIED"
)

// CheckoutResult is the outcome of a submitted checkout.
//
//   - COMPLETED: Order is set and already in the ledger.
//   - DENIED: Judgment explains why; the checkout is back in SELECT and no
//     order exists.
//
// Judgment is only set for free requests.
type CheckoutResult struct {
	Status   CheckoutStatus
	Checkout entities.Checkout
	Order    entities.Order
	Judgment *entities.JudgmentOutcome
	Message  entities.ReceiptMessage
}

// ICheckoutUseCase drives a checkout through SELECT -> FORM -> PROCESSING.
type ICheckoutUseCase interface {
	StartCheckout(ctx context.Context, productID string) (entities.Checkout, error)
	GetCheckout(ctx context.Context, checkoutID string) (entities.Checkout, error)
	SelectMethod(ctx context.Context, checkoutID string, method entities.PaymentMethod) (entities.Checkout, error)
	Back(ctx context.Context, checkoutID string) (entities.Checkout, error)
	Submit(ctx context.Context, checkoutID string, form entities.CheckoutForm) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	catalog   interfaces.ICatalogRepository
	checkouts interfaces.ICheckoutRepository
	ledger    interfaces.IOrderLedger
	register  interfaces.ICashRegister
	judge     *JudgmentClient
	messages  *MessageClient

	now   func() time.Time
	newID func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	catalog interfaces.ICatalogRepository,
	checkouts interfaces.ICheckoutRepository,
	ledger interfaces.IOrderLedger,
	register interfaces.ICashRegister,
	model interfaces.IShopkeeperModel,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		catalog:   catalog,
		checkouts: checkouts,
		ledger:    ledger,
		register:  register,
		judge:     NewJudgmentClient(model),
		messages:  NewMessageClient(model),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (u *CheckoutUseCase) StartCheckout(ctx context.Context, productID string) (entities.Checkout, error) {
	p, err := u.product(ctx, productID)
	if err != nil {
		return entities.Checkout{}, err
	}

	c := entities.NewCheckout(u.newID(), p.ID, u.now())
	created, err := u.checkouts.Create(ctx, c)
	if err != nil {
		log.Printf("[checkout][usecase] create failed product_id=%s err=%v", p.ID, err)
		return entities.Checkout{}, err
	}
	log.Printf("[checkout][usecase] started checkout_id=%s product_id=%s", created.ID, p.ID)
	return created, nil
}

func (u *CheckoutUseCase) GetCheckout(ctx context.Context, checkoutID string) (entities.Checkout, error) {
	return u.load(ctx, checkoutID)
}

func (u *CheckoutUseCase) SelectMethod(ctx context.Context, checkoutID string, method entities.PaymentMethod) (entities.Checkout, error) {
	c, err := u.load(ctx, checkoutID)
	if err != nil {
		return entities.Checkout{}, err
	}

	next, err := c.SelectMethod(method, u.now())
	if err != nil {
		return entities.Checkout{}, u.transitionError(c, err)
	}
	return u.save(ctx, next, c.Step)
}

func (u *CheckoutUseCase) Back(ctx context.Context, checkoutID string) (entities.Checkout, error) {
	c, err := u.load(ctx, checkoutID)
	if err != nil {
		return entities.Checkout{}, err
	}

	next, err := c.Back(u.now())
	if err != nil {
		return entities.Checkout{}, u.transitionError(c, err)
	}
	return u.save(ctx, next, c.Step)
}

// Submit validates the form, moves the checkout to PROCESSING and runs the
// remote calls for the chosen method. The calls are not cancelled when the
// caller goes away; once submitted, a checkout always reaches an outcome.
func (u *CheckoutUseCase) Submit(ctx context.Context, checkoutID string, form entities.CheckoutForm) (CheckoutResult, error) {
	c, err := u.load(ctx, checkoutID)
	if err != nil {
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] submit start checkout_id=%s step=%s method=%s", c.ID, c.Step, c.Method)

	p, err := u.product(ctx, c.ProductID)
	if err != nil {
		return CheckoutResult{}, err
	}

	processing, err := c.BeginProcessing(form, u.now())
	if err != nil {
		log.Printf("[checkout][usecase] submit rejected checkout_id=%s err=%v", c.ID, err)
		return CheckoutResult{}, u.transitionError(c, err)
	}
	if processing, err = u.save(ctx, processing, entities.CheckoutStepForm); err != nil {
		return CheckoutResult{}, err
	}

	ctx = context.WithoutCancel(ctx)
	if processing.Method == entities.PaymentMethodCash {
		return u.processCash(ctx, processing, p)
	}
	return u.processFreeRequest(ctx, processing, p)
}

func (u *CheckoutUseCase) processCash(ctx context.Context, c entities.Checkout, p entities.Product) (CheckoutResult, error) {
	if u.register != nil {
		// Cash cannot be denied; a register error is only logged.
		if err := u.register.VerifyCashPayment(ctx, p); err != nil {
			log.Printf("[checkout][usecase] cash verification error ignored checkout_id=%s err=%v", c.ID, err)
		}
	}

	msg := u.messages.Compose(ctx, p, c.CustomerName)
	order := u.newOrder(c, p, p.Price)
	order.ReceiptMessage = msg.Text

	return u.complete(ctx, c, order, nil, msg)
}

func (u *CheckoutUseCase) processFreeRequest(ctx context.Context, c entities.Checkout, p entities.Product) (CheckoutResult, error) {
	outcome := u.judge.Judge(ctx, p, c.Justification)

	if !outcome.Judgment.Approved {
		denied, err := c.Deny(outcome.Judgment, u.now())
		if err != nil {
			return CheckoutResult{}, err
		}
		if denied, err = u.save(ctx, denied, entities.CheckoutStepProcessing); err != nil {
			return CheckoutResult{}, err
		}

		label := "denied"
		if outcome.Fallback() {
			label = "denied_offline"
		}
		metrics.RecordCheckout(string(c.Method), label)
		log.Printf("[checkout][usecase] free request denied checkout_id=%s source=%s", c.ID, outcome.Source)
		return CheckoutResult{Status: CheckoutStatusDenied, Checkout: denied, Judgment: &outcome}, nil
	}

	approved, err := u.save(ctx, c.WithProcessingMessage(entities.ProcessingMessageApproved, u.now()), entities.CheckoutStepProcessing)
	if err != nil {
		return CheckoutResult{}, err
	}

	msg := u.messages.Compose(ctx, p, approved.CustomerName)
	order := u.newOrder(approved, p, decimal.Zero)
	order.AIJudgmentReason = outcome.Judgment.Reason
	order.ReceiptMessage = freeReceiptMessage(msg.Text, outcome.Judgment)

	return u.complete(ctx, approved, order, &outcome, msg)
}

func (u *CheckoutUseCase) newOrder(c entities.Checkout, p entities.Product, amount decimal.Decimal) entities.Order {
	return entities.Order{
		ID:           u.newID(),
		ProductID:    p.ID,
		ProductName:  p.Name,
		Amount:       amount,
		Date:         u.now(),
		Method:       c.Method,
		CustomerName: c.CustomerName,
		Notes:        c.Notes,
	}
}

// complete appends the order and closes the checkout. If the ledger refuses
// the order the checkout goes back to FORM so the customer can retry.
func (u *CheckoutUseCase) complete(ctx context.Context, c entities.Checkout, order entities.Order, outcome *entities.JudgmentOutcome, msg entities.ReceiptMessage) (CheckoutResult, error) {
	created, err := u.ledger.Append(ctx, order)
	if err != nil {
		log.Printf("[checkout][usecase] ledger append failed checkout_id=%s order_id=%s err=%v", c.ID, order.ID, err)
		if aborted, abortErr := c.Abort(u.now()); abortErr == nil {
			if _, saveErr := u.save(ctx, aborted, entities.CheckoutStepProcessing); saveErr != nil {
				log.Printf("[checkout][usecase] abort save failed checkout_id=%s err=%v", c.ID, saveErr)
			}
		}
		metrics.RecordCheckout(string(c.Method), "failed")
		return CheckoutResult{}, err
	}

	done, err := c.Complete(created.ID, u.now())
	if err != nil {
		return CheckoutResult{}, err
	}
	if done, err = u.save(ctx, done, entities.CheckoutStepProcessing); err != nil {
		return CheckoutResult{}, err
	}

	metrics.RecordCheckout(string(c.Method), "completed")
	log.Printf("[checkout][usecase] completed checkout_id=%s order_id=%s method=%s amount=%s", c.ID, created.ID, created.Method, created.Amount.StringFixed(2))
	return CheckoutResult{Status: CheckoutStatusCompleted, Checkout: done, Order: created, Judgment: outcome, Message: msg}, nil
}

func (u *CheckoutUseCase) product(ctx context.Context, productID string) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.catalog.GetByID(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CheckoutUseCase) load(ctx context.Context, checkoutID string) (entities.Checkout, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return entities.Checkout{}, ErrInvalidCheckoutID
	}
	c, err := u.checkouts.GetByID(ctx, checkoutID)
	if err != nil {
		return entities.Checkout{}, err
	}
	if c.ID == "" {
		return entities.Checkout{}, ErrCheckoutNotFound
	}
	return c, nil
}

func (u *CheckoutUseCase) save(ctx context.Context, c entities.Checkout, expected entities.CheckoutStep) (entities.Checkout, error) {
	saved, err := u.checkouts.Update(ctx, c, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrCheckoutStepConflict) {
			if saved.Step == entities.CheckoutStepProcessing {
				return entities.Checkout{}, ErrCheckoutInProgress
			}
			return entities.Checkout{}, ErrCheckoutConflict
		}
		return entities.Checkout{}, err
	}
	if saved.ID == "" {
		return entities.Checkout{}, ErrCheckoutNotFound
	}
	return saved, nil
}

// transitionError reports an invalid transition on a PROCESSING checkout as
// ErrCheckoutInProgress, so a double submit reads as a conflict.
func (u *CheckoutUseCase) transitionError(c entities.Checkout, err error) error {
	if errors.Is(err, entities.ErrInvalidCheckoutTransition) && c.Step == entities.CheckoutStepProcessing {
		return ErrCheckoutInProgress
	}
	return err
}

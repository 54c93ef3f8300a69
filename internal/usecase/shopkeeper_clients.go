package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"polyforge/internal/domain/entities"
	"polyforge/internal/infrastructure/metrics"
	"polyforge/internal/usecase/interfaces"
)

var ErrShopkeeperNotConfigured = errors.New("shopkeeper model not configured")

// JudgmentClient asks the shopkeeper model for a verdict and never fails:
// any error becomes the offline denial, tagged as a fallback.
type JudgmentClient struct {
	model interfaces.IShopkeeperModel
}

func NewJudgmentClient(model interfaces.IShopkeeperModel) *JudgmentClient {
	return &JudgmentClient{model: model}
}

func (c *JudgmentClient) Judge(ctx context.Context, p entities.Product, reason string) entities.JudgmentOutcome {
	start := time.Now()
	outcome := c.judge(ctx, p, reason)
	metrics.RecordModelCall("judge", string(outcome.Source), time.Since(start))
	return outcome
}

func (c *JudgmentClient) judge(ctx context.Context, p entities.Product, reason string) entities.JudgmentOutcome {
	if c == nil || c.model == nil {
		log.Printf("[shopkeeper][usecase] judge fallback product_id=%s err=%v", p.ID, ErrShopkeeperNotConfigured)
		return offlineOutcome(ErrShopkeeperNotConfigured)
	}

	j, err := c.model.JudgeFreeRequest(ctx, p, reason)
	if err != nil {
		log.Printf("[shopkeeper][usecase] judge fallback product_id=%s err=%v", p.ID, err)
		return offlineOutcome(err)
	}
	return entities.JudgmentOutcome{Judgment: j, Source: entities.OutcomeSourceModel}
}

func offlineOutcome(cause error) entities.JudgmentOutcome {
	return entities.JudgmentOutcome{
		Judgment: entities.OfflineJudgment(),
		Source:   entities.OutcomeSourceFallback,
		Cause:    cause,
	}
}

// MessageClient fetches a receipt footer and never fails. A model error
// yields FallbackReceiptMessage, an empty answer EmptyReceiptMessage.
type MessageClient struct {
	model interfaces.IShopkeeperModel
}

func NewMessageClient(model interfaces.IShopkeeperModel) *MessageClient {
	return &MessageClient{model: model}
}

func (c *MessageClient) Compose(ctx context.Context, p entities.Product, customerName string) entities.ReceiptMessage {
	start := time.Now()
	msg := c.compose(ctx, p, customerName)
	metrics.RecordModelCall("receipt_message", string(msg.Source), time.Since(start))
	return msg
}

func (c *MessageClient) compose(ctx context.Context, p entities.Product, customerName string) entities.ReceiptMessage {
	if c == nil || c.model == nil {
		return entities.ReceiptMessage{Text: entities.FallbackReceiptMessage, Source: entities.OutcomeSourceFallback, Cause: ErrShopkeeperNotConfigured}
	}

	text, err := c.model.ComposeReceiptMessage(ctx, p, customerName)
	if err != nil {
		log.Printf("[shopkeeper][usecase] receipt message fallback product_id=%s err=%v", p.ID, err)
		return entities.ReceiptMessage{Text: entities.FallbackReceiptMessage, Source: entities.OutcomeSourceFallback, Cause: err}
	}
	if text == "" {
		return entities.ReceiptMessage{Text: entities.EmptyReceiptMessage, Source: entities.OutcomeSourceFallback}
	}
	return entities.ReceiptMessage{Text: text, Source: entities.OutcomeSourceModel}
}

// freeReceiptMessage appends the judge's remark to the receipt footer.
func freeReceiptMessage(msg string, j entities.Judgment) string {
	return fmt.Sprintf("%s AI Note: \"%s\"", msg, j.WittyComment)
}

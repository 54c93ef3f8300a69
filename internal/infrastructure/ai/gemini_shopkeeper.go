package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

var (
	ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyModelResponse  = errors.New("no response from AI")
)

const judgeInstruction = `You are the AI Shopkeeper of PolyForge, a futuristic 3D printing store.
A customer wants a product for FREE. You must judge their reason.
- If the reason is lazy, boring, or entitled, REJECT it.
- If the reason is creative, funny, poetic, or genuinely touching, APPROVE it.
- Provide a witty, slightly sarcastic, or cyber-themed comment explaining your decision.`

const receiptInstruction = "Write a short, cool, cyberpunk-style receipt footer message. Max 2 sentences. Be friendly but futuristic."

var judgmentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"approved":     {Type: genai.TypeBoolean},
		"reason":       {Type: genai.TypeString, Description: "A brief explanation of your verdict."},
		"wittyComment": {Type: genai.TypeString, Description: "A funny or sarcastic remark to the customer."},
	},
	Required: []string{"approved", "reason", "wittyComment"},
}

// contentGenerator is satisfied by *genai.Models.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiShopkeeper asks a Gemini model to judge free requests and to write
// receipt footers.
type GeminiShopkeeper struct {
	models contentGenerator
	model  string
}

var _ interfaces.IShopkeeperModel = (*GeminiShopkeeper)(nil)

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewGeminiShopkeeper(ctx context.Context, cfg GeminiConfig) (*GeminiShopkeeper, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Printf("[shopkeeper][gemini] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		log.Printf("[shopkeeper][gemini] failed creating client err=%v", err)
		return nil, err
	}
	log.Printf("[shopkeeper][gemini] client initialized model=%s", modelOrDefault(cfg.Model))

	return newGeminiShopkeeper(client.Models, cfg.Model), nil
}

func newGeminiShopkeeper(models contentGenerator, model string) *GeminiShopkeeper {
	return &GeminiShopkeeper{models: models, model: modelOrDefault(model)}
}

func modelOrDefault(model string) string {
	if strings.TrimSpace(model) == "" {
		return DefaultGeminiModel
	}
	return model
}

func (g *GeminiShopkeeper) JudgeFreeRequest(ctx context.Context, p entities.Product, reason string) (entities.Judgment, error) {
	prompt := fmt.Sprintf("Product: %q (%s)\nCustomer Reason: %q", p.Name, entities.FormatEuro(p.Price), reason)
	log.Printf("[shopkeeper][gemini] judge start product_id=%s reason_len=%d", p.ID, len(reason))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(judgeInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    judgmentSchema,
	})
	if err != nil {
		log.Printf("[shopkeeper][gemini] judge failed product_id=%s err=%v", p.ID, err)
		return entities.Judgment{}, err
	}

	text := responseText(resp)
	if text == "" {
		return entities.Judgment{}, ErrEmptyModelResponse
	}

	j, err := DecodeJudgment(text)
	if err != nil {
		log.Printf("[shopkeeper][gemini] judge payload rejected product_id=%s err=%v", p.ID, err)
		return entities.Judgment{}, err
	}
	log.Printf("[shopkeeper][gemini] judge success product_id=%s approved=%t", p.ID, j.Approved)
	return j, nil
}

// ComposeReceiptMessage returns the model text as is. An empty answer is not
// an error; the caller decides what to print instead.
func (g *GeminiShopkeeper) ComposeReceiptMessage(ctx context.Context, p entities.Product, customerName string) (string, error) {
	prompt := fmt.Sprintf("Customer: %s\nProduct: %s", customerName, p.Name)

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(receiptInstruction, genai.RoleUser),
	})
	if err != nil {
		log.Printf("[shopkeeper][gemini] receipt message failed product_id=%s err=%v", p.ID, err)
		return "", err
	}
	return strings.TrimSpace(responseText(resp)), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}

package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"polyforge/internal/domain/entities"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text string
	err  error

	gotModel    string
	gotPrompt   string
	gotConfig   *genai.GenerateContentConfig
	calledTimes int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calledTimes++
	f.gotModel = model
	f.gotConfig = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

var testProduct = entities.Product{ID: "4", Name: "Sim Gear Shifter", Price: decimal.NewFromInt(5)}

func TestGeminiShopkeeper_JudgeFreeRequest(t *testing.T) {
	t.Run("approved verdict", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"approved":true,"reason":"Poetic","wittyComment":"Beep boop, granted."}`}
		g := newGeminiShopkeeper(gen, "")

		j, err := g.JudgeFreeRequest(context.Background(), testProduct, "a haiku about gears")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !j.Approved || j.Reason != "Poetic" || j.WittyComment != "Beep boop, granted." {
			t.Fatalf("unexpected judgment: %+v", j)
		}
		if gen.gotModel != DefaultGeminiModel {
			t.Fatalf("expected default model, got %q", gen.gotModel)
		}
		if !strings.Contains(gen.gotPrompt, `Product: "Sim Gear Shifter" (€5.00)`) || !strings.Contains(gen.gotPrompt, `Customer Reason: "a haiku about gears"`) {
			t.Fatalf("unexpected prompt: %q", gen.gotPrompt)
		}
		if gen.gotConfig == nil || gen.gotConfig.ResponseMIMEType != "application/json" || gen.gotConfig.ResponseSchema == nil {
			t.Fatalf("expected json response config, got %+v", gen.gotConfig)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		g := newGeminiShopkeeper(&fakeGenerator{err: errors.New("dial tcp: refused")}, "gemini-x")
		if _, err := g.JudgeFreeRequest(context.Background(), testProduct, "pls"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		g := newGeminiShopkeeper(&fakeGenerator{text: ""}, "")
		if _, err := g.JudgeFreeRequest(context.Background(), testProduct, "pls"); !errors.Is(err, ErrEmptyModelResponse) {
			t.Fatalf("expected ErrEmptyModelResponse, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		g := newGeminiShopkeeper(&fakeGenerator{text: `{"approved":"yes"}`}, "")
		if _, err := g.JudgeFreeRequest(context.Background(), testProduct, "pls"); !errors.Is(err, ErrMalformedJudgment) {
			t.Fatalf("expected ErrMalformedJudgment, got %v", err)
		}
	})
}

func TestGeminiShopkeeper_ComposeReceiptMessage(t *testing.T) {
	gen := &fakeGenerator{text: "  Stay chrome, Ana.  "}
	g := newGeminiShopkeeper(gen, "gemini-x")

	msg, err := g.ComposeReceiptMessage(context.Background(), testProduct, "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Stay chrome, Ana." {
		t.Fatalf("unexpected message %q", msg)
	}
	if gen.gotModel != "gemini-x" {
		t.Fatalf("unexpected model %q", gen.gotModel)
	}
	if gen.gotPrompt != "Customer: Ana\nProduct: Sim Gear Shifter" {
		t.Fatalf("unexpected prompt %q", gen.gotPrompt)
	}

	failing := newGeminiShopkeeper(&fakeGenerator{err: errors.New("503")}, "")
	if _, err := failing.ComposeReceiptMessage(context.Background(), testProduct, "Ana"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewGeminiShopkeeper_MissingKey(t *testing.T) {
	if _, err := NewGeminiShopkeeper(context.Background(), GeminiConfig{APIKey: "  "}); !errors.Is(err, ErrMissingGeminiAPIKey) {
		t.Fatalf("expected ErrMissingGeminiAPIKey, got %v", err)
	}
}

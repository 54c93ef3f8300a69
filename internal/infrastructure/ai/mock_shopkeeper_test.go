package ai

import (
	"context"
	"strings"
	"testing"
)

func TestMockShopkeeper(t *testing.T) {
	m := MockShopkeeper{}

	short, err := m.JudgeFreeRequest(context.Background(), testProduct, "I want it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if short.Approved {
		t.Fatalf("expected short reason to be rejected")
	}

	long := "my grandmother raced rally cars and I promised to build her a shifter before her birthday"
	j, err := m.JudgeFreeRequest(context.Background(), testProduct, long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !j.Approved || !strings.Contains(j.WittyComment, testProduct.Name) {
		t.Fatalf("unexpected judgment: %+v", j)
	}

	msg, err := m.ComposeReceiptMessage(context.Background(), testProduct, "Ana")
	if err != nil || !strings.Contains(msg, "Ana") {
		t.Fatalf("unexpected message %q err=%v", msg, err)
	}
}

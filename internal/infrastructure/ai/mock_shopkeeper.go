package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"
)

// mockApprovalWords is how many words a reason needs before the offline
// shopkeeper calls it creative.
const mockApprovalWords = 12

// MockShopkeeper is a deterministic stand-in for the remote model, enabled
// with SHOPKEEPER_MOCK. Long reasons are approved, short ones are not.
type MockShopkeeper struct{}

var _ interfaces.IShopkeeperModel = MockShopkeeper{}

func (MockShopkeeper) JudgeFreeRequest(_ context.Context, p entities.Product, reason string) (entities.Judgment, error) {
	words := len(strings.Fields(reason))
	log.Printf("[shopkeeper][mock] judge product_id=%s words=%d", p.ID, words)
	if words >= mockApprovalWords {
		return entities.Judgment{
			Approved:     true,
			Reason:       "Sufficient effort detected in the request buffer.",
			WittyComment: fmt.Sprintf("Fine. The %s is yours. My circuits are mildly moved.", p.Name),
		}, nil
	}
	return entities.Judgment{
		Approved:     false,
		Reason:       "Request too short to register as effort.",
		WittyComment: "Twelve words, human. Even my toaster tries harder.",
	}, nil
}

func (MockShopkeeper) ComposeReceiptMessage(_ context.Context, p entities.Product, customerName string) (string, error) {
	return fmt.Sprintf("Transaction logged, %s. May your %s never desync.", customerName, p.Name), nil
}

package entities

// Judgment is the shopkeeper model's verdict on a free request.
type Judgment struct {
	Approved     bool   `json:"approved"`
	Reason       string `json:"reason"`
	WittyComment string `json:"witty_comment"`
}

// OutcomeSource tells whether a value came from the remote model or from the
// local fallback used when the model could not be reached or understood.
type OutcomeSource string

const (
	OutcomeSourceModel    OutcomeSource = "model"
	OutcomeSourceFallback OutcomeSource = "fallback"
)

const (
	OfflineJudgmentReason       = "AI Neural Link Offline"
	OfflineJudgmentWittyComment = "My logic circuits are currently rebooting. Cash only until I'm back online."

	FallbackReceiptMessage = "Thank you for your purchase. System nominal."
	EmptyReceiptMessage    = "Thank you for your patronage."
)

// OfflineJudgment is the denial used whenever the model is unavailable.
func OfflineJudgment() Judgment {
	return Judgment{
		Approved:     false,
		Reason:       OfflineJudgmentReason,
		WittyComment: OfflineJudgmentWittyComment,
	}
}

// JudgmentOutcome is what the judgment client hands back: always a usable
// Judgment, plus where it came from. Cause is set for fallbacks.
type JudgmentOutcome struct {
	Judgment Judgment
	Source   OutcomeSource
	Cause    error
}

// Fallback reports whether the model was unreachable or unreadable.
func (o JudgmentOutcome) Fallback() bool {
	return o.Source == OutcomeSourceFallback
}

// ReceiptMessage is a receipt footer and where it came from.
type ReceiptMessage struct {
	Text   string
	Source OutcomeSource
	Cause  error
}

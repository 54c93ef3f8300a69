package ai

import (
	"errors"

	"polyforge/internal/domain/entities"

	"github.com/tidwall/gjson"
)

var ErrMalformedJudgment = errors.New("malformed judgment payload")

// DecodeJudgment parses the model's JSON verdict. Every field must be present
// with the right JSON type; a string "true" is not a boolean.
func DecodeJudgment(payload string) (entities.Judgment, error) {
	if !gjson.Valid(payload) {
		return entities.Judgment{}, ErrMalformedJudgment
	}

	root := gjson.Parse(payload)
	if !root.IsObject() {
		return entities.Judgment{}, ErrMalformedJudgment
	}

	approved := root.Get("approved")
	reason := root.Get("reason")
	witty := root.Get("wittyComment")
	if !approved.IsBool() || reason.Type != gjson.String || witty.Type != gjson.String {
		return entities.Judgment{}, ErrMalformedJudgment
	}

	return entities.Judgment{
		Approved:     approved.Bool(),
		Reason:       reason.String(),
		WittyComment: witty.String(),
	}, nil
}

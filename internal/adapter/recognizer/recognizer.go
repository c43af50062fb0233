// Package recognizer resolves natural-language date expressions ("tomorrow",
// "next friday at 6pm") to concrete instants using the when rule engine.
package recognizer

import (
	"context"
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

const layoutDateTime = "2006-01-02 15:04:05"

// Recognizer implements domain.DateRecognizer over the when parser.
type Recognizer struct {
	parser *when.Parser
}

var _ domain.DateRecognizer = (*Recognizer)(nil)

// New creates a recognizer with the English and common rule sets.
func New() *Recognizer {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)
	return &Recognizer{parser: parser}
}

// Recognize implements domain.DateRecognizer. Text the parser cannot place
// in time yields zero resolutions, not an error; errors are reserved for
// parser failures.
func (r *Recognizer) Recognize(ctx context.Context, text string, ref time.Time) ([]domain.DateResolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.parser.Parse(text, ref)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", text, err)
	}
	if result == nil {
		return nil, nil
	}

	return []domain.DateResolution{{
		Type:  domain.ResolutionDateTime,
		Value: result.Time.Format(layoutDateTime),
	}}, nil
}

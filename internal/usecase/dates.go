package usecase

import (
	"fmt"
	"time"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// DateLeadTime is the minimum distance in the future a travel date must
// resolve to before it is accepted.
const DateLeadTime = time.Hour

// Layouts for the recognizer's declared resolution types.
const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04:05"
	layoutDateTime = "2006-01-02 15:04:05"
)

// resolveFutureDate picks the first recognizer resolution whose parsed
// instant is at least DateLeadTime ahead of now, and returns it in
// YYYY-MM-DD form. A resolution that fails to parse rejects the whole input;
// no qualifying candidate rejects it as a past date. Both are recoverable.
func resolveFutureDate(resolutions []domain.DateResolution, now time.Time) (string, error) {
	if len(resolutions) == 0 {
		return "", domain.ErrRecognitionFailed
	}

	for _, res := range resolutions {
		candidate, err := parseResolution(res, now)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrRecognitionFailed, err)
		}
		if candidate.Sub(now) >= DateLeadTime {
			return candidate.Format(layoutDate), nil
		}
	}

	return "", domain.ErrPastDate
}

// parseResolution interprets a resolution value according to its declared
// type. Time-only values default to the current day.
func parseResolution(res domain.DateResolution, now time.Time) (time.Time, error) {
	switch res.Type {
	case domain.ResolutionDate:
		return time.ParseInLocation(layoutDate, res.Value, now.Location())

	case domain.ResolutionTime:
		t, err := time.ParseInLocation(layoutTime, res.Value, now.Location())
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil

	case domain.ResolutionDateTime:
		return time.ParseInLocation(layoutDateTime, res.Value, now.Location())
	}

	return time.Time{}, fmt.Errorf("unknown resolution type %q", res.Type)
}

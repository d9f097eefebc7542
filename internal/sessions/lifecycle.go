package sessions

import (
	"math"
	"strings"
	"time"

	"github.com/balkashynov/pokerlog/internal/models"
)

// Finalize derives the ended form of an active session.
// It is a pure function of (session, event, now): the caller's record is not modified.
func Finalize(session models.PokerSession, event models.UpdateSessionRequest, now time.Time) (models.PokerSession, error) {
	if !session.IsActive {
		return session, ErrAlreadyEnded
	}
	if event.CashOut != nil && *event.CashOut < 0 {
		return session, ErrInvalidCashOut
	}

	endTime := now
	if event.EndTime != nil {
		endTime = *event.EndTime
	}

	duration := DurationMinutes(session.StartTime, endTime)
	if duration < 0 {
		return session, ErrNegativeDuration
	}

	ended := session
	ended.EndTime = &endTime
	ended.Duration = &duration
	ended.Profit = nil
	ended.ProfitPerHour = nil
	ended.IsActive = false

	if event.CashOut != nil {
		cashOut := *event.CashOut
		profit := cashOut - session.BuyIn
		ended.CashOut = &cashOut
		ended.Profit = &profit

		if duration > 0 {
			perHour := profit / float64(duration) * 60
			ended.ProfitPerHour = &perHour
		}
	}

	if event.Location != nil && strings.TrimSpace(*event.Location) != "" {
		ended.Location = *event.Location
	}

	return ended, nil
}

// DurationMinutes returns the whole minutes between start and end, rounded half up.
// Not clamped: end before start yields a negative value.
func DurationMinutes(start, end time.Time) int {
	ms := float64(end.Sub(start).Milliseconds())
	return int(roundHalfUp(ms / 60000))
}

// roundHalfUp rounds .5 towards positive infinity
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// round1 rounds to one decimal place
func round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}

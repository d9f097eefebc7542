package sessions

import (
	"errors"
	"testing"
	"time"

	"github.com/balkashynov/pokerlog/internal/models"
)

func activeSession(start time.Time, buyIn float64) models.PokerSession {
	return models.PokerSession{
		ID:          "s1",
		StartTime:   start,
		GameType:    models.GameCash,
		Environment: models.EnvLive,
		Location:    "Bellagio",
		BuyIn:       buyIn,
		IsActive:    true,
	}
}

func floatPtr(v float64) *float64 { return &v }
func timePtr(v time.Time) *time.Time { return &v }
func stringPtr(v string) *string { return &v }

func TestFinalize(t *testing.T) {
	start := at("2024-01-01T10:00:00Z")
	session := activeSession(start, 100)

	ended, err := Finalize(session, models.UpdateSessionRequest{
		EndTime: timePtr(at("2024-01-01T12:30:00Z")),
		CashOut: floatPtr(250),
	}, time.Time{})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if ended.IsActive {
		t.Error("session still active")
	}
	if ended.Duration == nil || *ended.Duration != 150 {
		t.Errorf("Duration = %v, want 150", ended.Duration)
	}
	if ended.Profit == nil || *ended.Profit != 150 {
		t.Errorf("Profit = %v, want 150", ended.Profit)
	}
	if ended.ProfitPerHour == nil || *ended.ProfitPerHour != 60 {
		t.Errorf("ProfitPerHour = %v, want 60", ended.ProfitPerHour)
	}
	if ended.CashOut == nil || *ended.CashOut != 250 {
		t.Errorf("CashOut = %v, want 250", ended.CashOut)
	}
	if ended.EndTime == nil || !ended.EndTime.Equal(at("2024-01-01T12:30:00Z")) {
		t.Errorf("EndTime = %v", ended.EndTime)
	}
	if !session.IsActive || session.EndTime != nil {
		t.Error("Finalize modified its input")
	}
}

func TestFinalizeUsesClock(t *testing.T) {
	session := activeSession(at("2024-01-01T10:00:00Z"), 50)
	now := at("2024-01-01T11:00:29Z")

	ended, err := Finalize(session, models.UpdateSessionRequest{CashOut: floatPtr(20)}, now)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !ended.EndTime.Equal(now) {
		t.Errorf("EndTime = %v, want %v", ended.EndTime, now)
	}
	if *ended.Duration != 60 {
		t.Errorf("Duration = %d, want 60", *ended.Duration)
	}
	if *ended.Profit != -30 || *ended.ProfitPerHour != -30 {
		t.Errorf("Profit = %v, ProfitPerHour = %v, want -30, -30", *ended.Profit, *ended.ProfitPerHour)
	}
}

func TestFinalizeIsDeterministic(t *testing.T) {
	session := activeSession(at("2024-01-01T10:00:00Z"), 100)
	req := models.UpdateSessionRequest{CashOut: floatPtr(175)}
	now := at("2024-01-01T13:17:00Z")

	first, _ := Finalize(session, req, now)
	second, _ := Finalize(session, req, now)

	if *first.Duration != *second.Duration || *first.Profit != *second.Profit || *first.ProfitPerHour != *second.ProfitPerHour {
		t.Errorf("Finalize not deterministic: %+v vs %+v", first, second)
	}
}

func TestFinalizeWithoutCashOut(t *testing.T) {
	session := activeSession(at("2024-01-01T10:00:00Z"), 100)

	ended, err := Finalize(session, models.UpdateSessionRequest{
		EndTime: timePtr(at("2024-01-01T11:00:00Z")),
	}, time.Time{})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if ended.Profit != nil || ended.ProfitPerHour != nil || ended.CashOut != nil {
		t.Errorf("expected profit fields absent, got profit=%v rate=%v cashOut=%v", ended.Profit, ended.ProfitPerHour, ended.CashOut)
	}
	if *ended.Duration != 60 || ended.IsActive {
		t.Errorf("Duration = %d, IsActive = %v", *ended.Duration, ended.IsActive)
	}
}

func TestFinalizeCashOutZero(t *testing.T) {
	session := activeSession(at("2024-01-01T10:00:00Z"), 100)

	ended, err := Finalize(session, models.UpdateSessionRequest{
		EndTime: timePtr(at("2024-01-01T12:00:00Z")),
		CashOut: floatPtr(0),
	}, time.Time{})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if ended.Profit == nil || *ended.Profit != -100 {
		t.Errorf("Profit = %v, want -100", ended.Profit)
	}
	if ended.ProfitPerHour == nil || *ended.ProfitPerHour != -50 {
		t.Errorf("ProfitPerHour = %v, want -50", ended.ProfitPerHour)
	}
}

func TestFinalizeZeroDuration(t *testing.T) {
	start := at("2024-01-01T10:00:00Z")
	session := activeSession(start, 100)

	ended, err := Finalize(session, models.UpdateSessionRequest{
		EndTime: timePtr(start.Add(29 * time.Second)),
		CashOut: floatPtr(120),
	}, time.Time{})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if *ended.Duration != 0 {
		t.Errorf("Duration = %d, want 0", *ended.Duration)
	}
	if ended.Profit == nil || *ended.Profit != 20 {
		t.Errorf("Profit = %v, want 20", ended.Profit)
	}
	if ended.ProfitPerHour != nil {
		t.Errorf("ProfitPerHour = %v, want absent", *ended.ProfitPerHour)
	}
}

func TestFinalizeLocationOverride(t *testing.T) {
	session := activeSession(at("2024-01-01T10:00:00Z"), 100)
	end := timePtr(at("2024-01-01T11:00:00Z"))

	tests := []struct {
		name     string
		location *string
		want     string
	}{
		{"absent keeps existing", nil, "Bellagio"},
		{"blank keeps existing", stringPtr("   "), "Bellagio"},
		{"provided overrides", stringPtr("Aria"), "Aria"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ended, err := Finalize(session, models.UpdateSessionRequest{EndTime: end, Location: tc.location}, time.Time{})
			if err != nil {
				t.Fatalf("Finalize: %v", err)
			}
			if ended.Location != tc.want {
				t.Errorf("Location = %q, want %q", ended.Location, tc.want)
			}
		})
	}
}

func TestFinalizeRejects(t *testing.T) {
	start := at("2024-01-01T10:00:00Z")

	ended := activeSession(start, 100)
	ended.IsActive = false

	tests := []struct {
		name    string
		session models.PokerSession
		req     models.UpdateSessionRequest
		want    error
	}{
		{"already ended", ended, models.UpdateSessionRequest{}, ErrAlreadyEnded},
		{"end before start", activeSession(start, 100), models.UpdateSessionRequest{EndTime: timePtr(start.Add(-time.Hour))}, ErrNegativeDuration},
		{"negative cash out", activeSession(start, 100), models.UpdateSessionRequest{CashOut: floatPtr(-1)}, ErrInvalidCashOut},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Finalize(tc.session, tc.req, start.Add(time.Hour))
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want a validation error", err)
			}
		})
	}
}

func TestDurationMinutesRounding(t *testing.T) {
	start := at("2024-01-01T10:00:00Z")

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{29 * time.Second, 0},
		{30 * time.Second, 1},
		{90 * time.Second, 2},
		{-30 * time.Second, 0},
		{-31 * time.Second, -1},
	}

	for _, tc := range tests {
		if got := DurationMinutes(start, start.Add(tc.elapsed)); got != tc.want {
			t.Errorf("DurationMinutes(%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

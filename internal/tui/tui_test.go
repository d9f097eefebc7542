package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

var testNow = time.Date(2024, 3, 14, 21, 0, 0, 0, time.UTC)

func newTestService() *sessions.Service {
	return sessions.NewService(sessions.NewMemoryStore(),
		sessions.WithLocation(time.UTC),
		sessions.WithClock(func() time.Time { return testNow }))
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// send feeds messages through Update in order and returns the final model
func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestPreviewProfit(t *testing.T) {
	session := models.PokerSession{BuyIn: 200, StartTime: testNow.Add(-2 * time.Hour)}

	tests := []struct {
		name       string
		cashOut    float64
		now        time.Time
		wantProfit float64
		wantRate   *float64
	}{
		{"winning", 350, testNow, 150, floatPtr(75)},
		{"losing", 50, testNow, -150, floatPtr(-75)},
		{"no time played", 350, session.StartTime, 150, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profit, rate := PreviewProfit(session, tt.cashOut, tt.now)
			if profit != tt.wantProfit {
				t.Errorf("profit = %v, want %v", profit, tt.wantProfit)
			}
			switch {
			case tt.wantRate == nil && rate != nil:
				t.Errorf("rate = %v, want nil", *rate)
			case tt.wantRate != nil && (rate == nil || *rate != *tt.wantRate):
				t.Errorf("rate = %v, want %v", rate, *tt.wantRate)
			}
		})
	}
}

func TestClockText(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{2*time.Hour + 5*time.Minute + 3*time.Second, "02:05:03"},
		{-time.Minute, "00:00:00"},
	}
	for _, tt := range tests {
		if got := clockText(tt.d); got != tt.want {
			t.Errorf("clockText(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestStartWizardCreatesSession(t *testing.T) {
	svc := newTestService()
	m := tea.Model(NewStartSessionModel(context.Background(), svc, nil))

	m = send(m,
		typeText("Bellagio"), key(tea.KeyEnter), // location
		typeText("t"), key(tea.KeyEnter),        // tournament
		typeText("o"), key(tea.KeyEnter),        // online
		typeText("$150"), key(tea.KeyEnter),     // buy-in
		key(tea.KeyEnter),                       // start now
		key(tea.KeyEnter),                       // confirm
	)

	wizard := m.(StartSessionModel)
	if wizard.err != nil {
		t.Fatalf("unexpected error: %v", wizard.err)
	}
	if wizard.created == nil {
		t.Fatalf("session not created, step %d, validation %q", wizard.currentStep, wizard.validationErr)
	}

	got := wizard.created
	if got.Location != "Bellagio" || got.GameType != models.GameTournament || got.Environment != models.EnvOnline {
		t.Errorf("created = %+v", got)
	}
	if got.BuyIn != 150 {
		t.Errorf("BuyIn = %v, want 150", got.BuyIn)
	}
	if !got.StartTime.Equal(testNow) || !got.IsActive {
		t.Errorf("StartTime = %v, IsActive = %v", got.StartTime, got.IsActive)
	}
}

func TestStartWizardValidation(t *testing.T) {
	svc := newTestService()

	m := send(NewStartSessionModel(context.Background(), svc, nil), key(tea.KeyEnter))
	wizard := m.(StartSessionModel)
	if wizard.currentStep != StepLocation || wizard.validationErr == "" {
		t.Errorf("blank location accepted: step %d, err %q", wizard.currentStep, wizard.validationErr)
	}

	prefilled := map[string]string{"location": "Aria", "buyin": "0"}
	m = send(NewStartSessionModel(context.Background(), svc, prefilled),
		key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter))
	wizard = m.(StartSessionModel)
	if wizard.currentStep != StepBuyIn || wizard.validationErr == "" {
		t.Errorf("zero buy-in accepted: step %d, err %q", wizard.currentStep, wizard.validationErr)
	}
}

func TestStartWizardPrefilled(t *testing.T) {
	prefilled := map[string]string{
		"location": "PokerStars",
		"buyin":    "25.00",
		"game":     "tournament",
		"env":      "online",
	}
	wizard := NewStartSessionModel(context.Background(), newTestService(), prefilled)

	req, err := wizard.request()
	if err != nil {
		t.Fatalf("request() error: %v", err)
	}
	if req.Location != "PokerStars" || req.BuyIn != 25 {
		t.Errorf("req = %+v", req)
	}
	if req.GameType != models.GameTournament || req.Environment != models.EnvOnline {
		t.Errorf("req enums = %s/%s", req.GameType, req.Environment)
	}
	if !req.StartTime.IsZero() {
		t.Errorf("StartTime = %v, want zero", req.StartTime)
	}
}

func TestTimerCashOutEndsSession(t *testing.T) {
	svc := newTestService()
	session, err := svc.CreateSession(context.Background(), models.CreateSessionRequest{
		StartTime:   testNow.Add(-2 * time.Hour),
		GameType:    models.GameCash,
		Environment: models.EnvLive,
		Location:    "Aria",
		BuyIn:       200,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	m := send(NewTimerModel(context.Background(), svc, session),
		typeText("s"), typeText("abc"), key(tea.KeyEnter))
	timer := m.(TimerModel)
	if timer.ended != nil || timer.validationErr == "" {
		t.Fatalf("invalid cash out accepted")
	}

	m = send(timer, key(tea.KeyEscape))
	if m.(TimerModel).cashingOut {
		t.Fatalf("esc did not close the cash-out prompt")
	}

	m = send(m, typeText("s"), typeText("350"), key(tea.KeyEnter))
	timer = m.(TimerModel)
	if timer.err != nil {
		t.Fatalf("unexpected error: %v", timer.err)
	}
	if timer.ended == nil {
		t.Fatal("session not ended")
	}
	if timer.ended.IsActive || *timer.ended.Duration != 120 || *timer.ended.Profit != 150 || *timer.ended.ProfitPerHour != 75 {
		t.Errorf("ended = %+v", timer.ended)
	}
}

func TestTimerExitKeepsSessionRunning(t *testing.T) {
	session := &models.PokerSession{ID: "abc", StartTime: testNow, IsActive: true}
	m := send(NewTimerModel(context.Background(), newTestService(), session), typeText("q"))

	timer := m.(TimerModel)
	if !timer.exiting || timer.ended != nil {
		t.Errorf("exiting = %v, ended = %v", timer.exiting, timer.ended)
	}
}

func TestSummaryTabs(t *testing.T) {
	m := tea.Model(NewSummaryModel(sessions.BuildReport(nil, time.UTC)))

	view := m.View()
	if !strings.Contains(view, "N/A") {
		t.Errorf("overview of empty report should show N/A:\n%s", view)
	}

	m = send(m, key(tea.KeyRight))
	if got := m.(SummaryModel).tab; got != TabWeekly {
		t.Errorf("tab = %d, want weekly", got)
	}
	if !strings.Contains(m.View(), "No completed sessions yet") {
		t.Errorf("empty weekly tab should say so")
	}

	m = send(m, key(tea.KeyLeft), key(tea.KeyLeft))
	if got := m.(SummaryModel).tab; got != TabLocations {
		t.Errorf("tab = %d, want locations after wrapping", got)
	}

	m = send(m, typeText("3"))
	if got := m.(SummaryModel).tab; got != TabMonthly {
		t.Errorf("tab = %d, want monthly", got)
	}
}

func TestSummaryLocationsZeroHours(t *testing.T) {
	zero := 0
	profit := 40.0
	report := sessions.BuildReport([]models.PokerSession{{
		Location:  "Home Game",
		StartTime: testNow,
		Duration:  &zero,
		Profit:    &profit,
	}}, time.UTC)

	m := send(NewSummaryModel(report), typeText("4"))
	view := m.View()
	if !strings.Contains(view, "Home Game") || !strings.Contains(view, "N/A") {
		t.Errorf("locations view:\n%s", view)
	}
}

func floatPtr(f float64) *float64 { return &f }

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/parser"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

var logoLines = []string{
	"█▀█ █▀█ █▄▀ █▀▀ █▀█ █   █▀█ █▀▀",
	"█▀▀ █▄█ █ █ ██▄ █▀▄ █▄▄ █▄█ █▄█",
}

// RunStartSessionTUI runs the start wizard. It returns nil when the user cancels.
func RunStartSessionTUI(ctx context.Context, svc *sessions.Service, prefilled map[string]string) (*models.PokerSession, error) {
	model := NewStartSessionModel(ctx, svc, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(StartSessionModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model %T", finalModel)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.cancelled || m.created == nil {
		fmt.Println("❌ Session start cancelled.")
		return nil, nil
	}

	fmt.Printf("✅ Started %s %s session at %s - ID: %s\n",
		m.created.Environment.Label(), m.created.GameType.Label(), m.created.Location, m.created.ShortID())
	return m.created, nil
}

// RunTimerTUI runs the live timer for an active session
func RunTimerTUI(ctx context.Context, svc *sessions.Service, session *models.PokerSession) error {
	model := NewTimerModel(ctx, svc, session)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(TimerModel)
	if !ok {
		return fmt.Errorf("unexpected model %T", finalModel)
	}
	if m.err != nil {
		return fmt.Errorf("failed to end session: %w", m.err)
	}

	if m.ended != nil {
		fmt.Printf("⏹️  Ended session %s at %s\n", m.ended.ShortID(), m.ended.Location)
		if m.ended.Duration != nil {
			fmt.Printf("📊 Session duration: %s\n", formatDuration(time.Duration(*m.ended.Duration)*time.Minute))
		}
		if m.ended.Profit != nil {
			fmt.Printf("💰 Profit: %s (%s)\n", parser.FormatMoney(*m.ended.Profit), parser.FormatRate(m.ended.ProfitPerHour))
		}
		return nil
	}

	fmt.Printf("\n💡 Session at %s is still running (%s).\n", session.Location, session.ShortID())
	fmt.Println("   Use 'pokerlog status' to check it or 'pokerlog end --cashout N' to finish.")
	return nil
}

// RunSummaryTUI shows the tabbed summary of a report
func RunSummaryTUI(report sessions.Report) error {
	p := tea.NewProgram(NewSummaryModel(report), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/parser"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

// TimerModel shows the running clock of an active session and ends it on cash out
type TimerModel struct {
	ctx     context.Context
	svc     *sessions.Service
	session *models.PokerSession
	now     func() time.Time

	width  int
	height int

	elapsedTime    time.Duration
	timerAnimation int

	// Cash-out prompt
	cashingOut    bool
	cashOutInput  textinput.Model
	validationErr string

	// Result
	ended   *models.PokerSession
	exiting bool
	err     error
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// NewTimerModel creates a new timer TUI model
func NewTimerModel(ctx context.Context, svc *sessions.Service, session *models.PokerSession) TimerModel {
	input := textinput.New()
	input.Placeholder = "Cash out amount"
	input.CharLimit = 20
	input.Width = 24
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return TimerModel{
		ctx:          ctx,
		svc:          svc,
		session:      session,
		now:          time.Now,
		elapsedTime:  time.Since(session.StartTime),
		cashOutInput: input,
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(timerTick(), animationTick())
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsedTime = m.now().Sub(m.session.StartTime)
		return m, timerTick()

	case animationTickMsg:
		m.timerAnimation = (m.timerAnimation + 1) % 4
		return m, animationTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.cashingOut {
			return m.updateCashOut(msg)
		}
		switch msg.String() {
		case "s", "S":
			m.cashingOut = true
			m.validationErr = ""
			m.cashOutInput.Focus()
			return m, textinput.Blink
		case "ctrl+c", "esc", "q":
			// Exit without ending
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// updateCashOut handles keys while the cash-out prompt is open
func (m TimerModel) updateCashOut(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.exiting = true
		return m, tea.Quit
	case "esc":
		m.cashingOut = false
		m.validationErr = ""
		m.cashOutInput.Blur()
		m.cashOutInput.SetValue("")
		return m, nil
	case "enter":
		return m.endSession()
	}

	var cmd tea.Cmd
	m.cashOutInput, cmd = m.cashOutInput.Update(msg)
	m.validationErr = ""
	return m, cmd
}

// endSession ends the session with the typed cash out
func (m TimerModel) endSession() (tea.Model, tea.Cmd) {
	cashOut, err := parser.ParseAmount(m.cashOutInput.Value())
	if err != nil {
		m.validationErr = "Cash out must be a non-negative number"
		return m, nil
	}

	ended, err := m.svc.EndSession(m.ctx, m.session.ID, models.UpdateSessionRequest{CashOut: &cashOut})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.ended = ended
	return m, tea.Quit
}

// PreviewProfit is what cashing out now would show: profit and the raw hourly
// rate over the elapsed time (nil before any time has passed)
func PreviewProfit(session models.PokerSession, cashOut float64, now time.Time) (float64, *float64) {
	profit := cashOut - session.BuyIn
	hours := now.Sub(session.StartTime).Hours()
	if hours <= 0 {
		return profit, nil
	}
	rate := profit / hours
	return profit, &rate
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderDetailsPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderTimerPanel renders the clock side
func (m TimerModel) renderTimerPanel(width, height int) string {
	centered := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)
	var components []string

	// Animated header
	suits := []string{"♠", "♥", "♦", "♣"}
	suit := suits[m.timerAnimation]
	header := centered.
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render(fmt.Sprintf("%s  AT THE TABLE  %s", suit, suit))
	components = append(components, header)

	location := centered.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render(truncateText(m.session.Location, width-4))
	components = append(components, location)

	var clock []string
	for _, line := range strings.Split(renderBigClock(m.elapsedTime), "\n") {
		clock = append(clock, centered.Render(line))
	}
	components = append(components, strings.Join(clock, "\n"))

	started := centered.
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Render(fmt.Sprintf("Started at %s", m.session.StartTime.Format("15:04:05")))
	components = append(components, started)

	if m.cashingOut {
		components = append(components, m.renderCashOut(width))
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(max(height, 1)).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(strings.Join(components, "\n\n"))
}

// renderCashOut renders the cash-out prompt with a live profit preview
func (m TimerModel) renderCashOut(width int) string {
	var b strings.Builder
	b.WriteString("💵 Cash out: ")
	b.WriteString(m.cashOutInput.View())

	if cashOut, err := parser.ParseAmount(m.cashOutInput.Value()); err == nil {
		profit, rate := PreviewProfit(*m.session, cashOut, m.now())
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(resultColor(profit))).Bold(true)
		b.WriteString("\n")
		b.WriteString(style.Render(fmt.Sprintf("Profit %s  ·  %s", parser.FormatMoney(profit), parser.FormatRate(rate))))
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("❌ " + m.validationErr))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 2).
		Width(min(width-4, 50)).
		Render(b.String())
}

var clockDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// clockText formats elapsed time as HH:MM:SS
func clockText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

// renderBigClock renders elapsed time as block digits
func renderBigClock(d time.Duration) string {
	var lines [5]strings.Builder
	for _, char := range clockText(d) {
		art, ok := clockDigits[char]
		if !ok {
			continue
		}
		for i := range lines {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	rendered := make([]string, len(lines))
	for i := range lines {
		rendered[i] = clockStyle.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}

// renderDetailsPanel renders the session card
func (m TimerModel) renderDetailsPanel(width, height int) string {
	session := m.session
	var b strings.Builder

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width - 8)
	b.WriteString("\n")
	b.WriteString(logoStyle.Render(strings.Join(logoLines, "\n")))
	b.WriteString("\n\n")

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(width - 8)
	b.WriteString(separatorStyle.Render(strings.Repeat("─", min(max(width-12, 0), 40))))
	b.WriteString("\n\n")

	line := lipgloss.NewStyle().Align(lipgloss.Center).Width(width - 8)
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	details := []string{
		fmt.Sprintf("📍 Location: %s", accent.Render(session.Location)),
		fmt.Sprintf("🎲 Game: %s", accent.Render(session.GameType.Label())),
		fmt.Sprintf("🌐 Environment: %s", accent.Render(session.Environment.Label())),
		fmt.Sprintf("💵 Buy-in: %s", accent.Render(parser.FormatMoney(session.BuyIn))),
		fmt.Sprintf("🕒 Started: %s", muted.Render(session.StartTime.Format("Mon Jan 02, 15:04"))),
		fmt.Sprintf("🔖 Session: %s", muted.Render(session.ShortID())),
	}
	for _, d := range details {
		b.WriteString(line.Render(d))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(max(height, 1)).Render(b.String())
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "s cash out & end · esc/q exit (keep playing) · ctrl+c force quit"
	if m.cashingOut {
		helpText = "enter end session · esc back to timer"
	}
	return helpStyle.Render(helpText)
}

// truncateText shortens s to width runes with an ellipsis
func truncateText(s string, width int) string {
	runes := []rune(s)
	if width < 4 || len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

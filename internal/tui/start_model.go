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

// Step represents the current step in the start wizard
type Step int

const (
	StepLocation Step = iota
	StepGame
	StepEnvironment
	StepBuyIn
	StepStartTime
	StepConfirm
)

var stepLabels = []string{"Location", "Game", "Environment", "Buy-in", "Start time", "Start"}

// StartSessionModel is the wizard that collects a new session
type StartSessionModel struct {
	ctx context.Context
	svc *sessions.Service
	now func() time.Time

	currentStep Step
	inputs      map[Step]*textinput.Model
	width       int
	height      int

	gameType    models.GameType
	environment models.Environment

	// State
	created       *models.PokerSession
	cancelled     bool
	err           error
	validationErr string

	shimmer *ShimmerState
}

// NewStartSessionModel creates the wizard, pre-filled from flags or parsing.
// Game and environment default to a live cash game.
func NewStartSessionModel(ctx context.Context, svc *sessions.Service, prefilled map[string]string) StartSessionModel {
	newInput := func(placeholder string, limit int) *textinput.Model {
		in := textinput.New()
		in.Width = 50
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		return &in
	}

	m := StartSessionModel{
		ctx: ctx,
		svc: svc,
		now: time.Now,
		inputs: map[Step]*textinput.Model{
			StepLocation:  newInput("Casino, club or site (required)", 100),
			StepBuyIn:     newInput("Buy-in like 200 or $150.50 (required)", 20),
			StepStartTime: newInput("HH:MM, dd/mm/yyyy HH:MM, 30 minutes ago (Enter for now)", 40),
		},
		gameType:    models.GameCash,
		environment: models.EnvLive,
		shimmer:     NewShimmerState(DefaultShimmerConfig()),
	}

	if location, ok := prefilled["location"]; ok {
		m.inputs[StepLocation].SetValue(location)
	}
	if buyIn, ok := prefilled["buyin"]; ok {
		m.inputs[StepBuyIn].SetValue(buyIn)
	}
	if start, ok := prefilled["start"]; ok {
		m.inputs[StepStartTime].SetValue(start)
	}
	if game, err := models.ParseGameType(prefilled["game"]); err == nil {
		m.gameType = game
	}
	if env, err := models.ParseEnvironment(prefilled["env"]); err == nil {
		m.environment = env
	}

	m.inputs[StepLocation].Focus()
	return m
}

// shimmerTickMsg is sent when the shimmer should advance
type shimmerTickMsg struct{}

// Init initializes the model
func (m StartSessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.Active() {
		cmds = append(cmds, m.shimmerTick())
	}
	return tea.Batch(cmds...)
}

func (m StartSessionModel) shimmerTick() tea.Cmd {
	return tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Update handles messages
func (m StartSessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		m.shimmer.Advance(len(stepLabels[m.currentStep]), time.Now())
		return m, m.shimmerTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := min(max(m.width/2-10, 30), 70)
		for _, in := range m.inputs {
			in.Width = inputWidth
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.handleEnter()
		case "tab", "down":
			return m.nextStep()
		case "shift+tab", "up":
			return m.prevStep()
		case "left", "right", " ":
			if m.currentStep == StepGame || m.currentStep == StepEnvironment {
				m.toggleChoice()
				return m, nil
			}
		case "c", "t", "o", "l":
			if m.currentStep == StepGame || m.currentStep == StepEnvironment {
				m.pickChoice(msg.String())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if in, ok := m.inputs[m.currentStep]; ok {
		*in, cmd = in.Update(msg)
	}
	return m, cmd
}

// toggleChoice flips the selection on a two-option step
func (m *StartSessionModel) toggleChoice() {
	switch m.currentStep {
	case StepGame:
		if m.gameType == models.GameCash {
			m.gameType = models.GameTournament
		} else {
			m.gameType = models.GameCash
		}
	case StepEnvironment:
		if m.environment == models.EnvLive {
			m.environment = models.EnvOnline
		} else {
			m.environment = models.EnvLive
		}
	}
}

// pickChoice selects an option by its first letter
func (m *StartSessionModel) pickChoice(key string) {
	switch {
	case m.currentStep == StepGame && key == "c":
		m.gameType = models.GameCash
	case m.currentStep == StepGame && key == "t":
		m.gameType = models.GameTournament
	case m.currentStep == StepEnvironment && key == "o":
		m.environment = models.EnvOnline
	case m.currentStep == StepEnvironment && key == "l":
		m.environment = models.EnvLive
	}
}

// handleEnter validates the current step and moves on, or creates the session
func (m StartSessionModel) handleEnter() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepLocation:
		if m.location() == "" {
			m.validationErr = "Location is required"
			return m, nil
		}
	case StepBuyIn:
		if _, err := m.buyIn(); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
	case StepStartTime:
		if _, err := m.startTime(); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
	case StepConfirm:
		return m.createSession()
	}
	return m.nextStep()
}

// nextStep moves to the next step
func (m StartSessionModel) nextStep() (tea.Model, tea.Cmd) {
	if m.currentStep == StepLocation && m.location() == "" {
		m.validationErr = "Location is required"
		return m, nil
	}
	if m.currentStep < StepConfirm {
		m.focus(m.currentStep + 1)
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m StartSessionModel) prevStep() (tea.Model, tea.Cmd) {
	if m.currentStep > StepLocation {
		m.focus(m.currentStep - 1)
	}
	return m, textinput.Blink
}

func (m *StartSessionModel) focus(step Step) {
	if in, ok := m.inputs[m.currentStep]; ok {
		in.Blur()
	}
	m.currentStep = step
	if in, ok := m.inputs[step]; ok {
		in.Focus()
	}
	m.shimmer.Reset()
}

func (m StartSessionModel) location() string {
	return strings.TrimSpace(m.inputs[StepLocation].Value())
}

func (m StartSessionModel) buyIn() (float64, error) {
	raw := strings.TrimSpace(m.inputs[StepBuyIn].Value())
	if raw == "" {
		return 0, fmt.Errorf("buy-in is required")
	}
	amount, err := parser.ParseAmount(raw)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("buy-in must be greater than zero")
	}
	return amount, nil
}

// startTime returns the zero time when left blank so the service stamps now
func (m StartSessionModel) startTime() (time.Time, error) {
	raw := strings.TrimSpace(m.inputs[StepStartTime].Value())
	if raw == "" {
		return time.Time{}, nil
	}
	return parser.ParseTime(raw, m.now())
}

// request assembles the create request from the wizard fields
func (m StartSessionModel) request() (models.CreateSessionRequest, error) {
	req := models.CreateSessionRequest{
		GameType:    m.gameType,
		Environment: m.environment,
		Location:    m.location(),
	}
	if req.Location == "" {
		return req, fmt.Errorf("location is required")
	}

	buyIn, err := m.buyIn()
	if err != nil {
		return req, err
	}
	req.BuyIn = buyIn

	start, err := m.startTime()
	if err != nil {
		return req, err
	}
	req.StartTime = start
	return req, nil
}

// createSession stores the session and quits on success
func (m StartSessionModel) createSession() (tea.Model, tea.Cmd) {
	req, err := m.request()
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	session, err := m.svc.CreateSession(m.ctx, req)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.created = session
	return m, tea.Quit
}

// View renders the TUI
func (m StartSessionModel) View() string {
	if m.cancelled || m.created != nil || m.err != nil {
		return ""
	}

	wizard := m.renderWizard()
	if m.width < 80 {
		return wizard
	}

	leftWidth := m.width/2 + 4
	rightWidth := m.width - leftWidth - 4

	leftStyle := lipgloss.NewStyle().
		Width(leftWidth).
		Height(max(m.height-2, 1)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	rightStyle := lipgloss.NewStyle().
		Width(rightWidth).
		Height(max(m.height-2, 1)).
		Padding(1).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(wizard),
		" ",
		rightStyle.Render(m.renderPreview(rightWidth)),
	)
}

// renderWizard renders the step list and the focused field
func (m StartSessionModel) renderWizard() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(titleStyle.Render("🃏 Start Poker Session"))
	b.WriteString("\n\n")

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, label := range stepLabels {
		step := Step(i)
		if step == StepConfirm {
			b.WriteString("\n")
		}
		switch {
		case step == m.currentStep:
			b.WriteString("▶ " + m.shimmer.Render(label) + "\n")
		case step < m.currentStep:
			b.WriteString(doneStyle.Render("✓ "+label) + "\n")
		default:
			b.WriteString(futureStyle.Render("  "+label) + "\n")
		}
	}
	b.WriteString("\n")

	switch m.currentStep {
	case StepLocation:
		b.WriteString("📍 Location\n")
		b.WriteString(m.inputs[StepLocation].View())
	case StepGame:
		b.WriteString("🎲 Game\n")
		b.WriteString(renderChoice([]string{"Cash", "Tournament"}, m.gameType == models.GameTournament))
	case StepEnvironment:
		b.WriteString("🌐 Environment\n")
		b.WriteString(renderChoice([]string{"Live", "Online"}, m.environment == models.EnvOnline))
	case StepBuyIn:
		b.WriteString("💵 Buy-in\n")
		b.WriteString(m.inputs[StepBuyIn].View())
	case StepStartTime:
		b.WriteString("🕒 Start time\n")
		b.WriteString(m.inputs[StepStartTime].View())
	case StepConfirm:
		b.WriteString("Press Enter to start the clock")
	}

	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("❌ " + m.validationErr))
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Enter: Next | Tab/↓: Next | Shift+Tab/↑: Back | ←/→: Choose | Esc: Cancel"))

	return b.String()
}

// renderChoice renders a two-option selector
func renderChoice(options []string, second bool) string {
	selected := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorCardBackground)).
		Background(lipgloss.Color(ColorAccentMain)).
		Padding(0, 2)
	unselected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Padding(0, 2)

	left, right := selected, unselected
	if second {
		left, right = unselected, selected
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left.Render(options[0]), "  ", right.Render(options[1]))
}

// renderPreview renders the session card as it will be stored
func (m StartSessionModel) renderPreview(width int) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	field := func(name, v string) string {
		if v == "" {
			return label.Render(name+": ") + empty.Render("-")
		}
		return label.Render(name+": ") + value.Render(v)
	}

	buyIn := ""
	if amount, err := m.buyIn(); err == nil {
		buyIn = parser.FormatMoney(amount)
	}
	start := "now"
	if t, err := m.startTime(); err != nil {
		start = ""
	} else if !t.IsZero() {
		start = t.Format("Mon 02 Jan 15:04")
	}

	lines := []string{
		field("📍 Location", m.location()),
		field("🎲 Game", m.gameType.Label()),
		field("🌐 Environment", m.environment.Label()),
		field("💵 Buy-in", buyIn),
		field("🕒 Start", start),
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Width(min(width-4, 46))

	return card.Render(strings.Join(lines, "\n"))
}

package tui

// Color constants for pokerlog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F2A1D" // Felt green
	ColorBorder         = "#2F4A3C" // Muted felt

	// Text Colors
	ColorPrimaryText   = "#ECEFE8" // Field labels, user input, titles
	ColorSecondaryText = "#A9B8AE" // Hints and secondary values
	ColorDisabledText  = "#66756B" // Empty or skipped values
	ColorPlaceholder   = "#A9B8AE"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (chip gold)
	ColorAccentMain   = "#D4A017" // Logo, active borders, selected tab
	ColorAccentBright = "#F5C542" // Current step, clock

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Confirmations
	ColorWarning = "#F59E0B"

	// Result Colors
	ColorProfit = "#22C55E"
	ColorLoss   = "#EF4444"
)

// resultColor picks the profit or loss color for an amount
func resultColor(amount float64) string {
	if amount < 0 {
		return ColorLoss
	}
	return ColorProfit
}

package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/pokerlog/internal/models"
)

// ParsedEntry represents a session start parsed from natural language
type ParsedEntry struct {
	Location    string
	BuyIn       *float64
	GameType    models.GameType
	Environment models.Environment
	StartTime   *time.Time
	Errors      []string
}

var (
	quotedLocationRegex = regexp.MustCompile(`@"([^"]+)"`)
	locationRegex       = regexp.MustCompile(`@(\S+)`)
	buyInRegex          = regexp.MustCompile(`(?:^|\s)(\$[\d,]+(?:\.\d{1,2})?|buyin:\S+)`)
	flagRegex           = regexp.MustCompile(`\+([a-zA-Z]+)`)
	startRegex          = regexp.MustCompile(`at:(\S+(?:\s+\d{1,2}:\d{2})?)`)
)

// ParseEntry extracts session fields using the quick-start syntax
// Syntax: "Bellagio $200 +cash +live at:19:30" or "@\"Commerce Casino\" buyin:300 +mtt"
// Words left over after extraction become the location when no @location is given.
func ParseEntry(input string, now time.Time) ParsedEntry {
	result := ParsedEntry{
		Errors: []string{},
	}

	// Extract start time first; its value may contain a colon or a date
	if matches := startRegex.FindStringSubmatch(input); len(matches) > 1 {
		start, err := ParseTime(matches[1], now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid start time '"+matches[1]+"': "+err.Error())
		} else {
			result.StartTime = &start
		}
		input = startRegex.ReplaceAllString(input, "")
	}

	// Extract location (@"Multi word" or @Word)
	if matches := quotedLocationRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Location = strings.TrimSpace(matches[1])
		input = quotedLocationRegex.ReplaceAllString(input, "")
	} else if matches := locationRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Location = matches[1]
		input = locationRegex.ReplaceAllString(input, "")
	}

	// Extract buy-in ($200 or buyin:200)
	if matches := buyInRegex.FindStringSubmatch(input); len(matches) > 1 {
		raw := strings.TrimPrefix(matches[1], "buyin:")
		amount, err := ParseAmount(raw)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.BuyIn = &amount
		}
		input = buyInRegex.ReplaceAllString(input, " ")
	}

	// Extract game type and environment flags (+cash, +tournament, +online, +live)
	for _, matches := range flagRegex.FindAllStringSubmatch(input, -1) {
		word := matches[1]
		if game, err := models.ParseGameType(word); err == nil {
			result.GameType = game
			continue
		}
		if env, err := models.ParseEnvironment(word); err == nil {
			result.Environment = env
			continue
		}
		result.Errors = append(result.Errors, "Unknown flag '+"+word+"'. Use: +cash, +tournament, +online, +live")
	}
	input = flagRegex.ReplaceAllString(input, "")

	// Whatever is left is the location, unless one was given explicitly
	rest := strings.Join(strings.Fields(input), " ")
	if result.Location == "" {
		result.Location = rest
	}

	return result
}

// Missing lists the required fields that were not provided
func (p ParsedEntry) Missing() []string {
	var missing []string
	if p.Location == "" {
		missing = append(missing, "location")
	}
	if p.BuyIn == nil {
		missing = append(missing, "buy-in")
	}
	if p.GameType == "" {
		missing = append(missing, "game type")
	}
	if p.Environment == "" {
		missing = append(missing, "environment")
	}
	return missing
}

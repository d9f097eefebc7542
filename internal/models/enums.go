package models

import (
	"fmt"
	"strings"
)

// GameType is the format of a session
type GameType string

const (
	GameCash       GameType = "CASH"
	GameTournament GameType = "TOURNAMENT"
)

// Environment is where a session was played
type Environment string

const (
	EnvOnline Environment = "ONLINE"
	EnvLive   Environment = "LIVE"
)

// ParseGameType converts user input to a GameType
// Accepts: cash, tournament, tourney, mtt (any case)
func ParseGameType(input string) (GameType, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "cash":
		return GameCash, nil
	case "tournament", "tourney", "mtt":
		return GameTournament, nil
	default:
		return "", fmt.Errorf("invalid game type '%s'. Use: cash or tournament", input)
	}
}

// ParseEnvironment converts user input to an Environment
// Accepts: online, live, irl (any case)
func ParseEnvironment(input string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "online":
		return EnvOnline, nil
	case "live", "irl":
		return EnvLive, nil
	default:
		return "", fmt.Errorf("invalid environment '%s'. Use: online or live", input)
	}
}

// UnmarshalText rejects unknown game type tokens at the JSON boundary
func (g *GameType) UnmarshalText(text []byte) error {
	parsed, err := ParseGameType(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// UnmarshalText rejects unknown environment tokens at the JSON boundary
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Label returns a lower-case display name
func (g GameType) Label() string {
	return strings.ToLower(string(g))
}

// Label returns a lower-case display name
func (e Environment) Label() string {
	return strings.ToLower(string(e))
}

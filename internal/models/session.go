package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PokerSession represents a single sitting at a table (cash game or tournament)
type PokerSession struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	StartTime   time.Time   `gorm:"not null;index" json:"startTime"`
	EndTime     *time.Time  `json:"endTime,omitempty"`
	GameType    GameType    `gorm:"type:varchar(16);not null" json:"gameType"`
	Environment Environment `gorm:"type:varchar(16);not null" json:"environment"`
	Location    string      `gorm:"not null" json:"location"`
	BuyIn       float64     `gorm:"not null" json:"buyIn"`

	// Set once by the end transition; nil means "not known yet", never zero
	CashOut       *float64 `json:"cashOut,omitempty"`
	Duration      *int     `json:"duration,omitempty"` // minutes
	Profit        *float64 `json:"profit,omitempty"`
	ProfitPerHour *float64 `json:"profitPerHour,omitempty"`

	IsActive bool `gorm:"not null;index" json:"isActive"`
}

// BeforeCreate assigns a fresh identifier to new sessions
func (s *PokerSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsCompleted reports whether the session has ended with a known result
func (s PokerSession) IsCompleted() bool {
	return !s.IsActive && s.Profit != nil && s.Duration != nil
}

// ShortID returns the first block of the identifier, used for display
func (s PokerSession) ShortID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// CreateSessionRequest holds the data needed to start a new session
type CreateSessionRequest struct {
	StartTime   time.Time   `json:"startTime"`
	GameType    GameType    `json:"gameType"`
	Environment Environment `json:"environment"`
	Location    string      `json:"location"`
	BuyIn       float64     `json:"buyIn"`
}

// UpdateSessionRequest holds the optional fields of an end or edit event
type UpdateSessionRequest struct {
	EndTime  *time.Time `json:"endTime,omitempty"`
	CashOut  *float64   `json:"cashOut,omitempty"`
	Location *string    `json:"location,omitempty"`
}

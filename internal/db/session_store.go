package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

// SessionStore persists poker sessions with gorm
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore creates a store on top of an open connection
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create inserts a new session
func (s *SessionStore) Create(ctx context.Context, session *models.PokerSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

// Get returns the session with the given id
func (s *SessionStore) Get(ctx context.Context, id string) (*models.PokerSession, error) {
	return first(s.db.WithContext(ctx), id)
}

// List returns all sessions, most recent first
func (s *SessionStore) List(ctx context.Context) ([]models.PokerSession, error) {
	var list []models.PokerSession
	err := s.db.WithContext(ctx).
		Order("start_time DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListActive returns sessions that have not been ended, most recent first
func (s *SessionStore) ListActive(ctx context.Context) ([]models.PokerSession, error) {
	var list []models.PokerSession
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_time DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update overwrites every column of an existing session
func (s *SessionStore) Update(ctx context.Context, session *models.PokerSession) error {
	return save(s.db.WithContext(ctx), session)
}

// Delete removes a session and returns the deleted row
func (s *SessionStore) Delete(ctx context.Context, id string) (*models.PokerSession, error) {
	var deleted *models.PokerSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := first(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.PokerSession{}, "id = ?", id).Error; err != nil {
			return err
		}
		deleted = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// End reads, finalizes and writes a session inside one transaction so no
// reader sees a half-ended row
func (s *SessionStore) End(ctx context.Context, id string, finalize func(models.PokerSession) (models.PokerSession, error)) (*models.PokerSession, error) {
	var ended models.PokerSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := first(tx, id)
		if err != nil {
			return err
		}
		ended, err = finalize(*current)
		if err != nil {
			return err
		}
		return save(tx, &ended)
	})
	if err != nil {
		return nil, err
	}
	return &ended, nil
}

func first(tx *gorm.DB, id string) (*models.PokerSession, error) {
	var session models.PokerSession
	err := tx.First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, sessions.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// save updates all columns, including nil optionals, and reports missing rows
func save(tx *gorm.DB, session *models.PokerSession) error {
	result := tx.Model(&models.PokerSession{}).
		Where("id = ?", session.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(session)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return sessions.ErrNotFound
	}
	return nil
}

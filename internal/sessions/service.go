package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/pokerlog/internal/models"
)

// Store is the persistence collaborator the service reads and writes through.
// Implementations must return ErrNotFound for unknown identifiers.
type Store interface {
	Create(ctx context.Context, session *models.PokerSession) error
	Get(ctx context.Context, id string) (*models.PokerSession, error)
	List(ctx context.Context) ([]models.PokerSession, error)
	ListActive(ctx context.Context) ([]models.PokerSession, error)
	Update(ctx context.Context, session *models.PokerSession) error
	Delete(ctx context.Context, id string) (*models.PokerSession, error)
}

// Ender is implemented by stores that can apply the end transition atomically.
// The service falls back to Get + Update when a store does not provide it.
type Ender interface {
	End(ctx context.Context, id string, finalize func(models.PokerSession) (models.PokerSession, error)) (*models.PokerSession, error)
}

// Service implements the session use cases on top of a Store
type Service struct {
	store    Store
	location *time.Location
	now      func() time.Time
}

// Option customises a Service
type Option func(*Service)

// WithLocation sets the timezone used for week and month buckets
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.location = loc
	}
}

// WithClock overrides the wall clock used when no end time is given
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a session service
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the timezone used for bucketing
func (s *Service) Location() *time.Location {
	return s.location
}

// CreateSession starts a new active session.
// Only one session may be active at a time.
func (s *Service) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*models.PokerSession, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return nil, ErrLocationRequired
	}
	if req.BuyIn <= 0 {
		return nil, ErrInvalidBuyIn
	}
	gameType, err := models.ParseGameType(string(req.GameType))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	environment, err := models.ParseEnvironment(string(req.Environment))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	active, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, storeErr("list active", err)
	}
	if len(active) > 0 {
		return nil, fmt.Errorf("%w (started %s at %s)", ErrSessionActive,
			active[0].StartTime.In(s.location).Format("15:04"), active[0].Location)
	}

	startTime := req.StartTime
	if startTime.IsZero() {
		startTime = s.now()
	}

	session := &models.PokerSession{
		StartTime:   startTime,
		GameType:    gameType,
		Environment: environment,
		Location:    location,
		BuyIn:       req.BuyIn,
		IsActive:    true,
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, storeErr("create", err)
	}
	return session, nil
}

// GetSession returns a session by identifier
func (s *Service) GetSession(ctx context.Context, id string) (*models.PokerSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storeErr("get", err)
	}
	return session, nil
}

// ListSessions returns all sessions, most recent first
func (s *Service) ListSessions(ctx context.Context) ([]models.PokerSession, error) {
	sessions, err := s.store.List(ctx)
	if err != nil {
		return nil, storeErr("list", err)
	}
	return sessions, nil
}

// ActiveSessions returns every session that has not been ended
func (s *Service) ActiveSessions(ctx context.Context) ([]models.PokerSession, error) {
	sessions, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, storeErr("list active", err)
	}
	return sessions, nil
}

// EndSession applies the end transition to the session with the given id
func (s *Service) EndSession(ctx context.Context, id string, req models.UpdateSessionRequest) (*models.PokerSession, error) {
	now := s.now()
	finalize := func(session models.PokerSession) (models.PokerSession, error) {
		return Finalize(session, req, now)
	}

	if ender, ok := s.store.(Ender); ok {
		ended, err := ender.End(ctx, id, finalize)
		if err != nil {
			return nil, storeErr("end", err)
		}
		return ended, nil
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storeErr("get", err)
	}
	ended, err := finalize(*current)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, &ended); err != nil {
		return nil, storeErr("update", err)
	}
	return &ended, nil
}

// UpdateSession patches end time, cash out or location without recomputing
// the derived fields
func (s *Service) UpdateSession(ctx context.Context, id string, req models.UpdateSessionRequest) (*models.PokerSession, error) {
	if req.CashOut != nil && *req.CashOut < 0 {
		return nil, ErrInvalidCashOut
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storeErr("get", err)
	}

	// An active session only gets these through EndSession
	if session.IsActive && (req.CashOut != nil || req.EndTime != nil) {
		return nil, ErrSessionNotEnded
	}

	if req.EndTime != nil {
		endTime := *req.EndTime
		session.EndTime = &endTime
	}
	if req.CashOut != nil {
		cashOut := *req.CashOut
		session.CashOut = &cashOut
	}
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		if location == "" {
			return nil, ErrLocationRequired
		}
		session.Location = *req.Location
	}

	if err := s.store.Update(ctx, session); err != nil {
		return nil, storeErr("update", err)
	}
	return session, nil
}

// DeleteSession removes a session and returns what was deleted
func (s *Service) DeleteSession(ctx context.Context, id string) (*models.PokerSession, error) {
	session, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, storeErr("delete", err)
	}
	return session, nil
}

// Report loads every session and computes all aggregate views
func (s *Service) Report(ctx context.Context) (Report, error) {
	sessions, err := s.ListSessions(ctx)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(sessions, s.location), nil
}

package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/balkashynov/pokerlog/internal/models"
)

// failingStore returns the same error from every operation
type failingStore struct {
	err error
}

func (f failingStore) Create(context.Context, *models.PokerSession) error { return f.err }
func (f failingStore) Get(context.Context, string) (*models.PokerSession, error) {
	return nil, f.err
}
func (f failingStore) List(context.Context) ([]models.PokerSession, error) { return nil, f.err }
func (f failingStore) ListActive(context.Context) ([]models.PokerSession, error) { return nil, f.err }
func (f failingStore) Update(context.Context, *models.PokerSession) error { return f.err }
func (f failingStore) Delete(context.Context, string) (*models.PokerSession, error) {
	return nil, f.err
}

func newTestService(now time.Time) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	svc := NewService(store, WithLocation(time.UTC), WithClock(func() time.Time { return now }))
	return svc, store
}

func validCreate(start time.Time) models.CreateSessionRequest {
	return models.CreateSessionRequest{
		StartTime:   start,
		GameType:    models.GameCash,
		Environment: models.EnvLive,
		Location:    "Bellagio",
		BuyIn:       100,
	}
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	start := at("2024-01-01T10:00:00Z")
	svc, _ := newTestService(at("2024-01-01T12:30:00Z"))

	created, err := svc.CreateSession(ctx, validCreate(start))
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.ID == "" || !created.IsActive {
		t.Fatalf("created session = %+v, want active with id", created)
	}

	active, err := svc.ActiveSessions(ctx)
	if err != nil || len(active) != 1 {
		t.Fatalf("ActiveSessions = %v, %v, want one", active, err)
	}

	ended, err := svc.EndSession(ctx, created.ID, models.UpdateSessionRequest{CashOut: floatPtr(250)})
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if *ended.Duration != 150 || *ended.Profit != 150 || *ended.ProfitPerHour != 60 {
		t.Errorf("ended = duration %d profit %v rate %v", *ended.Duration, *ended.Profit, *ended.ProfitPerHour)
	}

	stored, err := svc.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if stored.IsActive || stored.Profit == nil {
		t.Errorf("stored session not finalized: %+v", stored)
	}

	if _, err := svc.EndSession(ctx, created.ID, models.UpdateSessionRequest{CashOut: floatPtr(300)}); !errors.Is(err, ErrAlreadyEnded) {
		t.Errorf("second EndSession err = %v, want ErrAlreadyEnded", err)
	}

	report, err := svc.Report(ctx)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if report.Stats.TotalProfit != 150 || report.Stats.BestLocation != "Bellagio" {
		t.Errorf("report stats = %+v", report.Stats)
	}

	deleted, err := svc.DeleteSession(ctx, created.ID)
	if err != nil || deleted.ID != created.ID {
		t.Fatalf("DeleteSession = %v, %v", deleted, err)
	}
	if _, err := svc.GetSession(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSession after delete err = %v, want ErrNotFound", err)
	}
}

func TestServiceEndSessionNotFound(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.EndSession(context.Background(), "missing", models.UpdateSessionRequest{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestServiceEndSessionNegativeDurationNotStored(t *testing.T) {
	ctx := context.Background()
	start := at("2024-01-01T10:00:00Z")
	svc, store := newTestService(start)

	created, err := svc.CreateSession(ctx, validCreate(start))
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	_, err = svc.EndSession(ctx, created.ID, models.UpdateSessionRequest{EndTime: timePtr(start.Add(-time.Hour))})
	if !errors.Is(err, ErrNegativeDuration) {
		t.Fatalf("err = %v, want ErrNegativeDuration", err)
	}

	stored, _ := store.Get(ctx, created.ID)
	if !stored.IsActive || stored.Duration != nil {
		t.Errorf("stored session changed: %+v", stored)
	}
}

func TestServiceStoreFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewService(failingStore{err: boom})
	ctx := context.Background()

	_, err := svc.EndSession(ctx, "any", models.UpdateSessionRequest{})

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("err = %v, want *StoreError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v does not unwrap to the store error", err)
	}

	if _, err := svc.ListSessions(ctx); !errors.Is(err, boom) {
		t.Errorf("ListSessions err = %v, want wrapped store error", err)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	start := at("2024-01-01T10:00:00Z")

	tests := []struct {
		name   string
		mutate func(*models.CreateSessionRequest)
		want   error
	}{
		{"missing location", func(r *models.CreateSessionRequest) { r.Location = "  " }, ErrLocationRequired},
		{"zero buy-in", func(r *models.CreateSessionRequest) { r.BuyIn = 0 }, ErrInvalidBuyIn},
		{"negative buy-in", func(r *models.CreateSessionRequest) { r.BuyIn = -5 }, ErrInvalidBuyIn},
		{"bad game type", func(r *models.CreateSessionRequest) { r.GameType = "SNG" }, ErrValidation},
		{"bad environment", func(r *models.CreateSessionRequest) { r.Environment = "MOON" }, ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(start)
			req := validCreate(start)
			tc.mutate(&req)

			if _, err := svc.CreateSession(context.Background(), req); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestServiceSingleActiveSession(t *testing.T) {
	ctx := context.Background()
	start := at("2024-01-01T10:00:00Z")
	svc, _ := newTestService(start)

	if _, err := svc.CreateSession(ctx, validCreate(start)); err != nil {
		t.Fatalf("first CreateSession: %v", err)
	}
	if _, err := svc.CreateSession(ctx, validCreate(start.Add(time.Hour))); !errors.Is(err, ErrSessionActive) {
		t.Errorf("second CreateSession err = %v, want ErrSessionActive", err)
	}
}

func TestServiceCreateDefaultsStartTime(t *testing.T) {
	now := at("2024-05-05T20:00:00Z")
	svc, _ := newTestService(now)

	req := validCreate(time.Time{})
	created, err := svc.CreateSession(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if !created.StartTime.Equal(now) {
		t.Errorf("StartTime = %v, want %v", created.StartTime, now)
	}
}

func TestServiceUpdateDoesNotRecompute(t *testing.T) {
	ctx := context.Background()
	start := at("2024-01-01T10:00:00Z")
	svc, _ := newTestService(start.Add(2 * time.Hour))

	created, _ := svc.CreateSession(ctx, validCreate(start))
	ended, err := svc.EndSession(ctx, created.ID, models.UpdateSessionRequest{CashOut: floatPtr(200)})
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	updated, err := svc.UpdateSession(ctx, created.ID, models.UpdateSessionRequest{
		CashOut:  floatPtr(400),
		Location: stringPtr("Aria"),
	})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}

	if *updated.CashOut != 400 || updated.Location != "Aria" {
		t.Errorf("patch not applied: %+v", updated)
	}
	if *updated.Profit != *ended.Profit {
		t.Errorf("Profit recomputed: %v, want %v", *updated.Profit, *ended.Profit)
	}

	if _, err := svc.UpdateSession(ctx, "missing", models.UpdateSessionRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSession(missing) err = %v, want ErrNotFound", err)
	}
}

func TestServiceUpdateActiveSession(t *testing.T) {
	ctx := context.Background()
	start := at("2024-01-01T10:00:00Z")
	svc, store := newTestService(start.Add(time.Hour))

	created, err := svc.CreateSession(ctx, validCreate(start))
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	endTime := start.Add(30 * time.Minute)
	tests := []struct {
		name string
		req  models.UpdateSessionRequest
	}{
		{"cash out", models.UpdateSessionRequest{CashOut: floatPtr(300)}},
		{"end time", models.UpdateSessionRequest{EndTime: &endTime}},
		{"both with location", models.UpdateSessionRequest{CashOut: floatPtr(300), EndTime: &endTime, Location: stringPtr("Aria")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.UpdateSession(ctx, created.ID, tt.req); !errors.Is(err, ErrSessionNotEnded) {
				t.Fatalf("err = %v, want ErrSessionNotEnded", err)
			}
			if !errors.Is(ErrSessionNotEnded, ErrValidation) {
				t.Error("ErrSessionNotEnded should be a validation error")
			}
		})
	}

	stored, _ := store.Get(ctx, created.ID)
	if stored.CashOut != nil || stored.EndTime != nil || stored.Location != "Bellagio" {
		t.Errorf("active session was modified: %+v", stored)
	}

	// Location alone is fine while playing
	moved, err := svc.UpdateSession(ctx, created.ID, models.UpdateSessionRequest{Location: stringPtr("Aria")})
	if err != nil {
		t.Fatalf("UpdateSession(location): %v", err)
	}
	if moved.Location != "Aria" || !moved.IsActive {
		t.Errorf("moved = %+v", moved)
	}

	// Ending without a cash out leaves profit and cash out both absent
	ended, err := svc.EndSession(ctx, created.ID, models.UpdateSessionRequest{})
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if ended.CashOut != nil || ended.Profit != nil {
		t.Errorf("cashOut = %v, profit = %v, want both nil", ended.CashOut, ended.Profit)
	}
}

func TestServiceCreateNormalizesEnums(t *testing.T) {
	ctx := context.Background()
	start := at("2024-01-01T10:00:00Z")
	svc, store := newTestService(start)

	req := validCreate(start)
	req.GameType = models.GameType("mtt")
	req.Environment = models.Environment("irl")

	created, err := svc.CreateSession(ctx, req)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	stored, _ := store.Get(ctx, created.ID)
	for _, s := range []*models.PokerSession{created, stored} {
		if s.GameType != models.GameTournament || s.Environment != models.EnvLive {
			t.Errorf("enums = %s/%s, want TOURNAMENT/LIVE", s.GameType, s.Environment)
		}
	}
}

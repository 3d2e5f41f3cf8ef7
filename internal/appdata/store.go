package appdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
)

const defaultSyncDelay = 1500 * time.Millisecond

type Option func(*Store)

// WithClock replaces time.Now for id and date generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSyncDelay sets the simulated platform sync latency.
func WithSyncDelay(d time.Duration) Option {
	return func(s *Store) { s.syncDelay = d }
}

// Store holds the record of the current identity. It is uninitialized
// until Load succeeds; mutations before that are silently ignored.
type Store struct {
	kv        kvstore.Store
	platforms *catalog.Registry
	now       func() time.Time
	syncDelay time.Duration

	mu       sync.Mutex
	identity string
	record   *AppRecord

	syncing atomic.Int32
}

func NewStore(kv kvstore.Store, platforms *catalog.Registry, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		platforms: platforms,
		now:       time.Now,
		syncDelay: defaultSyncDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach reloads the store whenever h switches identity.
func (s *Store) Attach(h *identity.Holder) {
	h.OnChange(s.handleIdentityChange)
}

func (s *Store) handleIdentityChange(ctx context.Context, id string) {
	s.Unload()
	if id == "" {
		return
	}
	if err := s.Load(ctx, id); err != nil {
		slog.Error("failed to load app data", "identity", id, "error", err)
	}
}

// Load reads the record for id. An absent record is replaced by defaults
// and written back immediately. A corrupt one is logged and replaced by
// defaults in memory only, leaving the stored bytes for inspection.
func (s *Store) Load(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return identity.ErrEmptyIdentity
	}

	raw, ok, err := s.kv.Get(ctx, kvstore.DataKey(id))
	if err != nil {
		return fmt.Errorf("read app data: %w", err)
	}

	rec := Default()
	persist := !ok
	if ok {
		decoded, legacy, err := Decode([]byte(raw))
		switch {
		case err != nil:
			slog.Warn("stored app data unreadable, using defaults", "identity", id, "error", err)
		default:
			rec = decoded
			persist = legacy
		}
	}
	rec.OnboardingData = s.loadOnboarding(ctx, id)

	if persist {
		if err := s.write(ctx, id, rec); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.identity = id
	s.record = &rec
	s.mu.Unlock()

	slog.Info("app data loaded", "identity", id, "connected", len(rec.ConnectedPlatforms))
	return nil
}

func (s *Store) loadOnboarding(ctx context.Context, id string) *Onboarding {
	raw, ok, err := s.kv.Get(ctx, kvstore.OnboardingKey(id))
	if err != nil {
		slog.Warn("failed to read onboarding", "identity", id, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var ob Onboarding
	if err := json.Unmarshal([]byte(raw), &ob); err != nil {
		slog.Warn("ignoring malformed onboarding", "identity", id, "error", err)
		return nil
	}
	return &ob
}

// Unload drops the in-memory record; the store becomes uninitialized.
func (s *Store) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = ""
	s.record = nil
}

func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record != nil
}

func (s *Store) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Snapshot returns a copy of the current record. ok is false while the
// store is not ready.
func (s *Store) Snapshot() (AppRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return AppRecord{}, false
	}
	return clone(*s.record), true
}

func (s *Store) write(ctx context.Context, id string, rec AppRecord) error {
	data, err := Encode(rec)
	if err != nil {
		return fmt.Errorf("encode app data: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.DataKey(id), string(data)); err != nil {
		return fmt.Errorf("persist app data: %w", err)
	}
	return nil
}

type reducer func(rec AppRecord, now time.Time) (AppRecord, bool)

// mutate applies fn to a copy of the record, persists the result and only
// then publishes it. If expect is set the mutation is dropped when the
// identity changed in the meantime.
func (s *Store) mutate(ctx context.Context, op, expect string, fn reducer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		slog.Debug("mutation ignored, app data not ready", "op", op)
		return nil
	}
	if expect != "" && expect != s.identity {
		slog.Debug("mutation dropped after identity change", "op", op)
		return nil
	}

	next, changed := fn(clone(*s.record), s.now())
	if !changed {
		return nil
	}
	if err := s.write(ctx, s.identity, next); err != nil {
		return err
	}
	s.record = &next
	return nil
}

func always(fn func(AppRecord, time.Time) AppRecord) reducer {
	return func(rec AppRecord, now time.Time) (AppRecord, bool) {
		return fn(rec, now), true
	}
}

// ConnectPlatform marks the named platform connected, recording its fixed
// performance and, for store platforms, seeding sample income.
func (s *Store) ConnectPlatform(ctx context.Context, name string) error {
	p, ok := s.platforms.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
	return s.mutate(ctx, "connect_platform", "", func(rec AppRecord, now time.Time) (AppRecord, bool) {
		return connectPlatform(rec, p, now)
	})
}

// DisconnectPlatform removes the named platform. Names missing from the
// catalog are still removed from older records, as social platforms.
func (s *Store) DisconnectPlatform(ctx context.Context, name string) error {
	p, ok := s.platforms.Get(name)
	if !ok {
		p = catalog.Platform{Name: name, Kind: catalog.KindSocial}
	}
	return s.mutate(ctx, "disconnect_platform", "", func(rec AppRecord, _ time.Time) (AppRecord, bool) {
		return disconnectPlatform(rec, p)
	})
}

func (s *Store) AddIncome(ctx context.Context, in TransactionInput) error {
	if err := validateTransaction(in); err != nil {
		return err
	}
	return s.mutate(ctx, "add_income", "", always(func(rec AppRecord, now time.Time) AppRecord {
		return addIncome(rec, in, now)
	}))
}

func (s *Store) AddExpense(ctx context.Context, in TransactionInput) error {
	if err := validateTransaction(in); err != nil {
		return err
	}
	return s.mutate(ctx, "add_expense", "", always(func(rec AppRecord, now time.Time) AppRecord {
		return addExpense(rec, in, now)
	}))
}

func (s *Store) AddTemplate(ctx context.Context, in TemplateInput) error {
	if !in.Type.Valid() {
		return ErrInvalidTemplateType
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return ErrEmptyTemplate
	}
	return s.mutate(ctx, "add_template", "", always(func(rec AppRecord, now time.Time) AppRecord {
		return addTemplate(rec, in, now)
	}))
}

// UpdateCalendarNote sets the note for a day of month. A blank note
// removes the day.
func (s *Store) UpdateCalendarNote(ctx context.Context, day int, note string) error {
	if day < 1 || day > 31 {
		return ErrInvalidDay
	}
	return s.mutate(ctx, "update_calendar_note", "", always(func(rec AppRecord, _ time.Time) AppRecord {
		return updateCalendarNote(rec, day, note)
	}))
}

func (s *Store) AddNoteForToday(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyNote
	}
	return s.mutate(ctx, "add_note_for_today", "", always(func(rec AppRecord, now time.Time) AppRecord {
		return addNoteForToday(rec, text, now)
	}))
}

func (s *Store) AddWin(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyWin
	}
	return s.mutate(ctx, "add_win", "", always(func(rec AppRecord, now time.Time) AppRecord {
		return addWin(rec, text, now)
	}))
}

// SaveDailyLog stores log under its date, replacing any earlier entry.
func (s *Store) SaveDailyLog(ctx context.Context, log DailyLog) error {
	if err := validateDailyLog(log); err != nil {
		return err
	}
	return s.mutate(ctx, "save_daily_log", "", always(func(rec AppRecord, _ time.Time) AppRecord {
		return saveDailyLog(rec, log)
	}))
}

// SyncData simulates a platform refresh: after the sync delay the follower
// count moves up by 0.1k. Overlapping calls are allowed and each applies
// its own increment. A sync that outlives its identity is discarded.
func (s *Store) SyncData(ctx context.Context) error {
	id := s.Identity()
	if id == "" {
		return nil
	}

	s.syncing.Add(1)
	defer s.syncing.Add(-1)

	timer := time.NewTimer(s.syncDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	return s.mutate(ctx, "sync_data", id, always(func(rec AppRecord, _ time.Time) AppRecord {
		return syncData(rec)
	}))
}

// IsSyncing reports whether any SyncData call is waiting.
func (s *Store) IsSyncing() bool {
	return s.syncing.Load() > 0
}

// SaveOnboarding writes the signup answers for id. When id is the loaded
// identity the in-memory record picks them up too.
func (s *Store) SaveOnboarding(ctx context.Context, id string, ob Onboarding) error {
	if strings.TrimSpace(id) == "" {
		return identity.ErrEmptyIdentity
	}
	data, err := json.Marshal(ob)
	if err != nil {
		return fmt.Errorf("encode onboarding: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.OnboardingKey(id), string(data)); err != nil {
		return fmt.Errorf("persist onboarding: %w", err)
	}
	return s.mutate(ctx, "save_onboarding", id, always(func(rec AppRecord, _ time.Time) AppRecord {
		rec.OnboardingData = &ob
		return rec
	}))
}

// Onboarding returns the answers of the loaded identity, if any.
func (s *Store) Onboarding() (Onboarding, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil || s.record.OnboardingData == nil {
		return Onboarding{}, false
	}
	return *s.record.OnboardingData, true
}

package guild

import (
	"context"
	"errors"
	"time"

	"leetbot/internal/storage"

	"go.uber.org/zap"
)

var (
	ErrAlreadyConfigured = errors.New("guild: already configured")
	ErrInvalidTimezone   = errors.New("guild: unknown timezone")
	ErrInvalidCount      = errors.New("guild: leaderboard count must be positive")
)

type Manager struct {
	store  *storage.Store
	logger *zap.Logger
}

func NewManager(store *storage.Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// GetOrCreate fetches the guild record, inserting a bare one on first
// contact. A concurrent insert losing the unique-constraint race falls back
// to a fetch, so the call is idempotent.
func (m *Manager) GetOrCreate(ctx context.Context, guildID string) (storage.Guild, error) {
	existing, err := m.store.FindGuild(ctx, guildID)
	if err != nil {
		return storage.Guild{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	created, err := m.store.InsertGuild(ctx, guildID)
	if err == nil {
		m.logger.Info("guild registered", zap.String("guild_id", guildID))
		return created, nil
	}
	if !errors.Is(err, storage.ErrDuplicate) {
		return storage.Guild{}, err
	}

	existing, err = m.store.FindGuild(ctx, guildID)
	if err != nil {
		return storage.Guild{}, err
	}
	if existing == nil {
		return storage.Guild{}, errors.New("guild: vanished after duplicate insert")
	}
	return *existing, nil
}

// Setup returns nil when the guild has not been configured yet.
func (m *Manager) Setup(ctx context.Context, guildID string) (*storage.LeetSetup, error) {
	return m.store.FindSetup(ctx, guildID)
}

// Configure applies the one-time leet setup. The timezone is validated
// against the IANA database before anything is written; an existing setup is
// reported as ErrAlreadyConfigured, never overwritten.
func (m *Manager) Configure(ctx context.Context, setup storage.LeetSetup) error {
	// LoadLocation resolves "" to UTC and "Local" to the host zone without
	// error; neither is an IANA name and the setup is immutable, so both are
	// rejected instead of silently defaulted.
	if setup.Timezone == "" || setup.Timezone == "Local" {
		return ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(setup.Timezone); err != nil {
		return ErrInvalidTimezone
	}
	if setup.LeaderboardCount <= 0 {
		return ErrInvalidCount
	}

	if _, err := m.GetOrCreate(ctx, setup.GuildID); err != nil {
		return err
	}

	if err := m.store.InsertSetup(ctx, setup); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return ErrAlreadyConfigured
		}
		return err
	}
	m.logger.Info("guild configured",
		zap.String("guild_id", setup.GuildID),
		zap.String("timezone", setup.Timezone),
		zap.String("channel", setup.LeaderboardChannel))
	return nil
}

package scheduler

import (
	"context"
	"time"

	"leetbot/internal/leaderboard"
	"leetbot/internal/storage"
	"leetbot/internal/window"

	"go.uber.org/zap"
)

// Sender delivers one leaderboard message to a channel.
type Sender interface {
	SendMessage(channelID, content string) error
}

type Scheduler struct {
	store  *storage.Store
	boards *leaderboard.Service
	sender Sender
	logger *zap.Logger
	done   chan struct{}
}

func New(store *storage.Store, boards *leaderboard.Service, sender Sender, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		boards: boards,
		sender: sender,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start runs the minute loop in its own goroutine. The ticker re-arms on a
// fixed interval, so a slow tick never delays the next one.
func (s *Scheduler) Start() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				s.Tick(context.Background(), now)
			case <-s.done:
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.done)
}

// Tick evaluates every configured guild against its local clock and publishes
// the monthly leaderboard for each guild at its publish moment. A failure for
// one guild is logged and never stops the rest; the window comes once a day,
// so a missed publish is accepted rather than retried.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	setups, err := s.store.ListSetups(ctx)
	if err != nil {
		s.logger.Error("list setups failed", zap.Error(err))
		return
	}

	for _, setup := range setups {
		s.publishIfDue(ctx, setup, now)
	}
}

func (s *Scheduler) publishIfDue(ctx context.Context, setup storage.LeetSetup, now time.Time) {
	loc, err := time.LoadLocation(setup.Timezone)
	if err != nil {
		s.logger.Warn("stored timezone no longer loads",
			zap.String("guild_id", setup.GuildID),
			zap.String("timezone", setup.Timezone),
			zap.Error(err))
		return
	}

	clock := window.Localize(now, loc)
	if !window.IsPublish(clock) {
		return
	}

	entries, err := s.boards.Monthly(ctx, setup.GuildID, clock.Month, clock.Year)
	if err != nil {
		s.logger.Error("leaderboard aggregation failed",
			zap.String("guild_id", setup.GuildID),
			zap.Error(err))
		return
	}

	content := leaderboard.Render(entries, setup.LeaderboardCount)
	if err := s.sender.SendMessage(setup.LeaderboardChannel, content); err != nil {
		s.logger.Warn("leaderboard publish failed",
			zap.String("guild_id", setup.GuildID),
			zap.String("channel", setup.LeaderboardChannel),
			zap.Error(err))
		return
	}
	s.logger.Info("leaderboard published",
		zap.String("guild_id", setup.GuildID),
		zap.Int("entries", len(entries)))
}

package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leetbot/internal/storage"
	"leetbot/internal/window"

	"go.uber.org/zap"
)

type Outcome int

const (
	// OutOfWindow is the common case: the message carried the trigger word
	// outside 13:37 local. No storage is touched on this path.
	OutOfWindow Outcome = iota
	// Accepted is the first qualifying message of the user's local day.
	Accepted
	// Repeat is a qualifying message for a day already recorded.
	Repeat
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Repeat:
		return "repeat"
	default:
		return "out_of_window"
	}
}

// LeetStore is the slice of storage the recorder needs. *storage.Store
// satisfies it.
type LeetStore interface {
	FindLeet(ctx context.Context, guildID, userID string, day, month, year int) (*storage.Leet, error)
	InsertLeet(ctx context.Context, leet storage.Leet) error
}

type Recorder struct {
	store  LeetStore
	logger *zap.Logger
}

func New(store LeetStore, logger *zap.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// Record classifies one trigger message against the guild's local clock and,
// for a first-of-day hit, durably writes the achievement before returning.
// Callers must not emit an accept reaction unless Record returned Accepted,
// so a crash between write and reaction under-reacts but never double-counts.
func (r *Recorder) Record(ctx context.Context, setup storage.LeetSetup, userID string, sentAt time.Time) (Outcome, error) {
	loc, err := time.LoadLocation(setup.Timezone)
	if err != nil {
		return OutOfWindow, fmt.Errorf("load timezone %q: %w", setup.Timezone, err)
	}

	clock := window.Localize(sentAt, loc)
	if !window.IsAchievement(clock) {
		return OutOfWindow, nil
	}

	existing, err := r.store.FindLeet(ctx, setup.GuildID, userID, clock.Day, clock.Month, clock.Year)
	if err != nil {
		return OutOfWindow, err
	}
	if existing != nil {
		return Repeat, nil
	}

	err = r.store.InsertLeet(ctx, storage.Leet{
		GuildID: setup.GuildID,
		UserID:  userID,
		Day:     clock.Day,
		Month:   clock.Month,
		Year:    clock.Year,
	})
	if err != nil {
		// Lost an insert race with another event for the same tuple.
		if errors.Is(err, storage.ErrDuplicate) {
			return Repeat, nil
		}
		return OutOfWindow, err
	}

	r.logger.Info("leet recorded",
		zap.String("guild_id", setup.GuildID),
		zap.String("user_id", userID),
		zap.Int("day", clock.Day),
		zap.Int("month", clock.Month),
		zap.Int("year", clock.Year))
	return Accepted, nil
}

// Reaction maps an outcome to the guild's configured emoji.
func Reaction(setup storage.LeetSetup, outcome Outcome) string {
	switch outcome {
	case Accepted:
		return setup.AcceptEmoji
	case Repeat:
		return setup.RepeatEmoji
	default:
		return setup.DenyEmoji
	}
}

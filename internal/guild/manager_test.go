package guild

import (
	"context"
	"errors"
	"testing"

	"leetbot/internal/storage"

	"go.uber.org/zap"
)

func newTestManager(t *testing.T) (*Manager, *storage.Store) {
	t.Helper()
	store, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(store.Close)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewManager(store, zap.NewNop()), store
}

func validSetup(guildID string) storage.LeetSetup {
	return storage.LeetSetup{
		GuildID:            guildID,
		Timezone:           "Europe/Oslo",
		LeaderboardChannel: "c1",
		LeaderboardCount:   10,
		AcceptEmoji:        "✅",
		DenyEmoji:          "❌",
		RepeatEmoji:        "🔁",
	}
}

func TestGetOrCreateIdempotent(t *testing.T) {
	manager, _ := newTestManager(t)
	ctx := context.Background()

	first, err := manager.GetOrCreate(ctx, "g1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	second, err := manager.GetOrCreate(ctx, "g1")
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if first.GuildID != "g1" || second.GuildID != "g1" {
		t.Fatalf("unexpected guilds %+v %+v", first, second)
	}
}

func TestConfigureTwice(t *testing.T) {
	manager, store := newTestManager(t)
	ctx := context.Background()

	if err := manager.Configure(ctx, validSetup("g1")); err != nil {
		t.Fatalf("configure: %v", err)
	}

	second := validSetup("g1")
	second.Timezone = "America/New_York"
	second.LeaderboardChannel = "c2"
	if err := manager.Configure(ctx, second); !errors.Is(err, ErrAlreadyConfigured) {
		t.Fatalf("expected ErrAlreadyConfigured, got %v", err)
	}

	setup, err := store.FindSetup(ctx, "g1")
	if err != nil {
		t.Fatalf("find setup: %v", err)
	}
	if setup.Timezone != "Europe/Oslo" || setup.LeaderboardChannel != "c1" {
		t.Fatalf("first configuration changed: %+v", setup)
	}
}

func TestConfigureInvalidTimezone(t *testing.T) {
	manager, store := newTestManager(t)
	ctx := context.Background()

	setup := validSetup("g1")
	setup.Timezone = "Not/AZone"
	if err := manager.Configure(ctx, setup); !errors.Is(err, ErrInvalidTimezone) {
		t.Fatalf("expected ErrInvalidTimezone, got %v", err)
	}

	// Failed validation must not leave a partial write.
	got, err := store.FindSetup(ctx, "g1")
	if err != nil {
		t.Fatalf("find setup: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no setup, got %+v", got)
	}
}

func TestConfigureRejectsNonIANATimezones(t *testing.T) {
	manager, store := newTestManager(t)
	ctx := context.Background()

	// "" and "Local" load without error but are stand-ins for UTC and the
	// host zone, not IANA names; they must not end up in an immutable setup.
	for _, timezone := range []string{"", "Local"} {
		setup := validSetup("g1")
		setup.Timezone = timezone
		if err := manager.Configure(ctx, setup); !errors.Is(err, ErrInvalidTimezone) {
			t.Fatalf("timezone %q: expected ErrInvalidTimezone, got %v", timezone, err)
		}
	}

	got, err := store.FindSetup(ctx, "g1")
	if err != nil {
		t.Fatalf("find setup: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no setup, got %+v", got)
	}
}

func TestConfigureInvalidCount(t *testing.T) {
	manager, _ := newTestManager(t)

	setup := validSetup("g1")
	setup.LeaderboardCount = 0
	if err := manager.Configure(context.Background(), setup); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestSetupAbsent(t *testing.T) {
	manager, _ := newTestManager(t)

	setup, err := manager.Setup(context.Background(), "g1")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if setup != nil {
		t.Fatalf("expected nil setup, got %+v", setup)
	}
}

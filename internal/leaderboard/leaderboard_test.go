package leaderboard

import (
	"context"
	"testing"

	"leetbot/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	store, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(store.Close)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(store), store
}

func TestMonthlyOrdering(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	if _, err := store.InsertGuild(ctx, "g1"); err != nil {
		t.Fatalf("insert guild: %v", err)
	}
	seeds := []storage.Leet{
		{GuildID: "g1", UserID: "u1", Day: 1, Month: 4, Year: 2024},
		{GuildID: "g1", UserID: "u2", Day: 1, Month: 4, Year: 2024},
		{GuildID: "g1", UserID: "u2", Day: 2, Month: 4, Year: 2024},
		{GuildID: "g1", UserID: "u2", Day: 3, Month: 4, Year: 2024},
		{GuildID: "g1", UserID: "u3", Day: 3, Month: 4, Year: 2024},
	}
	for _, leet := range seeds {
		if err := store.InsertLeet(ctx, leet); err != nil {
			t.Fatalf("insert leet: %v", err)
		}
	}

	entries, err := service.Monthly(ctx, "g1", 4, 2024)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserID != "u2" || entries[0].Count != 3 {
		t.Fatalf("expected u2 first with 3, got %+v", entries[0])
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Count > entries[i-1].Count {
			t.Fatalf("entries not descending: %+v", entries)
		}
	}
}

func TestMonthlyDistinctUsers(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	if _, err := store.InsertGuild(ctx, "g1"); err != nil {
		t.Fatalf("insert guild: %v", err)
	}
	users := []string{"u1", "u2", "u3", "u4"}
	for _, user := range users {
		err := store.InsertLeet(ctx, storage.Leet{GuildID: "g1", UserID: user, Day: 9, Month: 4, Year: 2024})
		if err != nil {
			t.Fatalf("insert leet: %v", err)
		}
	}

	entries, err := service.Monthly(ctx, "g1", 4, 2024)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(entries) != len(users) {
		t.Fatalf("expected %d entries, got %d", len(users), len(entries))
	}
	total := 0
	for _, entry := range entries {
		total += entry.Count
	}
	if total != len(users) {
		t.Fatalf("expected total %d, got %d", len(users), total)
	}
}

func TestMonthlyEmpty(t *testing.T) {
	service, _ := newTestService(t)

	entries, err := service.Monthly(context.Background(), "g1", 4, 2024)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestRender(t *testing.T) {
	entries := []Entry{
		{UserID: "u2", Count: 3},
		{UserID: "u1", Count: 1},
	}
	got := Render(entries, 10)
	want := "- 1: <@u2>, 3 leets\n- 2: <@u1>, 1 leets"
	if got != want {
		t.Fatalf("unexpected render:\n%s", got)
	}
}

func TestRenderLimit(t *testing.T) {
	entries := []Entry{
		{UserID: "u1", Count: 3},
		{UserID: "u2", Count: 2},
		{UserID: "u3", Count: 1},
	}
	got := Render(entries, 2)
	want := "- 1: <@u1>, 3 leets\n- 2: <@u2>, 2 leets"
	if got != want {
		t.Fatalf("unexpected render:\n%s", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, 10); got != "No leets recorded this month." {
		t.Fatalf("unexpected empty render %q", got)
	}
}

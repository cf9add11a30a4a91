package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"leetbot/internal/storage"
)

const emptyMessage = "No leets recorded this month."

type Entry struct {
	UserID string
	Count  int
}

type Service struct {
	store *storage.Store
}

func New(store *storage.Store) *Service {
	return &Service{store: store}
}

// Monthly returns the guild's ranked counts for one calendar month, most
// leets first. A guild with no records yields an empty slice, not an error.
func (s *Service) Monthly(ctx context.Context, guildID string, month, year int) ([]Entry, error) {
	counts, err := s.store.CountLeetsByUser(ctx, guildID, month, year)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(counts))
	for _, count := range counts {
		entries = append(entries, Entry{UserID: count.UserID, Count: count.Count})
	}
	return entries, nil
}

// Render formats at most limit entries as leaderboard lines, 1-based rank.
func Render(entries []Entry, limit int) string {
	if len(entries) == 0 {
		return emptyMessage
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %d: <@%s>, %d leets", i+1, entry.UserID, entry.Count)
	}
	return b.String()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
)

type Leet struct {
	GuildID string
	UserID  string
	Day     int
	Month   int
	Year    int
}

type UserCount struct {
	UserID string
	Count  int
}

// InsertLeet records one achievement. The unique constraint on
// (guild, user, day, month, year) is the exactly-once-per-day guarantee;
// a concurrent duplicate surfaces as ErrDuplicate.
func (s *Store) InsertLeet(ctx context.Context, leet Leet) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leets (guild_id, user_id, day, month, year)
		VALUES (?, ?, ?, ?, ?)
	`, leet.GuildID, leet.UserID, leet.Day, leet.Month, leet.Year)
	return wrapInsertError(err)
}

func (s *Store) FindLeet(ctx context.Context, guildID, userID string, day, month, year int) (*Leet, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT guild_id, user_id, day, month, year
		FROM leets
		WHERE guild_id = ? AND user_id = ? AND day = ? AND month = ? AND year = ?
	`, guildID, userID, day, month, year)

	var leet Leet
	err := row.Scan(&leet.GuildID, &leet.UserID, &leet.Day, &leet.Month, &leet.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &leet, nil
}

// CountLeetsByUser returns per-user totals for one guild month, most leets
// first. Ties order by user id so the ranking is deterministic.
func (s *Store) CountLeetsByUser(ctx context.Context, guildID string, month, year int) ([]UserCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, COUNT(*) AS total
		FROM leets
		WHERE guild_id = ? AND month = ? AND year = ?
		GROUP BY user_id
		ORDER BY total DESC, user_id ASC
	`, guildID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []UserCount
	for rows.Next() {
		var count UserCount
		if err := rows.Scan(&count.UserID, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}

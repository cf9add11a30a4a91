package storage

import (
	"context"
	"database/sql"
	"errors"
)

type Guild struct {
	GuildID string
}

// LeetSetup is a guild's one-time leet configuration. Emoji fields hold either
// a unicode emoji or a resolved custom-emoji reference ("name:id").
type LeetSetup struct {
	GuildID            string
	Timezone           string
	LeaderboardChannel string
	LeaderboardCount   int
	AcceptEmoji        string
	DenyEmoji          string
	RepeatEmoji        string
}

func (s *Store) InsertGuild(ctx context.Context, guildID string) (Guild, error) {
	_, err := s.db.ExecContext(ctx, `INSERT INTO servers (guild_id) VALUES (?)`, guildID)
	if err != nil {
		return Guild{}, wrapInsertError(err)
	}
	return Guild{GuildID: guildID}, nil
}

func (s *Store) FindGuild(ctx context.Context, guildID string) (*Guild, error) {
	row := s.db.QueryRowContext(ctx, `SELECT guild_id FROM servers WHERE guild_id = ?`, guildID)

	var guild Guild
	if err := row.Scan(&guild.GuildID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &guild, nil
}

func (s *Store) InsertSetup(ctx context.Context, setup LeetSetup) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leet_setups (
			guild_id, timezone, leaderboard_channel, leaderboard_count,
			accept_emoji, deny_emoji, repeat_emoji
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		setup.GuildID,
		setup.Timezone,
		setup.LeaderboardChannel,
		setup.LeaderboardCount,
		setup.AcceptEmoji,
		setup.DenyEmoji,
		setup.RepeatEmoji,
	)
	return wrapInsertError(err)
}

// FindSetup returns nil when the guild has no configuration yet.
func (s *Store) FindSetup(ctx context.Context, guildID string) (*LeetSetup, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT guild_id, timezone, leaderboard_channel, leaderboard_count,
		accept_emoji, deny_emoji, repeat_emoji
		FROM leet_setups WHERE guild_id = ?
	`, guildID)

	var setup LeetSetup
	err := row.Scan(
		&setup.GuildID,
		&setup.Timezone,
		&setup.LeaderboardChannel,
		&setup.LeaderboardCount,
		&setup.AcceptEmoji,
		&setup.DenyEmoji,
		&setup.RepeatEmoji,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &setup, nil
}

func (s *Store) ListSetups(ctx context.Context) ([]LeetSetup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT guild_id, timezone, leaderboard_channel, leaderboard_count,
		accept_emoji, deny_emoji, repeat_emoji
		FROM leet_setups ORDER BY guild_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var setups []LeetSetup
	for rows.Next() {
		var setup LeetSetup
		if err := rows.Scan(
			&setup.GuildID,
			&setup.Timezone,
			&setup.LeaderboardChannel,
			&setup.LeaderboardCount,
			&setup.AcceptEmoji,
			&setup.DenyEmoji,
			&setup.RepeatEmoji,
		); err != nil {
			return nil, err
		}
		setups = append(setups, setup)
	}
	return setups, rows.Err()
}

package bot

import (
	"context"
	"errors"
	"fmt"

	"leetbot/internal/guild"
	"leetbot/internal/storage"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) onInteractionCreate(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := interaction.ApplicationCommandData()
	if data.Name != "leet-setup" {
		return
	}
	b.handleSetupCommand(context.Background(), session, interaction, data.Options)
}

func (b *Bot) handleSetupCommand(ctx context.Context, session *discordgo.Session, interaction *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	if interaction.GuildID == "" {
		b.respond(session, interaction, "leet-setup only works inside a server.", true)
		return
	}

	var (
		acceptEmoji, denyEmoji, repeatEmoji string
		timezone, channelID                 string
		count                               = defaultLeaderboardCount
	)
	for _, option := range options {
		switch option.Name {
		case "accept_emoji":
			acceptEmoji = option.StringValue()
		case "deny_emoji":
			denyEmoji = option.StringValue()
		case "repeat_emoji":
			repeatEmoji = option.StringValue()
		case "timezone":
			timezone = option.StringValue()
		case "channel":
			if channel := option.ChannelValue(session); channel != nil {
				channelID = channel.ID
			}
		case "count":
			count = int(option.IntValue())
		}
	}
	if channelID == "" {
		b.respond(session, interaction, "Could not resolve the leaderboard channel.", true)
		return
	}

	acceptResolved, ok := b.resolveEmoji(interaction.GuildID, acceptEmoji)
	if !ok {
		b.respond(session, interaction, "Invalid accept emoji given. Must be a default emoji, or from this server.", true)
		return
	}
	denyResolved, ok := b.resolveEmoji(interaction.GuildID, denyEmoji)
	if !ok {
		b.respond(session, interaction, "Invalid deny emoji given. Must be a default emoji, or from this server.", true)
		return
	}
	repeatResolved, ok := b.resolveEmoji(interaction.GuildID, repeatEmoji)
	if !ok {
		b.respond(session, interaction, "Invalid repeat emoji given. Must be a default emoji, or from this server.", true)
		return
	}

	err := b.guilds.Configure(ctx, storage.LeetSetup{
		GuildID:            interaction.GuildID,
		Timezone:           timezone,
		LeaderboardChannel: channelID,
		LeaderboardCount:   count,
		AcceptEmoji:        acceptResolved,
		DenyEmoji:          denyResolved,
		RepeatEmoji:        repeatResolved,
	})
	switch {
	case errors.Is(err, guild.ErrAlreadyConfigured):
		b.respond(session, interaction, "This server is already set up for leeting.", true)
	case errors.Is(err, guild.ErrInvalidTimezone):
		b.respond(session, interaction, fmt.Sprintf("Unknown time zone %q. Use an IANA name like Europe/Oslo.", timezone), true)
	case errors.Is(err, guild.ErrInvalidCount):
		b.respond(session, interaction, "Leaderboard count must be at least 1.", true)
	case err != nil:
		b.logger.Error("setup failed", zap.String("guild_id", interaction.GuildID), zap.Error(err))
		b.respond(session, interaction, "Setup failed, please try again later.", true)
	default:
		b.respond(session, interaction, fmt.Sprintf(
			"Leeting enabled. Using emojis %s, %s, and %s; leaderboard goes to <#%s> (%s).",
			displayEmoji(acceptResolved), displayEmoji(denyResolved), displayEmoji(repeatResolved),
			channelID, timezone), false)
	}
}

func (b *Bot) respond(session *discordgo.Session, interaction *discordgo.InteractionCreate, content string, ephemeral bool) {
	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	_ = session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   flags,
		},
	})
}

package bot

import "github.com/bwmarrin/discordgo"

const defaultLeaderboardCount = 10

func (b *Bot) registerCommands() error {
	minCount := float64(1)
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "leet-setup",
			Description: "Configure leet tracking for this server (one-time)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "accept_emoji",
					Description: "Emoji for an accepted leet",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "deny_emoji",
					Description: "Emoji for an invalid leet",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "repeat_emoji",
					Description: "Emoji for a repeated leet",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "timezone",
					Description: "Time zone to use, e.g. Europe/Oslo",
					Required:    true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "Channel to post the leeterboard to",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
					Required:     true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "How many leaderboard entries to show",
					MinValue:    &minCount,
					Required:    false,
				},
			},
		},
	}

	appID := b.session.State.User.ID
	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return err
		}
	}
	return nil
}

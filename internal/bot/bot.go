package bot

import (
	"context"

	"leetbot/internal/config"
	"leetbot/internal/guild"
	"leetbot/internal/recorder"
	"leetbot/internal/trigger"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type Bot struct {
	cfg      config.Config
	logger   *zap.Logger
	guilds   *guild.Manager
	recorder *recorder.Recorder
	session  *discordgo.Session
}

func New(cfg config.Config, logger *zap.Logger, guilds *guild.Manager, rec *recorder.Recorder) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	return &Bot{
		cfg:      cfg,
		logger:   logger,
		guilds:   guilds,
		recorder: rec,
		session:  session,
	}, nil
}

func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onMessageCreate)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return err
	}

	return b.registerCommands()
}

func (b *Bot) Close(ctx context.Context) {
	_ = ctx
	if b.session != nil {
		_ = b.session.Close()
	}
}

// SendMessage satisfies scheduler.Sender.
func (b *Bot) SendMessage(channelID, content string) error {
	_, err := b.session.ChannelMessageSend(channelID, content)
	return err
}

func (b *Bot) onReady(session *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info("discord ready", zap.String("user", session.State.User.Username))
}

func (b *Bot) onMessageCreate(session *discordgo.Session, msg *discordgo.MessageCreate) {
	if msg.Author == nil || msg.Author.Bot {
		return
	}
	if msg.GuildID == "" {
		return
	}
	if !trigger.Matches(msg.Content) {
		return
	}

	ctx := context.Background()
	if _, err := b.guilds.GetOrCreate(ctx, msg.GuildID); err != nil {
		b.logger.Warn("guild lookup failed", zap.String("guild_id", msg.GuildID), zap.Error(err))
		return
	}

	setup, err := b.guilds.Setup(ctx, msg.GuildID)
	if err != nil {
		b.logger.Warn("setup lookup failed", zap.String("guild_id", msg.GuildID), zap.Error(err))
		return
	}
	if setup == nil {
		return
	}

	outcome, err := b.recorder.Record(ctx, *setup, msg.Author.ID, msg.Timestamp)
	if err != nil {
		// No reaction on error: an unrecorded leet must never look accepted.
		b.logger.Warn("leet handling failed",
			zap.String("guild_id", msg.GuildID),
			zap.String("user_id", msg.Author.ID),
			zap.Error(err))
		return
	}

	emoji := recorder.Reaction(*setup, outcome)
	if err := session.MessageReactionAdd(msg.ChannelID, msg.ID, emoji); err != nil {
		b.logger.Warn("reaction failed",
			zap.String("guild_id", msg.GuildID),
			zap.String("outcome", outcome.String()),
			zap.Error(err))
	}
}

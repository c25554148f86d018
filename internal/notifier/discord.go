package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"slotcal/internal/models"
)

// DiscordSink mirrors booking notifications to a Discord channel
type DiscordSink struct {
	session   *discordgo.Session
	channelID string
}

// DiscordConfig holds the configuration for the Discord sink
type DiscordConfig struct {
	// Discord bot token
	Token string

	// ChannelID is the channel notifications are posted to
	ChannelID string
}

// NewDiscord creates a new Discord notification sink
func NewDiscord(cfg *DiscordConfig) (*DiscordSink, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordSink{
		session:   session,
		channelID: cfg.ChannelID,
	}, nil
}

// Notify posts the notification to the configured channel
func (d *DiscordSink) Notify(ctx context.Context, notification *models.Notification) error {
	if notification == nil {
		return errors.New("notification cannot be nil")
	}

	content := fmt.Sprintf("[%s] %s", notification.Level, notification.Message)
	if _, err := d.session.ChannelMessageSend(d.channelID, content); err != nil {
		return fmt.Errorf("failed to send Discord message: %w", err)
	}

	return nil
}

// Close releases the underlying Discord session
func (d *DiscordSink) Close() error {
	return d.session.Close()
}

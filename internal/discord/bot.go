// Package discord adapts the roster bot to a discordgo session.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/preston-bernstein/team-roster-bot/internal/commands"
	"github.com/preston-bernstein/team-roster-bot/internal/interactions"
	"github.com/preston-bernstein/team-roster-bot/internal/logging"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

// Session is the part of *discordgo.Session the bot calls.
type Session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, cmds []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Interaction kinds used for logs and metrics.
const (
	KindCommand   = "command"
	KindComponent = "component"
	KindModal     = "modal"
	KindMessage   = "message"
)

// NewSession opens a discordgo session configured with the intents the bot needs.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return s, nil
}

// Bot routes gateway events to the command handler and interaction router.
type Bot struct {
	session   Session
	router    *interactions.Router
	commands  *commands.Handler
	logger    *slog.Logger
	metrics   *metrics.Recorder
	removers  []func()
	connected atomic.Bool
}

// NewBot wires a session to the router and command handler.
func NewBot(session Session, router *interactions.Router, handler *commands.Handler, logger *slog.Logger, recorder *metrics.Recorder) *Bot {
	return &Bot{session: session, router: router, commands: handler, logger: logger, metrics: recorder}
}

// Start registers handlers and opens the gateway connection.
func (b *Bot) Start() error {
	b.removers = append(b.removers,
		b.session.AddHandler(b.onReady),
		b.session.AddHandler(b.onInteraction),
		b.session.AddHandler(b.onMessage),
	)
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	b.connected.Store(true)
	return nil
}

// Connected reports whether the gateway session is open.
func (b *Bot) Connected() bool {
	return b.connected.Load()
}

// Run starts the bot and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return b.Stop()
}

// Stop removes handlers and closes the gateway connection.
func (b *Bot) Stop() error {
	for _, remove := range b.removers {
		if remove != nil {
			remove()
		}
	}
	b.removers = nil
	b.connected.Store(false)
	return b.session.Close()
}

// RegisterCommands overwrites the application's slash commands, scoped to
// guildID when it is set.
func (b *Bot) RegisterCommands(appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
	if appID == "" {
		return nil, errors.New("register commands: application id is required")
	}
	created, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, Definitions())
	if err != nil {
		return nil, fmt.Errorf("register commands: %w", err)
	}
	scope := "global"
	if guildID != "" {
		scope = "guild"
	}
	logging.Info(b.logger, "registered slash commands", "count", len(created), "scope", scope, logging.FieldGuild, guildID)
	return created, nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	user := ""
	if r.User != nil {
		user = r.User.String()
	}
	logging.Info(b.logger, "discord session ready", "user", user, "guilds", len(r.Guilds))
}

func (b *Bot) onInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.HandleInteraction(context.Background(), i)
}

func (b *Bot) onMessage(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.HandleMessage(context.Background(), m)
}

// HandleMessage answers text-prefix commands in the message's channel.
func (b *Bot) HandleMessage(ctx context.Context, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	ctx, logger := b.scope(ctx, KindMessage, logging.FieldChannel, m.ChannelID, logging.FieldUser, m.Author.ID)
	start := time.Now()

	reply, ok := b.commands.Text(ctx, m.Content)
	if !ok {
		return
	}
	_, err := b.session.ChannelMessageSend(m.ChannelID, reply)
	b.metrics.RecordInteraction(KindMessage, time.Since(start), err)
	if err != nil {
		logging.Error(logger, "send command reply failed", err)
	}
}

// HandleInteraction answers slash commands, components and modal submits.
func (b *Bot) HandleInteraction(ctx context.Context, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil {
		return
	}
	kind := interactionKind(i.Type)
	if kind == "" {
		return
	}
	ctx, logger := b.scope(ctx, kind,
		logging.FieldGuild, i.GuildID,
		logging.FieldChannel, i.ChannelID,
		logging.FieldUser, userID(i.Interaction),
	)
	start := time.Now()

	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			logging.Error(logger, "interaction panicked", err)
			b.respondEphemeral(logger, i.Interaction, views.Error(views.GenericError))
		}
		b.metrics.RecordInteraction(kind, time.Since(start), err)
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = b.handleCommand(ctx, i.Interaction)
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		err = b.handleEvent(ctx, logger, i.Interaction, data.CustomID, func(ev *screens.Event) {
			ev.Values = data.Values
		})
	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		err = b.handleEvent(ctx, logger, i.Interaction, data.CustomID, func(ev *screens.Event) {
			ev.Fields = modalFields(data.Components)
		})
	}
	if err != nil {
		logging.Error(logger, "interaction failed", err)
	}
}

func (b *Bot) scope(ctx context.Context, kind string, attrs ...any) (context.Context, *slog.Logger) {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(append([]any{logging.FieldInteraction, uuid.NewString(), logging.FieldKind, kind}, attrs...)...)
	return logging.WithLogger(ctx, logger), logger
}

func (b *Bot) handleCommand(ctx context.Context, i *discordgo.Interaction) error {
	data := i.ApplicationCommandData()
	cmd := commands.Slash{Name: data.Name, Options: map[string]string{}}
	opts := data.Options
	if len(opts) > 0 && opts[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		cmd.Sub = opts[0].Name
		opts = opts[0].Options
	}
	for _, o := range opts {
		if o.Type == discordgo.ApplicationCommandOptionString {
			cmd.Options[o.Name] = o.StringValue()
		}
	}

	v := b.commands.Slash(ctx, cmd)
	return b.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: message(v),
	})
}

func (b *Bot) handleEvent(ctx context.Context, logger *slog.Logger, i *discordgo.Interaction, customID string, fill func(*screens.Event)) error {
	logger = logger.With(logging.FieldCustomID, customID)
	ctx = logging.WithLogger(ctx, logger)

	ev, err := screens.Parse(customID)
	if err != nil {
		b.respondEphemeral(logger, i, views.Failure(customID))
		return err
	}
	fill(&ev)
	if i.Message != nil {
		ev.MessageID = i.Message.ID
	}

	resp, handleErr := b.router.Handle(ctx, ev)
	if err := b.deliver(logger, i, resp); err != nil {
		return errors.Join(handleErr, err)
	}
	return handleErr
}

// deliver sends a router response through the session.
func (b *Bot) deliver(logger *slog.Logger, i *discordgo.Interaction, resp interactions.Response) error {
	switch resp.Kind {
	case interactions.Update:
		err := b.session.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: message(resp.View),
		})
		if err != nil || resp.Notice == "" {
			return err
		}
		_, err = b.session.FollowupMessageCreate(i, false, &discordgo.WebhookParams{
			Embeds: embeds(views.Canceled(resp.Notice)),
			Flags:  discordgo.MessageFlagsEphemeral,
		})
		return err
	case interactions.Close:
		if err := b.session.InteractionRespond(i, &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate}); err != nil {
			return err
		}
		if i.Message == nil {
			return nil
		}
		return b.session.ChannelMessageDelete(i.ChannelID, i.Message.ID)
	case interactions.ShowModal:
		return b.session.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: modal(resp.Modal),
		})
	case interactions.Patch:
		target := resp.Target
		if target == "" && i.Message != nil {
			target = i.Message.ID
		}
		// The change is already saved, so a stale target still gets the confirmation.
		var editErr error
		if target != "" {
			embedList, rows := embeds(resp.View), components(resp.View)
			if _, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
				ID:         target,
				Channel:    i.ChannelID,
				Embeds:     &embedList,
				Components: &rows,
			}); err != nil {
				editErr = fmt.Errorf("patch message %s: %w", target, err)
				logging.Error(logger, "edit original message failed", editErr)
			}
		}
		err := b.session.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: ephemeralMessage(views.Success(resp.Notice)),
		})
		return errors.Join(editErr, err)
	}
	return b.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: ephemeralMessage(resp.View),
	})
}

func (b *Bot) respondEphemeral(logger *slog.Logger, i *discordgo.Interaction, v views.View) {
	err := b.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: ephemeralMessage(v),
	})
	if err != nil {
		logging.Error(logger, "ephemeral reply failed", err)
	}
}

func interactionKind(t discordgo.InteractionType) string {
	switch t {
	case discordgo.InteractionApplicationCommand:
		return KindCommand
	case discordgo.InteractionMessageComponent:
		return KindComponent
	case discordgo.InteractionModalSubmit:
		return KindModal
	}
	return ""
}

func userID(i *discordgo.Interaction) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	}
	return ""
}

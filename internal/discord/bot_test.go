package discord

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appplayers "github.com/preston-bernstein/team-roster-bot/internal/app/players"
	appteams "github.com/preston-bernstein/team-roster-bot/internal/app/teams"
	"github.com/preston-bernstein/team-roster-bot/internal/commands"
	"github.com/preston-bernstein/team-roster-bot/internal/interactions"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
	"github.com/preston-bernstein/team-roster-bot/internal/testutil"
)

type fakeSession struct {
	mu        sync.Mutex
	handlers  int
	opened    bool
	closed    bool
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
	sent      []string
	edits     []*discordgo.MessageEdit
	deleted   []string
	overwrite []*discordgo.ApplicationCommand
	guildID   string
	respErr   error
	editErr   error
}

var _ Session = (*fakeSession)(nil)

func (f *fakeSession) AddHandler(interface{}) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers++
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.handlers--
	}
}

func (f *fakeSession) Open() error  { f.opened = true; return nil }
func (f *fakeSession) Close() error { f.closed = true; return nil }

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return f.respErr
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessageSend(_ string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, content)
	return &discordgo.Message{Content: content}, nil
}

func (f *fakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, m)
	if f.editErr != nil {
		return nil, f.editErr
	}
	return &discordgo.Message{ID: m.ID}, nil
}

func (f *fakeSession) ChannelMessageDelete(_, messageID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(_ string, guildID string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.guildID = guildID
	f.overwrite = cmds
	return cmds, nil
}

func newBot(t *testing.T) (*Bot, *fakeSession, *testutil.MemStore, *metrics.Recorder) {
	t.Helper()
	store := testutil.NewMemStore(testutil.SampleDocument())
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	players := appplayers.NewService(store, &testutil.FixedRand{})
	teams := appteams.NewService(store)
	router := interactions.NewRouter(store, players, teams, logger)
	handler := commands.NewHandler(store, players, teams, logger, rec)
	session := &fakeSession{}
	return NewBot(session, router, handler, logger, rec), session, store, rec
}

func component(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionMessageComponent,
		ChannelID: "c1",
		Message:   &discordgo.Message{ID: "m1"},
		Data:      discordgo.MessageComponentInteractionData{CustomID: customID, Values: values},
	}}
}

func TestHandleSlashCommandWithSubcommand(t *testing.T) {
	bot, session, _, rec := newBot(t)

	bot.HandleInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "player",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{{
				Name: "manage",
				Type: discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: commands.OptionName, Type: discordgo.ApplicationCommandOptionString, Value: "ace"},
				},
			}},
		},
	}})

	require.Len(t, session.responses, 1)
	resp := session.responses[0]
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	assert.Equal(t, "Player: Ace", resp.Data.Embeds[0].Title)
	assert.Len(t, resp.Data.Components, 2)
	assert.Equal(t, 1, rec.Interactions(KindCommand).Calls)
}

func TestHandleComponentUpdatesMessage(t *testing.T) {
	bot, session, store, _ := newBot(t)

	bot.HandleInteraction(context.Background(), component("player:toggleTop:cat"))

	require.Len(t, session.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, session.responses[0].Type)
	p, _ := store.Snapshot().Player("cat")
	assert.True(t, p.TopPlayer)
	assert.Empty(t, session.followups)
}

func TestHandleComponentCancelSendsFollowup(t *testing.T) {
	bot, session, _, _ := newBot(t)

	bot.HandleInteraction(context.Background(), component("player:cancelRemove:ace"))

	require.Len(t, session.followups, 1)
	assert.Equal(t, "Canceled.", session.followups[0].Embeds[0].Title)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, session.followups[0].Flags)
}

func TestHandleComponentCloseDeletesMessage(t *testing.T) {
	bot, session, _, _ := newBot(t)

	bot.HandleInteraction(context.Background(), component("player:done:ace"))

	require.Len(t, session.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, session.responses[0].Type)
	assert.Equal(t, []string{"m1"}, session.deleted)
}

func TestHandleSelectAndModalFlow(t *testing.T) {
	bot, session, store, _ := newBot(t)
	ctx := context.Background()

	bot.HandleInteraction(ctx, component("team:pointsSelect:alpha", "add"))
	require.Len(t, session.responses, 1)
	resp := session.responses[0]
	assert.Equal(t, discordgo.InteractionResponseModal, resp.Type)
	assert.Equal(t, "team:pointsModal:alpha:add:m1", resp.Data.CustomID)

	bot.HandleInteraction(ctx, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionModalSubmit,
		ChannelID: "c1",
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: resp.Data.CustomID,
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "amount", Value: "5"},
				}},
			},
		},
	}})

	require.Len(t, session.edits, 1)
	assert.Equal(t, "m1", session.edits[0].ID)
	assert.Equal(t, "c1", session.edits[0].Channel)
	require.Len(t, session.responses, 2)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, session.responses[1].Data.Flags)
	assert.Equal(t, "Points updated.", session.responses[1].Data.Embeds[0].Title)

	team, _ := store.Snapshot().Team("alpha")
	assert.Equal(t, 15, team.Points)
}

func TestModalConfirmsWhenOriginalMessageIsGone(t *testing.T) {
	bot, session, store, rec := newBot(t)
	session.editErr = errors.New("unknown message")

	bot.HandleInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionModalSubmit,
		ChannelID: "c1",
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: "team:pointsModal:alpha:add:deleted",
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "amount", Value: "5"},
				}},
			},
		},
	}})

	team, _ := store.Snapshot().Team("alpha")
	assert.Equal(t, 15, team.Points)
	require.Len(t, session.edits, 1)
	assert.Equal(t, "deleted", session.edits[0].ID)
	require.Len(t, session.responses, 1)
	assert.Equal(t, "Points updated.", session.responses[0].Data.Embeds[0].Title)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, session.responses[0].Data.Flags)
	assert.Equal(t, 1, rec.Interactions(KindModal).Errors)
}

func TestHandleMalformedComponentIsEphemeral(t *testing.T) {
	bot, session, _, rec := newBot(t)

	bot.HandleInteraction(context.Background(), component("garbage"))

	require.Len(t, session.responses, 1)
	data := session.responses[0].Data
	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
	assert.Equal(t, "Action: garbage", data.Embeds[0].Description)
	assert.Equal(t, 1, rec.Interactions(KindComponent).Errors)
}

func TestHandleInteractionRecoversFromPanic(t *testing.T) {
	bot, session, _, rec := newBot(t)
	bot.router = nil

	bot.HandleInteraction(context.Background(), component("player:toggleTop:cat"))

	require.Len(t, session.responses, 1)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, session.responses[0].Data.Flags)
	assert.Equal(t, 1, rec.Interactions(KindComponent).Errors)
}

func TestHandleMessage(t *testing.T) {
	bot, session, _, _ := newBot(t)
	ctx := context.Background()

	bot.HandleMessage(ctx, &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "c1", Content: "!player add Dee", Author: &discordgo.User{ID: "u1"},
	}})
	bot.HandleMessage(ctx, &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "c1", Content: "!teams", Author: &discordgo.User{ID: "b1", Bot: true},
	}})
	bot.HandleMessage(ctx, &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "c1", Content: "good game", Author: &discordgo.User{ID: "u1"},
	}})

	assert.Equal(t, []string{"Added player: Dee"}, session.sent)
}

func TestRegisterCommands(t *testing.T) {
	bot, session, _, _ := newBot(t)

	_, err := bot.RegisterCommands("", "")
	require.Error(t, err)

	created, err := bot.RegisterCommands("app", "guild")
	require.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Equal(t, "guild", session.guildID)
	assert.Equal(t, "player", session.overwrite[0].Name)
}

func TestRunStartsAndStops(t *testing.T) {
	bot, session, _, _ := newBot(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, bot.Run(ctx))
	assert.False(t, bot.Connected())
	assert.True(t, session.opened)
	assert.True(t, session.closed)
	assert.Zero(t, session.handlers)
}

func TestRespondErrorIsRecorded(t *testing.T) {
	bot, session, _, rec := newBot(t)
	session.respErr = errors.New("unknown interaction")

	bot.HandleInteraction(context.Background(), component("player:toggleTop:cat"))

	assert.Equal(t, 1, rec.Interactions(KindComponent).Errors)
}

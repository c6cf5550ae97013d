package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

func embed(v views.View) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       v.Title,
		Description: v.Description,
		Color:       int(v.Color),
	}
}

func embeds(v views.View) []*discordgo.MessageEmbed {
	return []*discordgo.MessageEmbed{embed(v)}
}

// components converts view rows. The result is never nil so that edits clear
// stale controls.
func components(v views.View) []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(v.Rows))
	for _, row := range v.Rows {
		controls := make([]discordgo.MessageComponent, 0, len(row))
		for _, c := range row {
			switch c := c.(type) {
			case views.Button:
				controls = append(controls, discordgo.Button{
					CustomID: c.ID,
					Label:    c.Label,
					Style:    buttonStyle(c.Style),
					Disabled: c.Disabled,
				})
			case views.Select:
				options := make([]discordgo.SelectMenuOption, len(c.Options))
				for i, o := range c.Options {
					options[i] = discordgo.SelectMenuOption{Label: o.Label, Value: o.Value, Description: o.Description}
				}
				controls = append(controls, discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    c.ID,
					Placeholder: c.Placeholder,
					Options:     options,
					Disabled:    c.Disabled,
				})
			}
		}
		out = append(out, discordgo.ActionsRow{Components: controls})
	}
	return out
}

func buttonStyle(s views.Style) discordgo.ButtonStyle {
	switch s {
	case views.StylePrimary:
		return discordgo.PrimaryButton
	case views.StyleSuccess:
		return discordgo.SuccessButton
	case views.StyleDanger:
		return discordgo.DangerButton
	}
	return discordgo.SecondaryButton
}

func message(v views.View) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds:     embeds(v),
		Components: components(v),
	}
}

func ephemeralMessage(v views.View) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: embeds(v),
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

func modal(m views.Modal) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: m.ID,
		Title:    m.Title,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    m.Input.ID,
					Label:       m.Input.Label,
					Style:       discordgo.TextInputShort,
					Placeholder: m.Input.Placeholder,
					Value:       m.Input.Value,
					Required:    true,
				},
			}},
		},
	}
}

// modalFields collects text input values from a submitted modal.
func modalFields(rows []discordgo.MessageComponent) map[string]string {
	fields := make(map[string]string)
	for _, c := range rows {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				fields[input.CustomID] = input.Value
			}
		}
	}
	return fields
}

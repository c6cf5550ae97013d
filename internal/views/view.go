// Package views turns screens and roster data into platform-neutral cards.
package views

// Color is an RGB embed accent.
type Color int

const (
	ColorPlayer Color = 0x3b82f6
	ColorTeam   Color = 0x22c55e
	ColorList   Color = 0x6366f1
	ColorError  Color = 0xef4444
	ColorCancel Color = 0x94a3b8
)

// Style is a button emphasis.
type Style int

const (
	StylePrimary Style = iota + 1
	StyleSecondary
	StyleSuccess
	StyleDanger
)

// Control is a button or select menu. The set of variants is closed.
type Control interface {
	isControl()
}

// Button is a clickable control.
type Button struct {
	ID       string
	Label    string
	Style    Style
	Disabled bool
}

// Select is a single-choice string menu.
type Select struct {
	ID          string
	Placeholder string
	Options     []Option
	Disabled    bool
}

// Option is one select menu entry.
type Option struct {
	Label       string
	Value       string
	Description string
}

func (Button) isControl() {}
func (Select) isControl() {}

// Row is one line of controls.
type Row []Control

// View is a message card: an embed plus component rows.
type View struct {
	Title       string
	Description string
	Color       Color
	Rows        []Row
}

// Modal is a form with a single text input.
type Modal struct {
	ID    string
	Title string
	Input TextInput
}

// TextInput is a single-line modal field.
type TextInput struct {
	ID          string
	Label       string
	Value       string
	Placeholder string
}

// Notice is a plain titled card.
func Notice(title string, color Color) View {
	return View{Title: title, Color: color}
}

// Error is a red titled card.
func Error(title string) View {
	return Notice(title, ColorError)
}

// Success is a green titled card.
func Success(title string) View {
	return Notice(title, ColorTeam)
}

// Canceled is the grey card sent when a flow is backed out of.
func Canceled(title string) View {
	return Notice(title, ColorCancel)
}

// Buttons reports every button in v in row order.
func (v View) Buttons() []Button {
	var out []Button
	for _, row := range v.Rows {
		for _, c := range row {
			if b, ok := c.(Button); ok {
				out = append(out, b)
			}
		}
	}
	return out
}

// Selects reports every select menu in v in row order.
func (v View) Selects() []Select {
	var out []Select
	for _, row := range v.Rows {
		for _, c := range row {
			if s, ok := c.(Select); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

package builders

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
)

// maxRowSize is how many buttons Discord allows in one action row
const maxRowSize = 5

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		customIDBuilder: customIDBuilder,
		currentRow:      make([]discordgo.MessageComponent, 0, maxRowSize),
	}
}

// Button adds a button whose custom ID is action with target
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action, target string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target),
	})
	return b
}

// PrimaryButton adds a blurple button
func (b *ComponentBuilder) PrimaryButton(label, action, target string) *ComponentBuilder {
	return b.Button(label, discordgo.PrimaryButton, action, target)
}

// SecondaryButton adds a grey button
func (b *ComponentBuilder) SecondaryButton(label, action, target string) *ComponentBuilder {
	return b.Button(label, discordgo.SecondaryButton, action, target)
}

// SuccessButton adds a green button
func (b *ComponentBuilder) SuccessButton(label, action, target string) *ComponentBuilder {
	return b.Button(label, discordgo.SuccessButton, action, target)
}

// DangerButton adds a red button
func (b *ComponentBuilder) DangerButton(label, action, target string) *ComponentBuilder {
	return b.Button(label, discordgo.DangerButton, action, target)
}

// ConfirmationButtons adds Yes/No buttons for the same target
func (b *ComponentBuilder) ConfirmationButtons(confirmAction, refuseAction, target string) *ComponentBuilder {
	b.SuccessButton("Yes", confirmAction, target)
	b.DangerButton("No", refuseAction, target)
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxRowSize)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

// addComponent adds a component to the current row
func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxRowSize {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}

package builders

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Role card colors
const (
	ColorSpy          = 0xE74C3C
	ColorMole         = 0xE67E22
	ColorInvestigator = 0x3498DB
)

// Card builds the private embed that tells one player their role
type Card struct {
	embed *discordgo.MessageEmbed
}

// NewCard starts a card with a title and an accent color
func NewCard(title string, color int) *Card {
	return &Card{embed: &discordgo.MessageEmbed{
		Type:  discordgo.EmbedTypeRich,
		Title: title,
		Color: color,
	}}
}

// Text sets the card body
func (c *Card) Text(text string) *Card {
	c.embed.Description = text
	return c
}

// List adds a field with one bullet per item
func (c *Card) List(name string, items []string) *Card {
	if len(items) == 0 {
		return c
	}
	return c.field(name, "- "+strings.Join(items, "\n- "))
}

// Line adds a field with items joined on one line
func (c *Card) Line(name string, items ...string) *Card {
	if len(items) == 0 {
		return c
	}
	return c.field(name, strings.Join(items, ", "))
}

// Note sets the footer
func (c *Card) Note(text string) *Card {
	c.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return c
}

func (c *Card) field(name, value string) *Card {
	c.embed.Fields = append(c.embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value})
	return c
}

// Embed returns the finished embed
func (c *Card) Embed() *discordgo.MessageEmbed {
	return c.embed
}

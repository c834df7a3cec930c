package core

import (
	"strings"

	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

// Component ids look like domain:action:target[:arg...]. Discord echoes the
// id back on every click, so it is all the state a button carries.
const (
	CustomIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100
)

// CustomID is a decoded component id
type CustomID struct {
	Domain string
	Action string
	Target string // game or confirmation id
	Args   []string
}

func (c CustomID) parts() []string {
	parts := []string{c.Domain, c.Action}
	if c.Target != "" || len(c.Args) > 0 {
		parts = append(parts, c.Target)
	}
	return append(parts, c.Args...)
}

// Encode checks the id against Discord's limits and joins it
func (c CustomID) Encode() (string, error) {
	if c.Domain == "" || c.Action == "" {
		return "", spyerr.InvalidArgument("custom ID needs a domain and an action")
	}

	parts := c.parts()
	for _, part := range parts {
		if strings.Contains(part, CustomIDSeparator) {
			return "", spyerr.InvalidArgumentf("custom ID part %q contains %q", part, CustomIDSeparator)
		}
	}

	encoded := strings.Join(parts, CustomIDSeparator)
	if len(encoded) > MaxCustomIDLength {
		return "", spyerr.InvalidArgumentf("custom ID is %d characters, limit is %d", len(encoded), MaxCustomIDLength)
	}
	return encoded, nil
}

// ParseCustomID splits a component id. Domain and action are required.
func ParseCustomID(customID string) (*CustomID, error) {
	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, spyerr.InvalidArgumentf("malformed custom ID %q", customID)
	}

	parsed := &CustomID{Domain: parts[0], Action: parts[1]}
	if len(parts) > 2 {
		parsed.Target = parts[2]
		parsed.Args = parts[3:]
	}
	return parsed, nil
}

// CustomIDBuilder stamps ids for one domain
type CustomIDBuilder struct {
	domain string
}

// NewCustomIDBuilder creates a new builder for a domain
func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

// Domain returns the domain ids are built for
func (b *CustomIDBuilder) Domain() string {
	return b.domain
}

// Button returns the id of a button acting on target. Ids are built from
// constants and generated ids, so a part that does not fit panics.
func (b *CustomIDBuilder) Button(action, target string, args ...string) string {
	encoded, err := CustomID{Domain: b.domain, Action: action, Target: target, Args: args}.Encode()
	if err != nil {
		panic(err)
	}
	return encoded
}

// Owns reports whether id belongs to this builder's domain
func (b *CustomIDBuilder) Owns(id *CustomID) bool {
	return id != nil && id.Domain == b.domain
}

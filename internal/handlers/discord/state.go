package discord

import (
	"fmt"
	"strings"
)

const componentContext = "combat"

// Button actions on the tracker message
const (
	buttonNext = "next"
	buttonPrev = "prev"
	buttonLog  = "log"
)

// ComponentState is what a tracker button carries in its custom ID
type ComponentState struct {
	Action      string
	EncounterID string
}

// Encode renders the state as a "combat:action:encounter" custom ID
func (s *ComponentState) Encode() string {
	return fmt.Sprintf("%s:%s:%s", componentContext, s.Action, s.EncounterID)
}

// DecodeComponentState parses a custom ID built by Encode
func DecodeComponentState(customID string) (*ComponentState, error) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != componentContext {
		return nil, fmt.Errorf("not a combat component: %q", customID)
	}
	if parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("incomplete combat component: %q", customID)
	}
	return &ComponentState{Action: parts[1], EncounterID: parts[2]}, nil
}

package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentState_RoundTrip(t *testing.T) {
	state := &ComponentState{Action: buttonNext, EncounterID: "3f2a9c1e-7d4b-4e8a-9c0f-1b2d3e4f5a6b"}

	encoded := state.Encode()
	assert.Equal(t, "combat:next:3f2a9c1e-7d4b-4e8a-9c0f-1b2d3e4f5a6b", encoded)
	assert.LessOrEqual(t, len(encoded), 100)

	decoded, err := DecodeComponentState(encoded)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestDecodeComponentState_Rejects(t *testing.T) {
	for _, customID := range []string{
		"",
		"combat:next",
		"combat::enc-1",
		"combat:next:",
		"character_create:race_select:elf",
	} {
		_, err := DecodeComponentState(customID)
		assert.Error(t, err, customID)
	}
}

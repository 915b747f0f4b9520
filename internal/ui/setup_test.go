package ui

import (
	"testing"

	"github.com/bnema/waytap/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupChoices(t *testing.T) {
	cfg := config.DefaultConfig
	choices := NewSetupChoices(&cfg)

	require.Equal(t, []string{"pointer", "touch", "mouse"}, choices.Families)
	choices.Families[0] = "mouse"
	assert.Equal(t, "pointer", cfg.Engine.Families[0], "choices must not alias the config")

	choices.Families = []string{"touch"}
	choices.LogLevel = "debug"
	engine, logging, err := choices.Apply()
	require.NoError(t, err)
	assert.Equal(t, []string{"touch"}, engine.Families)
	assert.Equal(t, "debug", logging.LogLevel)
}

func TestSetupChoices_ApplyRejectsEmpty(t *testing.T) {
	choices := &SetupChoices{}
	_, _, err := choices.Apply()
	assert.Error(t, err)
}

func TestNewSetupForm(t *testing.T) {
	cfg := config.DefaultConfig
	assert.NotNil(t, NewSetupForm(NewSetupChoices(&cfg)))
}

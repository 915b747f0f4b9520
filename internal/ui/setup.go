package ui

import (
	"fmt"

	"github.com/bnema/waytap/internal/config"
	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/huh"
)

// LogLevels lists the levels offered by the setup form. The empty value
// defers to the LOG_LEVEL environment variable.
var LogLevels = []string{"", "debug", "info", "warn", "error"}

// SetupChoices holds the values edited by the setup form.
type SetupChoices struct {
	Families  []string
	LogLevel  string
	Confirmed bool
}

// NewSetupChoices seeds the form values from the current configuration.
func NewSetupChoices(cfg *config.Config) *SetupChoices {
	families := make([]string, len(cfg.Engine.Families))
	copy(families, cfg.Engine.Families)

	return &SetupChoices{
		Families: families,
		LogLevel: cfg.Logging.LogLevel,
	}
}

// Apply validates the choices and returns the config sections they describe.
func (c *SetupChoices) Apply() (config.EngineConfig, config.LoggingConfig, error) {
	engine := config.EngineConfig{Families: c.Families}
	if _, err := engine.ParseFamilies(); err != nil {
		return config.EngineConfig{}, config.LoggingConfig{}, err
	}
	return engine, config.LoggingConfig{LogLevel: c.LogLevel}, nil
}

// NewSetupForm builds the interactive form bound to choices.
func NewSetupForm(choices *SetupChoices) *huh.Form {
	familyOptions := make([]huh.Option[string], len(tap.Families))
	for i, f := range tap.Families {
		familyOptions[i] = huh.NewOption(f.String(), f.String())
	}

	levelOptions := make([]huh.Option[string], len(LogLevels))
	for i, level := range LogLevels {
		label := level
		if label == "" {
			label = "from LOG_LEVEL"
		}
		levelOptions[i] = huh.NewOption(label, level)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Input Families").
				Description("Families the engine may listen to. Duplicates are still retired at runtime").
				Options(familyOptions...).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("select at least one family")
					}
					return nil
				}).
				Value(&choices.Families),
			huh.NewSelect[string]().
				Title("Log Level").
				Options(levelOptions...).
				Value(&choices.LogLevel),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save configuration?").
				Description(config.GetConfigPath()).
				Value(&choices.Confirmed),
		),
	)
}

// RunSetup runs the form and saves the result when confirmed. It reports
// whether the configuration was written.
func RunSetup() (bool, error) {
	choices := NewSetupChoices(config.Get())
	if err := NewSetupForm(choices).Run(); err != nil {
		return false, fmt.Errorf("setup cancelled: %w", err)
	}
	if !choices.Confirmed {
		return false, nil
	}

	engine, logging, err := choices.Apply()
	if err != nil {
		return false, err
	}
	if err := config.Update(engine, logging); err != nil {
		return false, err
	}
	return true, nil
}

package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/jarospm/folio/internal/core/config"
	"github.com/jarospm/folio/internal/printer"
)

// ErrInvalidConfig is returned by config validate when checks fail.
var ErrInvalidConfig = errors.New("configuration is invalid")

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "folio config validate [options]",
				Description: "Validates the configuration file, checking the greeting template, project source globs, and the footer path.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	warnings := cmd.flags.Config.Warnings()

	var fieldErrs criterio.FieldErrors
	if err != nil && !errors.As(err, &fieldErrs) {
		_ = errors.As(criterio.NewFieldErrors("config", err), &fieldErrs)
	}

	if cmd.format == "json" {
		if err := cmd.outputJSON(c, fieldErrs, warnings); err != nil {
			return err
		}
	} else {
		cmd.outputText(printer.Ctx(ctx), fieldErrs, warnings)
	}

	if len(fieldErrs) > 0 {
		return ErrInvalidConfig
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, fieldErrs criterio.FieldErrors, warnings []config.ValidationWarning) error {
	errs := make([]validationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}

	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []validationError          `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, fieldErrs criterio.FieldErrors, warnings []config.ValidationWarning) {
	for _, warn := range warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, fe := range fieldErrs {
		p.Errorf("%s: %s", fe.Field, fe.Err)
	}

	p.Printf("")
	if len(fieldErrs) == 0 {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("%d error(s) found", len(fieldErrs))
}

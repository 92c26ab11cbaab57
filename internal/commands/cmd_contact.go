package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/jarospm/folio/internal/core/contact"
	"github.com/jarospm/folio/internal/printer"
	"github.com/jarospm/folio/pkg/iojson"
)

// ErrRejected is returned when a submission fails validation.
var ErrRejected = errors.New("submission rejected")

type ContactCmd struct {
	flags  *Flags
	reader iojson.FileReader[contact.Snapshot]
}

// NewContactCmd creates the contact command.
func NewContactCmd(flags *Flags) *ContactCmd {
	return &ContactCmd{flags: flags}
}

// Register adds the contact command and its subcommands to the application.
func (cmd *ContactCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "contact",
		Usage: "Validate contact form submissions",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate a JSON submission",
				UsageText: "folio contact check [-f file.json]",
				Description: `Reads a submission with first_name, last_name, email, subject, and
message keys, reports the state of every field, and prints the greeting
when the submission is accepted. Exits non-zero when it is rejected.`,
				Flags:  []cli.Flag{cmd.reader.Flag()},
				Action: cmd.runCheck,
			},
			{
				Name:      "ask",
				Usage:     "Fill in the contact form interactively",
				UsageText: "folio contact ask",
				Action:    cmd.runAsk,
			},
		},
	})

	return app
}

func (cmd *ContactCmd) runCheck(ctx context.Context, _ *cli.Command) error {
	snap, err := cmd.reader.Read()
	if err != nil {
		return err
	}
	return cmd.report(ctx, snap)
}

// report prints every field result and the greeting when all pass.
func (cmd *ContactCmd) report(ctx context.Context, snap contact.Snapshot) error {
	p := printer.Ctx(ctx)
	results := contact.Check(snap)

	for _, f := range contact.Fields {
		if results[f] {
			p.Successf("%s", f.Label())
		} else {
			p.Errorf("%s: %s", f.Label(), f.Hint())
		}
	}

	if err := contact.Validate(snap); err != nil {
		log.Info().Int("failed", len(results.Failed())).Msg("contact check rejected")
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}

	greeting, err := contact.Greeting(cmd.flags.Config.Contact.Greeting, snap.FirstName)
	if err != nil {
		return err
	}

	p.Printf("")
	p.Successf("%s", greeting)
	return nil
}

// subjectOptions lists the configured subjects after an empty placeholder,
// so an unchosen subject is caught by the subject validator.
func subjectOptions(subjects []string) []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption("Select a subject", "")}
	return append(options, huh.NewOptions(subjects...)...)
}

func (cmd *ContactCmd) runAsk(ctx context.Context, _ *cli.Command) error {
	var snap contact.Snapshot

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(contact.FieldFirstName.Label()).
			Value(&snap.FirstName).
			Validate(contact.FieldValidator(contact.FieldFirstName)),
		huh.NewInput().
			Title(contact.FieldLastName.Label()).
			Value(&snap.LastName).
			Validate(contact.FieldValidator(contact.FieldLastName)),
		huh.NewInput().
			Title(contact.FieldEmail.Label()).
			Value(&snap.Email).
			Validate(contact.FieldValidator(contact.FieldEmail)),
		huh.NewSelect[string]().
			Title(contact.FieldSubject.Label()).
			Options(subjectOptions(cmd.flags.Config.Contact.Subjects)...).
			Value(&snap.Subject).
			Validate(contact.FieldValidator(contact.FieldSubject)),
		huh.NewText().
			Title(contact.FieldMessage.Label()).
			Description(contact.FieldMessage.Hint()).
			Value(&snap.Message).
			Validate(contact.FieldValidator(contact.FieldMessage)),
	))

	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	return cmd.report(ctx, snap)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/phrazzld/studyaid/internal/config"
	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/events"
	"github.com/phrazzld/studyaid/internal/generation"
	"github.com/phrazzld/studyaid/internal/platform/logger"
	"github.com/phrazzld/studyaid/internal/platform/studyapi"
	"github.com/phrazzld/studyaid/internal/render"
	"github.com/phrazzld/studyaid/internal/session"
	"github.com/phrazzld/studyaid/internal/store"
	"github.com/spf13/cobra"
)

// app carries the dependencies built once per invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  *studyapi.Client
	emitter *events.InMemoryEmitter
	text    *render.Text
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{}
	var configFile string

	cmd := &cobra.Command{
		Use:   "studyaid",
		Short: "Study your material with blurting, flashcards and mnemonics",
		Long: `studyaid talks to the study service to store projects and to generate
Blurt analyses, flashcard decks and annotated mnemonics for them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(configFile, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")

	cmd.AddCommand(
		newProjectsCmd(a),
		newBlurtCmd(a),
		newFlashcardsCmd(a),
		newMnemonicsCmd(a),
		newPrepareCmd(a),
		newHealthCmd(a),
	)
	return cmd
}

// setup loads configuration and wires the client. Logs go to errOut so
// that out only carries rendered output.
func (a *app) setup(configFile string, out, errOut io.Writer) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.Setup(cfg.Log, errOut)

	a.client, err = studyapi.NewClient(cfg.Service, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create study service client: %w", err)
	}

	a.emitter = events.NewInMemoryEmitter(a.logger)
	a.emitter.RegisterHandler(events.LogHandler(a.logger))
	a.text = render.NewText(out, cfg.Render.Width)

	a.logger.Debug("studyaid configured",
		"base_url", cfg.Service.BaseURL,
		"timeout", cfg.Service.Timeout.String(),
		"render_format", cfg.Render.Format)
	return nil
}

func (a *app) sessionOptions() []session.Option {
	return []session.Option{session.WithEmitter(a.emitter), session.WithLogger(a.logger)}
}

// loadProject resolves a project id argument against the store.
func (a *app) loadProject(ctx context.Context, arg string) (domain.Project, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return domain.Project{}, fmt.Errorf("invalid project id %q", arg)
	}

	p, err := a.client.Get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.Project{}, fmt.Errorf("project %d not found", id)
		}
		return domain.Project{}, fmt.Errorf("failed to load project %d: %w", id, err)
	}
	return p, nil
}

// userError reports a failure with a message safe to show the user while
// keeping the cause available to errors.Is and errors.As.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func generationFailure(mode generation.Mode, err error) error {
	return &userError{msg: generation.UserMessage(mode, err), err: err}
}

// ignoreBusy drops duplicate actions issued while a request is pending.
func ignoreBusy(err error) error {
	if errors.Is(err, session.ErrSessionBusy) {
		return nil
	}
	return err
}

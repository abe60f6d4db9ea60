package main

import (
	"context"
	"fmt"
	"os"

	"unveil/config"
	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/infra/catalog"
	"unveil/internal/infra/clock"
	logs "unveil/internal/infra/log"
	"unveil/internal/infra/memory"
	"unveil/internal/infra/policy"
	"unveil/internal/infra/profile"
	"unveil/internal/infra/validator"
	"unveil/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func main() {
	app := &cli.App{
		Name:  "unveil",
		Usage: "Match creators with business offers and simulate their proposals",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "specify the config file (default: config.yaml in the search path)",
			},
		},
		Commands: []*cli.Command{
			offersCmd,
			matchCmd,
			proposeCmd,
			simulateCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", renderError(err))
		os.Exit(1)
	}
}

// renderError shows domain errors with their code and message; anything else is reported as internal.
func renderError(err error) string {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if details := appErr.Details(); details != "" {
		return fmt.Sprintf("[%s] %s (%s)", appErr.ErrorCode(), appErr.Message(), details)
	}

	return fmt.Sprintf("[%s] %s", appErr.ErrorCode(), appErr.Message())
}

// runApp builds the object graph for one command and calls invoke with it.
// Constructors run lazily, so commands that do not ask for a profile never read one.
func runApp(c *cli.Context, invoke any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(config.Options{Path: c.String("config")}),
		fx.Provide(
			func() context.Context { return c.Context },
			func(v *validator.Validator) (*entity.User, error) {
				return loadProfile(c.String("user"), v)
			},
		),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(invoke),
	)

	return app.Err()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		validator.New,
		clock.NewSystemClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.New,
			memory.NewCampaignRepository,
			memory.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			policy.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchingService,
			impl.NewProposalService,
			impl.NewCampaignService,
		),
	)
}

func loadProfile(path string, v *validator.Validator) (*entity.User, error) {
	if path == "" {
		return nil, errors.New("a creator profile is required, pass it with --user")
	}

	return profile.Load(path, v)
}

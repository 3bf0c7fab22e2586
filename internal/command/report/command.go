package report

import (
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/retrospect/internal/config"
	"github.com/bornholm/retrospect/internal/core/model"
	"github.com/bornholm/retrospect/internal/setup"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/urfave/cli/v2"
)

const (
	flagStart          = "start"
	flagEnd            = "end"
	flagFolderID       = "folder-id"
	flagReportFolderID = "report-folder-id"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a self-reflection report from the journal documents of a date range",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagStart,
				Usage:    "Start date in YYYY-MM-DD",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagEnd,
				Usage:    "End date in YYYY-MM-DD",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagFolderID,
				Usage:    "Drive folder ID holding the source journal documents",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagReportFolderID,
				Usage:    "Drive folder ID the report is saved to",
				Required: true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			dateRange, err := model.ParseDateRange(cCtx.String(flagStart), cCtx.String(flagEnd))
			if err != nil {
				// Invalid dates end the run before any API call, exit code 0
				slog.ErrorContext(ctx, "invalid date format, use YYYY-MM-DD", slogx.Error(errors.WithStack(err)))
				return nil
			}

			ctx = slogx.WithAttrs(ctx, slog.String("run_id", xid.New().String()))

			conf, err := config.Parse()
			if err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "initializing google api services")

			manager, err := setup.NewReportManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not setup report pipeline")
			}

			if err := manager.Run(ctx, dateRange, cCtx.String(flagFolderID), cCtx.String(flagReportFolderID)); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

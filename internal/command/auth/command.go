package auth

import (
	"log/slog"

	"github.com/bornholm/retrospect/internal/config"
	"github.com/bornholm/retrospect/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authorize access to Google Drive and Docs, caching the credential for later runs",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := config.Parse()
			if err != nil {
				return errors.WithStack(err)
			}

			if err := setup.AuthenticateFromConfig(ctx, conf); err != nil {
				return errors.Wrap(err, "could not authorize access")
			}

			slog.InfoContext(ctx, "credential saved", slog.String("token_file", conf.Google.TokenFile))

			return nil
		},
	}
}

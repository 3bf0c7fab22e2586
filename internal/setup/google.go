package setup

import (
	"context"

	"github.com/bornholm/retrospect/internal/adapter/googleworkspace"
	"github.com/bornholm/retrospect/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var getTokenSource = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (oauth2.TokenSource, error) {
	store := googleworkspace.NewCredentialStore(afero.NewOsFs(), conf.Google.TokenFile)

	authenticator, err := googleworkspace.NewAuthenticator(conf.Google.CredentialsFile, store, googleworkspace.LocalConsentFlow)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokenSource, err := authenticator.TokenSource(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tokenSource, nil
})

var getDriveService = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*drive.Service, error) {
	tokenSource, err := getTokenSource(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	service, err := drive.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, errors.Wrap(err, "could not create drive service")
	}

	return service, nil
})

var getDocsService = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*docs.Service, error) {
	tokenSource, err := getTokenSource(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	service, err := docs.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, errors.Wrap(err, "could not create docs service")
	}

	return service, nil
})

// AuthenticateFromConfig forces credential acquisition, running the
// interactive consent flow when no valid stored credential exists.
func AuthenticateFromConfig(ctx context.Context, conf *config.Config) error {
	if _, err := getTokenSource(ctx, conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

package googleworkspace

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
)

// CredentialStore persists the authorized credential between runs. The
// token file is read whole and overwritten whole; no locking, single
// process assumed.
type CredentialStore struct {
	fs   afero.Fs
	path string
}

// Load returns the cached credential, or nil when none is stored yet.
func (s *CredentialStore) Load() (*oauth2.Token, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "could not read token file '%s'", s.path)
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal(data, token); err != nil {
		return nil, errors.Wrapf(err, "could not parse token file '%s'", s.path)
	}

	return token, nil
}

func (s *CredentialStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0600); err != nil {
		return errors.Wrapf(err, "could not write token file '%s'", s.path)
	}

	return nil
}

func NewCredentialStore(fs afero.Fs, path string) *CredentialStore {
	return &CredentialStore{
		fs:   fs,
		path: path,
	}
}

// ConsentFlow obtains a fresh credential from the user. The production
// implementation blocks on a browser-based consent screen; tests inject
// their own.
type ConsentFlow func(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error)

// Authenticator turns the client secret and the cached credential into a
// usable token source, refreshing or re-authorizing as needed.
type Authenticator struct {
	conf    *oauth2.Config
	store   *CredentialStore
	consent ConsentFlow
}

// NewAuthenticator reads the OAuth client-secret file. A missing or
// malformed file is an unrecoverable configuration error.
func NewAuthenticator(credentialsFile string, store *CredentialStore, consent ConsentFlow) (*Authenticator, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read client secret file '%s'", credentialsFile)
	}

	conf, err := google.ConfigFromJSON(data, drive.DriveScope, docs.DocumentsScope)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse client secret file '%s'", credentialsFile)
	}

	return &Authenticator{
		conf:    conf,
		store:   store,
		consent: consent,
	}, nil
}

// TokenSource returns a token source bound to a valid credential. A cached
// credential is reused as is; an expired one holding a refresh token is
// refreshed in place; otherwise the consent flow runs. Any refreshed or
// freshly authorized credential is persisted before use.
func (a *Authenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := a.store.Load()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if token != nil && token.Valid() {
		return a.conf.TokenSource(ctx, token), nil
	}

	if token != nil && token.RefreshToken != "" {
		refreshed, err := a.conf.TokenSource(ctx, token).Token()
		if err != nil {
			return nil, errors.Wrap(err, "could not refresh stored credential")
		}

		if err := a.store.Save(refreshed); err != nil {
			return nil, errors.WithStack(err)
		}

		return a.conf.TokenSource(ctx, refreshed), nil
	}

	token, err = a.consent(ctx, a.conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not complete authorization flow")
	}

	if err := a.store.Save(token); err != nil {
		return nil, errors.WithStack(err)
	}

	return a.conf.TokenSource(ctx, token), nil
}

// LocalConsentFlow opens the consent screen in the user's browser and
// blocks until the authorization code lands on a loopback listener. There
// is no timeout: the flow is human-paced.
func LocalConsentFlow(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer listener.Close()

	local := *conf
	local.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr().String())

	state := xid.New().String()
	authURL := local.AuthCodeURL(state, oauth2.AccessTypeOffline)

	codes := make(chan string, 1)

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				return
			}

			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "missing authorization code", http.StatusBadRequest)
				return
			}

			fmt.Fprintln(w, "Authorization complete. You can close this window.")

			select {
			case codes <- code:
			default:
			}
		}),
	}

	go server.Serve(listener)
	defer server.Close()

	fmt.Printf("Open the following link in your browser to authorize access:\n\n%s\n\n", authURL)
	openBrowser(authURL)

	select {
	case code := <-codes:
		token, err := local.Exchange(ctx, code)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return token, nil
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}

// openBrowser is best effort: the printed URL remains the fallback.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start()
}

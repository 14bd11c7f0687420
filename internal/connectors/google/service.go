package google

import (
	"context"
	"fmt"
	"os"

	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"google.golang.org/api/slides/v1"
)

// Scopes are the OAuth2 scopes requested for every credential.
var Scopes = []string{
	sheets.SpreadsheetsReadonlyScope,
	slides.PresentationsScope,
}

// LoadCredentials reads a service-account or authorised-user JSON key from
// path. An empty path falls back to application default credentials.
func LoadCredentials(ctx context.Context, path string) (*googleoauth.Credentials, error) {
	if path == "" {
		creds, err := googleoauth.FindDefaultCredentials(ctx, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("%w: no credentials file configured and no application default credentials: %w",
				ErrUnauthorized, err)
		}
		return creds, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	creds, err := googleoauth.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrUnauthorized, path, err)
	}
	return creds, nil
}

// WithCredentials returns a client option authenticating with creds.
func WithCredentials(creds *googleoauth.Credentials) option.ClientOption {
	return option.WithTokenSource(creds.TokenSource)
}

// NewSheetsService creates a Google Sheets API service.
func NewSheetsService(ctx context.Context, opts ...option.ClientOption) (*sheets.Service, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return svc, nil
}

// NewSlidesService creates a Google Slides API service.
func NewSlidesService(ctx context.Context, opts ...option.ClientOption) (*slides.Service, error) {
	svc, err := slides.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating slides service: %w", err)
	}
	return svc, nil
}

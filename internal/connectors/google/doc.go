// Package google provides shared infrastructure for the Sheets and Slides
// connectors.
//
// This package contains common utilities used by the sheets and slides
// packages including:
//   - Credential loading from a service-account or authorised-user JSON file,
//     falling back to application default credentials
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
//	creds, err := google.LoadCredentials(ctx, "/path/to/service-account.json")
//	svc, err := google.NewSlidesService(ctx, google.WithCredentials(creds))
//
// # OAuth2 Scopes
//
// Credentials are requested with these scopes:
//   - https://www.googleapis.com/auth/spreadsheets.readonly
//   - https://www.googleapis.com/auth/presentations
//
// A service account must be given access to the response spreadsheet and
// both presentations, like any other collaborator.
package google

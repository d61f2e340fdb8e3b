package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/classikwoods/site-backend/internal/auth"
)

// NewSessions wires the Firebase Admin SDK and returns the session backend.
// With no credentials file the SDK falls back to application default
// credentials, which is how it runs on GCP.
func NewSessions(ctx context.Context, credentialsFile string) (*auth.FirebaseSessions, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}

	return auth.NewFirebaseSessions(client), nil
}

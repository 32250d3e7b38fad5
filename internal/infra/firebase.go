// README: Firebase auth: ID-token verification for the protected /api routes.
package infra

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseToken is the verified identity handed to the auth middleware. The
// UID becomes the owner id on trips, posts, and chat usage rows.
type FirebaseToken struct {
	UID    string
	Claims map[string]interface{}
}

// TokenVerifier checks a raw Bearer token. Handler tests substitute a stub.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier builds the production verifier from the Admin SDK.
// projectID and credentialsFile come from TRAVEL_FIREBASE_PROJECT_ID and
// TRAVEL_FIREBASE_CREDENTIALS; when the credentials path is empty the SDK
// falls back to application-default credentials
// (GOOGLE_APPLICATION_CREDENTIALS).
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (TokenVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Auth: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error) {
	tok, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return &FirebaseToken{UID: tok.UID, Claims: tok.Claims}, nil
}

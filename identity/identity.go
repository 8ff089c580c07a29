package identity

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"adminconsole/config"
	"adminconsole/models"
)

// relyingParty is the password-credential surface of the identity provider.
type relyingParty interface {
	verifyPassword(ctx context.Context, email, password string) (string, error)
	signupNewUser(ctx context.Context, email, password string) (string, error)
}

type toolkitRelyingParty struct {
	svc *identitytoolkit.RelyingpartyService
}

func (t *toolkitRelyingParty) verifyPassword(ctx context.Context, email, password string) (string, error) {
	resp, err := t.svc.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return resp.IdToken, nil
}

func (t *toolkitRelyingParty) signupNewUser(ctx context.Context, email, password string) (string, error) {
	resp, err := t.svc.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return resp.IdToken, nil
}

// Client wraps the external identity provider: password sign-in/sign-up via
// the Identity Toolkit API and session verification via the Admin SDK.
type Client struct {
	app  *firebase.App
	auth *auth.Client
	rp   relyingParty
}

// NewClient initializes the Firebase Admin SDK and the Identity Toolkit
// service from the configured credentials.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	log.Println("Initializing Firebase Admin SDK...")

	opt, err := credentialsOption(cfg)
	if err != nil {
		return nil, err
	}

	fbConfig := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	var app *firebase.App
	if opt != nil {
		app, err = firebase.NewApp(ctx, fbConfig, opt)
	} else {
		log.Println("No service account credentials found, using application default credentials")
		app, err = firebase.NewApp(ctx, fbConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	toolkitSvc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(cfg.FirebaseAPIKey))
	if err != nil {
		return nil, fmt.Errorf("error creating Identity Toolkit service: %w", err)
	}

	log.Println("Firebase Admin SDK initialized successfully")
	return &Client{
		app:  app,
		auth: authClient,
		rp:   &toolkitRelyingParty{svc: toolkitSvc.Relyingparty},
	}, nil
}

func credentialsOption(cfg *config.Config) (option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		log.Println("Using JSON Firebase credentials from environment")
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	}
	if cfg.ServiceAccountBase64 != "" {
		log.Println("Using base64-encoded Firebase credentials from environment")
		credBytes, err := base64.StdEncoding.DecodeString(cfg.ServiceAccountBase64)
		if err != nil {
			return nil, fmt.Errorf("error decoding base64 Firebase credentials: %w", err)
		}
		return option.WithCredentialsJSON(credBytes), nil
	}
	return nil, nil
}

// App exposes the underlying Firebase app handle so the store can share it.
func (c *Client) App() *firebase.App {
	return c.app
}

// SignIn authenticates email/password against the provider and returns the
// session ID token. Provider errors surface verbatim as *Error; nothing is
// retried.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	token, err := c.rp.verifyPassword(ctx, email, password)
	if err != nil {
		return "", mapProviderError(err, signInCodes, signInFallback)
	}
	return token, nil
}

// SignUp creates a new account and returns its session ID token. The local
// preconditions are checked before any network call: the confirmation must
// match and the password must be at least 8 characters.
func (c *Client) SignUp(ctx context.Context, email, password, confirmPassword string) (string, error) {
	if password != confirmPassword {
		return "", ErrPasswordMismatch
	}
	if len(password) < 8 {
		return "", ErrPasswordTooShort
	}
	token, err := c.rp.signupNewUser(ctx, email, password)
	if err != nil {
		return "", mapProviderError(err, signUpCodes, signUpFallback)
	}
	return token, nil
}

// VerifySession validates a session ID token and resolves the full principal
// behind it.
func (c *Client) VerifySession(ctx context.Context, idToken string) (*models.Principal, error) {
	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying ID token: %w", err)
	}

	record, err := c.auth.GetUser(ctx, token.UID)
	if err != nil {
		return nil, fmt.Errorf("error fetching user %s: %w", token.UID, err)
	}

	p := &models.Principal{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		EmailVerified: record.EmailVerified,
	}
	if record.UserMetadata != nil {
		p.CreationTime = time.UnixMilli(record.UserMetadata.CreationTimestamp)
		p.LastSignInTime = time.UnixMilli(record.UserMetadata.LastLogInTimestamp)
	}
	return p, nil
}

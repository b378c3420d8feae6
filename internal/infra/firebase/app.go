package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/BruksfildServices01/barbermatch/internal/config"
)

// Clients holds the Firebase services the API uses. Either field is nil
// when the matching feature is not configured.
type Clients struct {
	Auth      *fbauth.Client
	Firestore *firestore.Client
}

// NewApp initializes the Admin SDK. Without a credentials file the SDK falls
// back to application default credentials, which is also what the emulators
// expect.
func NewApp(ctx context.Context, cfg *config.Config) (*fb.App, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	return app, nil
}

// Connect builds the clients required by cfg.
func Connect(ctx context.Context, cfg *config.Config) (*Clients, error) {
	if !cfg.UsesFirebase() {
		return &Clients{}, nil
	}

	app, err := NewApp(ctx, cfg)
	if err != nil {
		return nil, err
	}

	out := &Clients{}

	if cfg.AuthProvider == config.AuthFirebase {
		out.Auth, err = app.Auth(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting auth client: %w", err)
		}
	}

	if cfg.StoreDriver == config.StoreFirestore {
		out.Firestore, err = app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting firestore client: %w", err)
		}
	}

	return out, nil
}

func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/harjas-romana/cs-projects-api/config"
)

type FirestoreOptions struct {
	Config  config.FirestoreConfig
	ProbeTO time.Duration
}

// OpenFirestore initializes the Firebase app and returns a Firestore client.
// Credentials come from an inline JSON blob (hosted deployments) or a service
// account key file (local development). The client is probed with a bounded
// read so a misconfigured deployment fails at startup, not on first request.
func OpenFirestore(ctx context.Context, opt FirestoreOptions) (*firestore.Client, error) {
	if opt.ProbeTO == 0 {
		opt.ProbeTO = 5 * time.Second
	}

	creds, err := credentialOption(opt.Config)
	if err != nil {
		return nil, err
	}

	fbCfg := &firebase.Config{ProjectID: opt.Config.ProjectID}
	app, err := firebase.NewApp(ctx, fbCfg, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	// Fail fast
	pctx, cancel := context.WithTimeout(ctx, opt.ProbeTO)
	defer cancel()
	if _, err := client.Collection(opt.Config.Collection).Limit(1).Documents(pctx).GetAll(); err != nil {
		client.Close()
		return nil, fmt.Errorf("firestore probe: %w", err)
	}

	return client, nil
}

func credentialOption(cfg config.FirestoreConfig) (option.ClientOption, error) {
	if cfg.CredentialsJSON != "" {
		return option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)), nil
	}

	if cfg.CredentialsPath != "" {
		if _, err := os.Stat(cfg.CredentialsPath); err != nil {
			return nil, fmt.Errorf("service account file %q: %w", cfg.CredentialsPath, err)
		}
		return option.WithCredentialsFile(cfg.CredentialsPath), nil
	}

	return nil, fmt.Errorf("FIREBASE_CREDENTIALS or FIREBASE_CREDENTIALS_PATH is required")
}

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/logger"
)

// FirebaseStore backs the listing collection with the Firebase Realtime
// Database. The Go admin SDK has no streaming listener, so Subscribe polls
// the collection at a fixed interval and pushes a snapshot to the handler
// whenever the serialized collection changes.
type FirebaseStore struct {
	client       *db.Client
	pollInterval time.Duration
}

func NewFirebaseStore(ctx context.Context, databaseURL, credentialsFile string, pollInterval time.Duration) (*FirebaseStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize realtime database client: %w", err)
	}

	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}

	return &FirebaseStore{client: client, pollInterval: pollInterval}, nil
}

func (s *FirebaseStore) Subscribe(ctx context.Context, path string, h SnapshotHandler) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)

	snap, err := s.fetch(subCtx, path)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	go s.poll(subCtx, path, snap, h)
	h(snap, nil)
	return cancel, nil
}

func (s *FirebaseStore) poll(ctx context.Context, path string, last Snapshot, h SnapshotHandler) {
	lastRaw, _ := json.Marshal(last)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		snap, err := s.fetch(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// Terminal per the error policy: surface once, stop polling.
			logger.Error("Listing subscription dropped", "path", path, "error", err)
			h(nil, fmt.Errorf("%w: %v", domain.ErrConnection, err))
			return
		}

		raw, err := json.Marshal(snap)
		if err != nil {
			h(nil, fmt.Errorf("%w: %v", domain.ErrConnection, err))
			return
		}
		if bytes.Equal(raw, lastRaw) {
			continue
		}
		lastRaw = raw
		h(snap, nil)
	}
}

func (s *FirebaseStore) fetch(ctx context.Context, path string) (Snapshot, error) {
	var snap Snapshot
	if err := s.client.NewRef(path).Get(ctx, &snap); err != nil {
		return nil, err
	}
	if snap == nil {
		snap = Snapshot{}
	}
	return snap, nil
}

func (s *FirebaseStore) Append(ctx context.Context, path string, l domain.Listing) (string, error) {
	l.ID = ""
	ref, err := s.client.NewRef(path).Push(ctx, l)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}
	return ref.Key, nil
}

func (s *FirebaseStore) Overwrite(ctx context.Context, path, id string, l domain.Listing) error {
	l.ID = ""
	if err := s.client.NewRef(path).Child(id).Set(ctx, l); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}
	return nil
}

func (s *FirebaseStore) Remove(ctx context.Context, path, id string) error {
	if err := s.client.NewRef(path).Child(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}
	return nil
}

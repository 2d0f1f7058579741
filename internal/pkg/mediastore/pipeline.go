package mediastore

import (
	"context"
	"log"
	"os"

	"vidtube/internal/pkg/apperr"
)

// ObjectStore is the remote half of the pipeline. *Store implements it.
type ObjectStore interface {
	PutFile(ctx context.Context, localPath string) (string, error)
}

// Pipeline moves a locally staged file into the object store. Whatever the
// upload outcome, the staged file is deleted exactly once: staged files must
// never outlive the call.
type Pipeline struct {
	store ObjectStore
}

func NewPipeline(store ObjectStore) *Pipeline {
	return &Pipeline{store: store}
}

// Upload transfers the file at stagedPath and returns its durable URL.
// An empty stagedPath means "no file provided" and returns ("", nil) with no
// I/O. A store failure returns a typed upload error carrying the cause.
func (p *Pipeline) Upload(ctx context.Context, stagedPath string) (string, error) {
	if stagedPath == "" {
		return "", nil
	}

	url, err := p.store.PutFile(ctx, stagedPath)

	if rmErr := os.Remove(stagedPath); rmErr != nil && !os.IsNotExist(rmErr) {
		log.Printf("mediastore: failed to remove staged file %s: %v", stagedPath, rmErr)
	}

	if err != nil {
		return "", apperr.Upload("File upload failed", err)
	}
	return url, nil
}

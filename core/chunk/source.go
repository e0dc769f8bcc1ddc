package chunk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"wordle-web/core/storage"

	"github.com/minio/minio-go/v7"
)

// Extension is appended to a chunk name to form its file or object name.
const Extension = ".html"

// ErrNotFound is returned when a source has no chunk under the given name.
var ErrNotFound = errors.New("chunk not found")

// Source fetches chunk contents by view name.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Fetch returns the raw chunk for the named view.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ObjectName returns the path of a chunk under prefix.
func ObjectName(prefix, name string) string {
	return path.Join(prefix, name+Extension)
}

// EmbedSource reads chunks from a file system, usually the embedded build
// output.
type EmbedSource struct {
	fsys   fs.FS
	prefix string
}

// NewEmbedSource creates a source reading <prefix>/<name>.html from fsys.
func NewEmbedSource(fsys fs.FS, prefix string) *EmbedSource {
	return &EmbedSource{fsys: fsys, prefix: prefix}
}

func (s *EmbedSource) Name() string {
	return SourceEmbed
}

func (s *EmbedSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, ObjectName(s.prefix, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk %s: %w", name, err)
	}
	return data, nil
}

// StorageSource reads chunks from an object storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source reading <prefix>/<name>.html from bucket.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *StorageSource) Name() string {
	return SourceStorage
}

func (s *StorageSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	objectName := ObjectName(s.prefix, name)

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get chunk %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, objectName)
		}
		return nil, fmt.Errorf("failed to read chunk %s: %w", objectName, err)
	}
	return data, nil
}

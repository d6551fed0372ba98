// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source opens benchmark tables stored locally or in Google
// Cloud Storage.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// IsGCS reports whether path names a Cloud Storage object.
func IsGCS(path string) bool {
	return strings.HasPrefix(path, gcsScheme)
}

// SplitGCS splits a "gs://bucket/object" path into its bucket and
// object names.
func SplitGCS(path string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(path, gcsScheme)
	bucket, object, ok := strings.Cut(rest, "/")
	if !IsGCS(path) || !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("malformed Cloud Storage path %q (want gs://bucket/object)", path)
	}
	return bucket, object, nil
}

// Open opens the table at path for reading. Paths beginning with
// "gs://" are read from Cloud Storage using a client configured with
// opts; everything else is a local file. If the table does not exist,
// the error satisfies errors.Is(err, fs.ErrNotExist).
func Open(ctx context.Context, path string, opts ...option.ClientOption) (io.ReadCloser, error) {
	if !IsGCS(path) {
		return os.Open(path)
	}

	bucket, object, err := SplitGCS(path)
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating Cloud Storage client: %w", err)
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return &gcsReader{r, client}, nil
}

// gcsReader closes its client along with the object.
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

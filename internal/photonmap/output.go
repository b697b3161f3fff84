package photonmap

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// Sink stores named artifacts in a local directory or in a blob bucket.
type Sink struct {
	dir    string
	bucket *blob.Bucket
}

func OpenSink(ctx context.Context, cfg OutputCfg) (*Sink, error) {
	if cfg.Bucket != "" {
		b, err := blob.OpenBucket(ctx, cfg.Bucket)
		if err != nil {
			return nil, errors.Wrapf(err, "open bucket %s", cfg.Bucket)
		}
		return &Sink{bucket: b}, nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output dir %s", dir)
	}
	return &Sink{dir: dir}, nil
}

// Write streams one artifact through fn. A failing fn leaves no blob behind.
func (s *Sink) Write(ctx context.Context, name string, fn func(io.Writer) error) error {
	if s.bucket != nil {
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()
		w, err := s.bucket.NewWriter(wctx, name, nil)
		if err != nil {
			return errors.Wrapf(err, "open blob %s", name)
		}
		if err := fn(w); err != nil {
			cancel()
			_ = w.Close()
			return errors.Wrapf(err, "write blob %s", name)
		}
		return errors.Wrapf(w.Close(), "close blob %s", name)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func (s *Sink) Close() error {
	if s.bucket != nil {
		return s.bucket.Close()
	}
	return nil
}

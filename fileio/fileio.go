// Package fileio opens inputs and creates outputs, which may be local files or GCS objects
// (gs://bucket/path/to/object). Names ending in .gz are gunzipped on the way in.
package fileio

import(
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const GCSPrefix = "gs://"

var ErrNotFound = errors.New("not found")

type Options struct {
	Anonymous bool // Talk to GCS without credentials; only works for public buckets
}

func (o Options)clientOptions() []option.ClientOption {
	if o.Anonymous { return []option.ClientOption{option.WithoutAuthentication()} }
	return nil
}

// {{{ IsGCS, SplitGCS, Base, ContentType

func IsGCS(name string) bool { return strings.HasPrefix(name, GCSPrefix) }

func SplitGCS(name string) (bucket, object string, err error) {
	if !IsGCS(name) { return "","",fmt.Errorf("'%s' is not a %s URL", name, GCSPrefix) }
	bits := strings.SplitN(strings.TrimPrefix(name, GCSPrefix), "/", 2)
	if len(bits) != 2 || bits[0] == "" || bits[1] == "" {
		return "","",fmt.Errorf("'%s' should look like %sbucket/object", name, GCSPrefix)
	}
	return bits[0], bits[1], nil
}

// Base is the last element of the name, for log messages.
func Base(name string) string {
	if IsGCS(name) { return path.Base(name) }
	return filepath.Base(name)
}

func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":  return "image/png"
	case ".pdf":  return "application/pdf"
	case ".csv":  return "text/csv"
	case ".json", ".geojson": return "application/json"
	case ".gz":   return "application/gzip"
	default:      return "application/octet-stream"
	}
}

// }}}

// multiCloser closes things in order, returning the first error
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}
func (mc *multiCloser)Close() error {
	var first error
	for _,c := range mc.closers {
		if err := c.Close(); err != nil && first == nil { first = err }
	}
	return first
}

// {{{ Open

func Open(ctx context.Context, name string, opts Options) (io.ReadCloser, error) {
	var rc io.ReadCloser
	closers := []io.Closer{}

	if IsGCS(name) {
		bucketName,objName,err := SplitGCS(name)
		if err != nil { return nil, err }

		client, err := storage.NewClient(ctx, opts.clientOptions()...)
		if err != nil { return nil, err }

		gcsReader,err := client.Bucket(bucketName).Object(objName).NewReader(ctx)
		if err != nil {
			client.Close()
			if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
				return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
			}
			return nil, fmt.Errorf("GCS-Open %s|%s: %v", bucketName, objName, err)
		}
		rc = gcsReader
		closers = append(closers, gcsReader, client)

	} else {
		f,err := os.Open(name)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		} else if err != nil {
			return nil, err
		}
		rc = f
		closers = append(closers, f)
	}

	if !strings.HasSuffix(strings.ToLower(name), ".gz") {
		return rc, nil
	}

	gzipReader,err := gzip.NewReader(rc)
	if err != nil {
		(&multiCloser{closers:closers}).Close()
		return nil, fmt.Errorf("Open+GZ %s: %v", name, err)
	}
	return &multiCloser{Reader:gzipReader, closers:append([]io.Closer{gzipReader}, closers...)}, nil
}

// }}}
// {{{ Create

// Create opens the named output for writing; nothing is visible (in GCS) until Close
// returns without error.
func Create(ctx context.Context, name string, opts Options) (io.WriteCloser, error) {
	if !IsGCS(name) {
		f,err := os.Create(name)
		if err != nil { return nil, err }
		return f,nil
	}

	bucketName,objName,err := SplitGCS(name)
	if err != nil { return nil, err }

	client, err := storage.NewClient(ctx, opts.clientOptions()...)
	if err != nil { return nil, err }

	w := client.Bucket(bucketName).Object(objName).NewWriter(ctx)
	w.ContentType = ContentType(name)

	return &multiCloser{Writer:w, closers:[]io.Closer{w, client}}, nil
}

// }}}
// {{{ ReadAll, WriteFile

func ReadAll(ctx context.Context, name string, opts Options) ([]byte, error) {
	rc,err := Open(ctx, name, opts)
	if err != nil { return nil, err }
	defer rc.Close()
	return io.ReadAll(rc)
}

func WriteFile(ctx context.Context, name string, data []byte, opts Options) error {
	wc,err := Create(ctx, name, opts)
	if err != nil { return err }
	if _,err := wc.Write(data); err != nil {
		wc.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return wc.Close()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}

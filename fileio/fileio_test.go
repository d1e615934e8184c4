package fileio

import(
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitGCS(t *testing.T) {
	tests := []struct{
		In             string
		Bucket, Object string
		OK             bool
	}{
		{"gs://my-bucket/logbook.csv",      "my-bucket", "logbook.csv",      true},
		{"gs://my-bucket/a/b/airports.csv", "my-bucket", "a/b/airports.csv", true},
		{"gs://my-bucket/",                 "", "", false},
		{"gs://my-bucket",                  "", "", false},
		{"/tmp/logbook.csv",                "", "", false},
	}

	for _,test := range tests {
		b,o,err := SplitGCS(test.In)
		if (err == nil) != test.OK {
			t.Errorf("%q: expected ok=%v, got err %v", test.In, test.OK, err)
		} else if b != test.Bucket || o != test.Object {
			t.Errorf("%q: expected %q,%q, got %q,%q", test.In, test.Bucket, test.Object, b, o)
		}
	}
}

func TestBaseAndContentType(t *testing.T) {
	if b := Base("gs://bucket/dir/map.png"); b != "map.png" {
		t.Errorf("got %q", b)
	}
	if c := ContentType("out/MAP.PNG"); c != "image/png" {
		t.Errorf("got %q", c)
	}
	if c := ContentType("out/map.pdf"); c != "application/pdf" {
		t.Errorf("got %q", c)
	}
}

func TestOpenMissing(t *testing.T) {
	_,err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), Options{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteThenRead(t *testing.T) {
	ctx := context.Background()
	name := filepath.Join(t.TempDir(), "out.csv")
	data := []byte("departure,arrival\nKSFO,KLAX\n")

	if err := WriteFile(ctx, name, data, Options{}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	back,err := ReadAll(ctx, name, Options{})
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Errorf("got %q", back)
	}
}

func TestOpenGzip(t *testing.T) {
	data := []byte("departure,arrival\nKSFO,KLAX\n")
	buf := bytes.Buffer{}
	gz := gzip.NewWriter(&buf)
	gz.Write(data)
	gz.Close()

	name := filepath.Join(t.TempDir(), "logbook.csv.gz")
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	back,err := ReadAll(context.Background(), name, Options{})
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Errorf("got %q", back)
	}
}

func TestOpenBadGzip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "junk.csv.gz")
	os.WriteFile(name, []byte("not gzip at all"), 0644)
	if _,err := Open(context.Background(), name, Options{}); err == nil {
		t.Errorf("expected an error for a bad gzip file")
	}
}

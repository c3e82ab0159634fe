package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var payload = []byte("Xcur\x10\x00\x00\x00\x00\x00\x01\x00\x00\x00\x00\x00")

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func zstded(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(data, nil)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want Compression
	}{
		{"plain", payload, None},
		{"gzip", gzipped(t, payload), Gzip},
		{"zstd", zstded(t, payload), Zstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, c, err := Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if c != tt.want {
				t.Errorf("compression = %v, want %v", c, tt.want)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("Decode() = %q, want %q", got, payload)
			}
		})
	}
}

func TestDecode_CorruptGzip(t *testing.T) {
	raw := gzipped(t, payload)
	raw = raw[:len(raw)-6]

	if _, c, err := Decode(raw); err == nil {
		t.Error("Decode() error = nil for truncated gzip")
	} else if c != Gzip {
		t.Errorf("compression = %v, want gzip", c)
	}
}

func TestDetect_Empty(t *testing.T) {
	if Detect(nil) != None {
		t.Error("Detect(nil) should be None")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "left_ptr.gz")
	if err := os.WriteFile(path, gzipped(t, payload), 0o600); err != nil {
		t.Fatal(err)
	}

	data, c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c != Gzip || !bytes.Equal(data, payload) {
		t.Errorf("Load() = %q (%v), want payload (gzip)", data, c)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !os.IsNotExist(err) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

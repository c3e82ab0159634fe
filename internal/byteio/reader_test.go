package byteio

import (
	"errors"
	"testing"
)

func TestReader_ReadU32(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x01, 0x02, 0x03, 0x04})

	le, err := r.ReadU32LE()
	if err != nil {
		t.Fatalf("ReadU32LE() error = %v", err)
	}
	if le != 0x04030201 {
		t.Errorf("ReadU32LE() = %#x, want 0x04030201", le)
	}

	be, err := r.ReadU32BE()
	if err != nil {
		t.Fatalf("ReadU32BE() error = %v", err)
	}
	if be != 0x01020304 {
		t.Errorf("ReadU32BE() = %#x, want 0x01020304", be)
	}

	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReader_TruncatedLeavesCursor(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6})
	if _, err := r.ReadU32LE(); err != nil {
		t.Fatalf("ReadU32LE() error = %v", err)
	}

	tests := []struct {
		name string
		read func() error
	}{
		{"ReadU32LE", func() error { _, err := r.ReadU32LE(); return err }},
		{"ReadU32BE", func() error { _, err := r.ReadU32BE(); return err }},
		{"ReadBytes", func() error { _, err := r.ReadBytes(3); return err }},
		{"ReadBytesNegative", func() error { _, err := r.ReadBytes(-1); return err }},
		{"Skip", func() error { return r.Skip(5) }},
		{"ReadU32sLE", func() error { return r.ReadU32sLE(make([]uint32, 1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("error = %v, want ErrTruncated", err)
			}
			if r.Offset() != 4 {
				t.Errorf("Offset() = %d after failed read, want 4", r.Offset())
			}
		})
	}
}

func TestReader_SeekTo(t *testing.T) {
	r := NewReader(make([]byte, 8))

	tests := []struct {
		offset  int64
		wantErr bool
	}{
		{0, false},
		{4, false},
		{8, false},
		{9, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := r.SeekTo(tt.offset)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidOffset) {
				t.Errorf("SeekTo(%d) error = %v, want ErrInvalidOffset", tt.offset, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SeekTo(%d) error = %v", tt.offset, err)
		}
		if int64(r.Offset()) != tt.offset {
			t.Errorf("Offset() = %d, want %d", r.Offset(), tt.offset)
		}
	}
}

func TestReader_ReadBytesAliases(t *testing.T) {
	data := []byte("Xcursor")
	r := NewReader(data)
	_ = r.Skip(1)

	b, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes() error = %v", err)
	}
	if string(b) != "cur" {
		t.Errorf("ReadBytes() = %q, want %q", b, "cur")
	}
	if cap(b) != 3 {
		t.Errorf("cap = %d, want 3 (append must not clobber the buffer)", cap(b))
	}
}

func TestReader_ReadU32sLE(t *testing.T) {
	r := NewReader([]byte{
		0xff, 0x00, 0x00, 0x80,
		0x01, 0x02, 0x03, 0x04,
	})
	dst := make([]uint32, 2)
	if err := r.ReadU32sLE(dst); err != nil {
		t.Fatalf("ReadU32sLE() error = %v", err)
	}
	if dst[0] != 0x800000ff || dst[1] != 0x04030201 {
		t.Errorf("ReadU32sLE() = %#x, want [0x800000ff 0x4030201]", dst)
	}
}

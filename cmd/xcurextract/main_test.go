package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cursorFile builds a one-frame 2x2 cursor with nominal size 2 and delay 50.
func cursorFile(t *testing.T) string {
	t.Helper()

	var b bytes.Buffer
	put := func(vals ...uint32) {
		for _, v := range vals {
			_ = binary.Write(&b, binary.LittleEndian, v)
		}
	}
	put(0x72756358, 16, 0x00010000, 1) // header
	put(0xfffd0002, 2, 28)             // toc
	put(36, 0xfffd0002, 2, 1)          // chunk header
	put(2, 2, 1, 1, 50)                // width, height, xhot, yhot, delay
	put(0xff0000ff, 0, 0x80800000, 0xffffffff)

	path := filepath.Join(t.TempDir(), "hand2")
	if err := os.WriteFile(path, b.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Extract(t *testing.T) {
	input := cursorFile(t)
	out := filepath.Join(t.TempDir(), "out")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{input, out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}

	wantLines := []string{
		"Found 1 frame(s) in cursor file",
		"Saved frame 1: 2x2 (size=2, delay=50ms) -> " + filepath.Join(out, "frame_001.png"),
		"Successfully extracted cursor frames to '" + out + "'",
	}
	got := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if strings.Join(got, "\n") != strings.Join(wantLines, "\n") {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout.String(), strings.Join(wantLines, "\n"))
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
	for _, name := range []string{"frame_001.png", "cursor_info.txt"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestRun_Format(t *testing.T) {
	out := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-format", "bmp", "-workers", "2", cursorFile(t), out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(out, "frame_001.bmp")); err != nil {
		t.Errorf("frame_001.bmp missing: %v", err)
	}
}

func TestRun_Info(t *testing.T) {
	input := cursorFile(t)

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-info", input}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "1\t2x2\t2\t2\t1\t1\t50\n") {
		t.Errorf("stdout missing frame row:\n%s", stdout.String())
	}
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage")
	if err := os.WriteFile(garbage, []byte("not a cursor"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", nil, "Usage:"},
		{"one arg", []string{"x"}, "Usage:"},
		{"missing input", []string{filepath.Join(dir, "nope"), dir}, "Error:"},
		{"malformed", []string{garbage, dir}, "bad magic"},
		{"bad format", []string{"-format", "gif", garbage, dir}, "unsupported format"},
		{"bad flag", []string{"-nope"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "cursor_info.txt") {
		t.Errorf("usage text missing output description:\n%s", stderr.String())
	}
}

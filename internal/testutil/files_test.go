package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteExperiment(t *testing.T) {
	root := t.TempDir()
	expDir := WriteExperiment(t, root, 10, 1, []int32{1, -2}, []int32{7})

	raw, err := os.ReadFile(filepath.Join(expDir, "fid"))
	if err != nil {
		t.Fatalf("read fid: %v", err)
	}
	if len(raw) != 8 {
		t.Fatalf("fid size = %d, want 8", len(raw))
	}
	if got := int32(binary.NativeEndian.Uint32(raw[4:])); got != -2 {
		t.Fatalf("second word = %d, want -2", got)
	}

	proc, err := os.ReadFile(filepath.Join(root, "10", "pdata", "1", "1r"))
	if err != nil {
		t.Fatalf("read 1r: %v", err)
	}
	if len(proc) != 4 {
		t.Fatalf("1r size = %d, want 4", len(proc))
	}
}

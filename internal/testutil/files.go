package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// WriteInt32File writes data as headerless int32 words in the given byte
// order, creating parent directories as needed.
func WriteInt32File(t *testing.T, path string, data []int32, order binary.ByteOrder) {
	t.Helper()
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		order.PutUint32(buf[4*i:], uint32(v))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteExperiment lays out a Bruker-style experiment below root in host byte
// order: <root>/<expNo>/fid and, if processed is non-nil,
// <root>/<expNo>/pdata/<procNo>/1r. It returns the experiment directory.
func WriteExperiment(t *testing.T, root string, expNo, procNo int, raw, processed []int32) string {
	t.Helper()
	expDir := filepath.Join(root, strconv.Itoa(expNo))
	WriteInt32File(t, filepath.Join(expDir, "fid"), raw, binary.NativeEndian)
	if processed != nil {
		WriteInt32File(t, filepath.Join(expDir, "pdata", strconv.Itoa(procNo), "1r"), processed, binary.NativeEndian)
	}
	return expDir
}

// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package checksum

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestDigest(t *testing.T) {
	if got := Digest(nil); got != emptySHA256 {
		t.Errorf("Digest(nil) = %s, want %s", got, emptySHA256)
	}
	if got := DigestString(""); got != emptySHA256 {
		t.Errorf("DigestString(\"\") = %s, want %s", got, emptySHA256)
	}
	if Digest([]byte("1.2.3-rc1")) == Digest([]byte("1.2.3-rc2")) {
		t.Error("different content should produce different digests")
	}
	if len(DigestString("1.2.3-rc1")) != 64 {
		t.Error("digest should be 64 hex characters")
	}
}

func TestFileDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "version.txt")
	if err := os.WriteFile(path, []byte("1.2.3-beta007"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := FileDigest(context.Background(), path)
	if err != nil {
		t.Fatalf("FileDigest failed: %v", err)
	}
	if want := DigestString("1.2.3-beta007"); got != want {
		t.Errorf("FileDigest() = %s, want %s", got, want)
	}
}

func TestFileDigest_MissingFile(t *testing.T) {
	_, err := FileDigest(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileDigest_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FileDigest(ctx, "/does/not/matter")
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

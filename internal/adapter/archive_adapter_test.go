package adapter

import (
	"archive/tar"
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/klauspost/compress/gzip"
)

func TestLocalArchiveAdapter_RoundTrip(t *testing.T) {
	for _, format := range []m.ArchiveFormat{m.FormatZip, m.FormatTarGz} {
		t.Run(string(format), func(t *testing.T) {
			adapter := NewLocalArchiveAdapter(6)
			root := t.TempDir()

			src := filepath.Join(root, "src")
			mustMkdir(t, filepath.Join(src, "nested"))
			writeTestFile(t, filepath.Join(src, "top.txt"), "top")
			writeTestFile(t, filepath.Join(src, "nested", "child.txt"), "child")

			archive := filepath.Join(root, "out"+format.Extension())
			if err := adapter.Create(context.Background(), format, m.Path(src), m.Path(archive)); err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			dest := filepath.Join(root, "dest")
			mustMkdir(t, dest)

			if err := adapter.Extract(context.Background(), format, m.Path(archive), m.Path(dest)); err != nil {
				t.Fatalf("Extract() error = %v", err)
			}

			if got := readTestFile(t, filepath.Join(dest, "top.txt")); got != "top" {
				t.Fatalf("top.txt = %q", got)
			}

			if got := readTestFile(t, filepath.Join(dest, "nested", "child.txt")); got != "child" {
				t.Fatalf("nested/child.txt = %q", got)
			}

			if _, err := os.Stat(filepath.Join(dest, "src")); !os.IsNotExist(err) {
				t.Fatalf("archive should hold the directory contents, not the directory itself")
			}
		})
	}
}

func TestLocalArchiveAdapter_RejectsEscapingEntries(t *testing.T) {
	root := t.TempDir()
	archive := filepath.Join(root, "evil.zip")

	file, err := os.Create(archive)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	writer := zip.NewWriter(file)

	entry, err := writer.Create("../escaped.txt")
	if err != nil {
		t.Fatalf("zip Create() error = %v", err)
	}

	if _, err := entry.Write([]byte("gotcha")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("zip Close() error = %v", err)
	}

	if err := file.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	dest := filepath.Join(root, "dest")
	mustMkdir(t, dest)

	err = NewLocalArchiveAdapter(6).Extract(context.Background(), m.FormatZip, m.Path(archive), m.Path(dest))
	if !errors.Is(err, ErrUnsafeArchiveEntry) {
		t.Fatalf("Extract() error = %v, want ErrUnsafeArchiveEntry", err)
	}

	if _, err := os.Stat(filepath.Join(root, "escaped.txt")); !os.IsNotExist(err) {
		t.Fatalf("escaping entry was written")
	}
}

type tarEntry struct {
	name     string
	typeflag byte
	linkname string
	body     string
}

func writeTarGz(t *testing.T, path string, entries []tarEntry) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	gzWriter := gzip.NewWriter(file)
	tarWriter := tar.NewWriter(gzWriter)

	for _, entry := range entries {
		header := &tar.Header{
			Name:     entry.name,
			Typeflag: entry.typeflag,
			Linkname: entry.linkname,
			Mode:     0o644,
			Size:     int64(len(entry.body)),
		}

		if err := tarWriter.WriteHeader(header); err != nil {
			t.Fatalf("WriteHeader(%s) error = %v", entry.name, err)
		}

		if entry.body != "" {
			if _, err := tarWriter.Write([]byte(entry.body)); err != nil {
				t.Fatalf("Write(%s) error = %v", entry.name, err)
			}
		}
	}

	if err := tarWriter.Close(); err != nil {
		t.Fatalf("tar Close() error = %v", err)
	}

	if err := gzWriter.Close(); err != nil {
		t.Fatalf("gzip Close() error = %v", err)
	}

	if err := file.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestLocalArchiveAdapter_RejectsEscapingSymlinks(t *testing.T) {
	cases := []struct {
		name    string
		entries []tarEntry
	}{
		{
			name: "relative link out of destination",
			entries: []tarEntry{
				{name: "link", typeflag: tar.TypeSymlink, linkname: "../outside"},
				{name: "link/owned.txt", typeflag: tar.TypeReg, body: "gotcha"},
			},
		},
		{
			name: "absolute link",
			entries: []tarEntry{
				{name: "link", typeflag: tar.TypeSymlink, linkname: "/"},
			},
		},
		{
			name: "nested link climbing out",
			entries: []tarEntry{
				{name: "a/", typeflag: tar.TypeDir},
				{name: "a/link", typeflag: tar.TypeSymlink, linkname: "../../outside"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			outside := filepath.Join(root, "outside")
			mustMkdir(t, outside)

			archive := filepath.Join(root, "evil.tar.gz")
			writeTarGz(t, archive, tc.entries)

			dest := filepath.Join(root, "dest")
			mustMkdir(t, dest)

			err := NewLocalArchiveAdapter(6).Extract(context.Background(), m.FormatTarGz, m.Path(archive), m.Path(dest))
			if !errors.Is(err, ErrUnsafeArchiveEntry) {
				t.Fatalf("Extract() error = %v, want ErrUnsafeArchiveEntry", err)
			}

			if _, err := os.Stat(filepath.Join(outside, "owned.txt")); !os.IsNotExist(err) {
				t.Fatalf("entry was written outside the destination")
			}
		})
	}
}

func TestLocalArchiveAdapter_NeverWritesThroughExistingSymlink(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "outside")
	mustMkdir(t, outside)

	dest := filepath.Join(root, "dest")
	mustMkdir(t, dest)

	if err := os.Symlink(outside, filepath.Join(dest, "link")); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}

	archive := filepath.Join(root, "plain.tar.gz")
	writeTarGz(t, archive, []tarEntry{
		{name: "link/owned.txt", typeflag: tar.TypeReg, body: "gotcha"},
	})

	err := NewLocalArchiveAdapter(6).Extract(context.Background(), m.FormatTarGz, m.Path(archive), m.Path(dest))
	if !errors.Is(err, ErrUnsafeArchiveEntry) {
		t.Fatalf("Extract() error = %v, want ErrUnsafeArchiveEntry", err)
	}

	if _, err := os.Stat(filepath.Join(outside, "owned.txt")); !os.IsNotExist(err) {
		t.Fatalf("entry was written through the symlink")
	}
}

func TestLocalArchiveAdapter_KeepsLinksInsideDestination(t *testing.T) {
	root := t.TempDir()
	archive := filepath.Join(root, "ok.tar.gz")
	writeTarGz(t, archive, []tarEntry{
		{name: "docs/", typeflag: tar.TypeDir},
		{name: "docs/readme.txt", typeflag: tar.TypeReg, body: "hello"},
		{name: "readme", typeflag: tar.TypeSymlink, linkname: "docs/readme.txt"},
	})

	dest := filepath.Join(root, "dest")
	mustMkdir(t, dest)

	if err := NewLocalArchiveAdapter(6).Extract(context.Background(), m.FormatTarGz, m.Path(archive), m.Path(dest)); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "readme"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "hello" {
		t.Fatalf("readme = %q, want %q", got, "hello")
	}
}

func TestSafeJoin(t *testing.T) {
	dest := filepath.Join(string(os.PathSeparator), "tmp", "dest")

	cases := []struct {
		name    string
		entry   string
		wantErr bool
	}{
		{"plain", "a.txt", false},
		{"nested", "a/b/c.txt", false},
		{"dot", "./a.txt", false},
		{"parent", "../a.txt", true},
		{"sneaky", "a/../../b.txt", true},
		{"sibling prefix", "../dest2/a.txt", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := safeJoin(dest, tc.entry)
			if (err != nil) != tc.wantErr {
				t.Fatalf("safeJoin(%q) error = %v, wantErr %v", tc.entry, err, tc.wantErr)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	cases := []struct {
		dest, path string
		want       bool
	}{
		{".", "a.txt", true},
		{".", ".", true},
		{".", "../a.txt", false},
		{"/tmp/dest", "/tmp/dest/a/b", true},
		{"/tmp/dest", "/tmp/dest2", false},
		{"/tmp/dest", "/tmp", false},
	}

	for _, tc := range cases {
		if got := within(tc.dest, tc.path); got != tc.want {
			t.Errorf("within(%q, %q) = %v, want %v", tc.dest, tc.path, got, tc.want)
		}
	}
}

package extractor

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadTxt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	content := "INTRODUCTION\nSome plain text document.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ext := New()
	got, err := ext.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != content {
		t.Errorf("Read() = %q, want %q", got, content)
	}
}

func TestReadUnsupported(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"csv file", "data.csv"},
		{"no extension", "README"},
		{"image", "photo.png"},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ext.Read(tt.file)
			var ufe *UnsupportedFormatError
			if !errors.As(err, &ufe) {
				t.Fatalf("Read() error = %v, want UnsupportedFormatError", err)
			}
		})
	}
}

func TestReadTxtMissingFile(t *testing.T) {
	ext := New()
	if _, err := ext.Read(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Read() should fail for missing file")
	}
}

func TestReadDocx(t *testing.T) {
	const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>   </w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	path := writeDocxFixture(t, documentXML)

	ext := New()
	got, err := ext.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := "First paragraph.\nSecond paragraph."
	if got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestReadDocxMissingDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<x/>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ext := New()
	if _, err := ext.Read(path); err == nil {
		t.Error("Read() should fail when word/document.xml is absent")
	}
}

func writeDocxFixture(t *testing.T, documentXML string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/prepmate/backend/internal/utils"
)

const docxHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const docxFooter = `</w:body></w:document>`

// buildDocx assembles a minimal .docx archive with one paragraph per
// entry.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var doc strings.Builder
	doc.WriteString(docxHeader)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(docxFooter)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(doc.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextDocx(t *testing.T) {
	got, err := Text(buildDocx(t, "Hello world"), "resume.docx")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "Hello world" {
		t.Errorf("Text() = %q, want %q", got, "Hello world")
	}
}

func TestTextDocxMultipleParagraphs(t *testing.T) {
	got, err := Text(buildDocx(t, "First", "Second", "Third"), "cv.docx")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	want := "First\nSecond\nThird"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTextFailures(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
		wantMsg  string
	}{
		{
			name:     "unsupported extension",
			data:     []byte("plain text resume"),
			filename: "resume.txt",
			wantMsg:  "Unsupported file format",
		},
		{
			name:     "unsupported with no extension",
			data:     []byte{0x25, 0x50, 0x44, 0x46},
			filename: "resume",
			wantMsg:  "Unsupported file format",
		},
		{
			name:     "docx with no text runs",
			data:     nil, // filled below
			filename: "empty.docx",
			wantMsg:  "Could not extract text from the resume",
		},
		{
			name:     "docx that is not a zip",
			data:     []byte("not a zip archive"),
			filename: "broken.docx",
			wantMsg:  "Could not extract text from the resume",
		},
		{
			name:     "pdf with broken structure",
			data:     []byte("%PDF-1.4 garbage"),
			filename: "broken.pdf",
			wantMsg:  "Error parsing PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data
			if tt.name == "docx with no text runs" {
				data = buildDocx(t)
			}

			_, err := Text(data, tt.filename)
			if err == nil {
				t.Fatalf("Text() expected error containing %q, got nil", tt.wantMsg)
			}
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Errorf("Text() error code = %v, want INVALID_ARGUMENT", err)
			}
			if !strings.Contains(utils.Message(err), tt.wantMsg) {
				t.Errorf("Text() error message = %q, want it to contain %q", utils.Message(err), tt.wantMsg)
			}
		})
	}
}

// The sentinel is a failure signal, never usable content: a document
// whose entire text equals the sentinel must still fail.
func TestTextSentinelContentRejected(t *testing.T) {
	_, err := Text(buildDocx(t, Sentinel), "tricky.docx")
	if err == nil {
		t.Fatal("Text() accepted sentinel-valued content")
	}
	if !strings.Contains(utils.Message(err), "Could not extract text from the resume") {
		t.Errorf("Text() error = %v, want sentinel rejection", err)
	}
}

func TestTextDocxWhitespaceOnly(t *testing.T) {
	_, err := Text(buildDocx(t, "   ", "  "), "blank.docx")
	if err == nil {
		t.Fatal("Text() accepted whitespace-only document")
	}
}

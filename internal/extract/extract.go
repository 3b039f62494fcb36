// Package extract recovers plain text from uploaded resume binaries.
// Only PDF and DOCX are supported; extraction failure is signalled
// through the fixed sentinel string, which callers must treat as a
// failure and never as usable content.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/prepmate/backend/internal/utils"
)

// Sentinel substituted when a supported document yields no text.
const Sentinel = "Could not extract text."

// Text converts an uploaded binary into trimmed plain text. The
// declared filename picks the parser; unsupported extensions are
// rejected before any bytes are read.
func Text(data []byte, filename string) (string, error) {
	const op = "extract.Text"

	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		text, err = docxText(data)
		text = strings.TrimSpace(text)
		if err != nil || text == "" {
			text = Sentinel
		}
	case ".pdf":
		text, err = pdfText(data)
		if err != nil {
			return "", utils.E(utils.CodeInvalidArgument, op, "Error parsing PDF: "+err.Error(), err)
		}
		if strings.TrimSpace(text) == "" {
			text = Sentinel
		}
	default:
		return "", utils.E(utils.CodeInvalidArgument, op, "Unsupported file format", nil)
	}

	// Both failure checks are kept in this order: the empty check can
	// only trip if the sentinel itself were blank, but the original
	// pipeline performs both and the sentinel comparison is the one
	// callers rely on.
	if strings.TrimSpace(text) == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "No readable text extracted from resume", nil)
	}
	if text == Sentinel {
		return "", utils.E(utils.CodeInvalidArgument, op, "Could not extract text from the resume", nil)
	}

	return strings.TrimSpace(text), nil
}

// pdfText walks every page and joins the recovered fragments with
// single spaces. The page count exhausting is the termination signal.
func pdfText(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs; surface those as
	// structural errors like any other.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var fragments []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		s, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		if s != "" {
			fragments = append(fragments, s)
		}
	}
	return strings.Join(fragments, " "), nil
}

// docxText unzips the archive in memory and collects the text runs of
// word/document.xml, one line per paragraph.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}
	defer doc.Close()

	var (
		b      strings.Builder
		inText bool
	)
	dec := xml.NewDecoder(doc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

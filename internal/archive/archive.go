// Package archive opens Aozora Bunko ZIP downloads in memory and decodes
// their text payload from Shift_JIS.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/hyperifyio/aozoracorpus/internal/extract"
)

// ErrNoPayload indicates the archive holds neither a .txt nor a .html
// entry. Callers treat it as "this source produced no text".
var ErrNoPayload = errors.New("archive contains no text payload")

// ExtractText opens data as a ZIP archive, picks the first entry named
// *.txt, and returns its contents decoded from Shift_JIS. Archives that
// ship only an XHTML rendition fall back to the first *.html entry, whose
// readable text is extracted. Invalid byte sequences are dropped, never
// surfaced as an error.
func ExtractText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	if f := firstEntry(zr, ".txt"); f != nil {
		return readShiftJIS(f)
	}
	if f := firstEntry(zr, ".html"); f != nil {
		page, err := readShiftJIS(f)
		if err != nil {
			return "", err
		}
		return extract.FromHTML([]byte(page)).Text, nil
	}
	return "", ErrNoPayload
}

func firstEntry(zr *zip.Reader, suffix string) *zip.File {
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, suffix) {
			return f
		}
	}
	return nil
}

// readShiftJIS decodes one entry. The Shift_JIS decoder substitutes
// U+FFFD for malformed input instead of failing; those substitutions are
// stripped afterwards, which matches a drop-on-invalid policy because
// valid Shift_JIS cannot encode U+FFFD itself.
func readShiftJIS(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	decoded, err := io.ReadAll(transform.NewReader(rc, japanese.ShiftJIS.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decode entry %s: %w", f.Name, err)
	}
	return strings.ReplaceAll(string(decoded), "�", ""), nil
}

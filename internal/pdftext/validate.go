package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

var pdfMagic = []byte("%PDF-")

// Validate sniffs the file header before extraction so obviously wrong
// inputs fail at the boundary with a clear message.
func Validate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil || !bytes.Equal(head, pdfMagic) {
		return fmt.Errorf("not a PDF file: %s", path)
	}
	return nil
}

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const utf8BOM = "\ufeff"

var csvHeader = []string{"Author", "Rating", "Date", "Content"}

// writeReviewsCSV writes reviews to path, creating parent directories as
// needed.
func writeReviewsCSV(path string, reviews []review) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodeReviewsCSV(f, reviews); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// encodeReviewsCSV writes a BOM-prefixed UTF-8 CSV so spreadsheet tools
// detect the encoding.
func encodeReviewsCSV(w io.Writer, reviews []review) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range reviews {
		if err := cw.Write([]string{r.Author, r.Rating, r.Date, r.Content}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

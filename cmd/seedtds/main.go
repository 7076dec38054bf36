// Command seedtds converts the TDS section rate master Excel file into a
// SQL seed file.
// Usage: go run ./cmd/seedtds
// Output: db/seeds/tds_sections.sql
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type sectionEntry struct {
	section   string
	category  string
	rate      float64
	threshold float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "TDS Rate Chart FY 2025-26.xlsx"
	outPath := "db/seeds/tds_sections.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseRateSheet(f)
	if err != nil {
		return fmt.Errorf("parse rate sheet: %w", err)
	}
	log.Printf("rate sheet: %d entries", len(entries))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	var b strings.Builder
	b.WriteString("-- TDS section rate seed data generated from Excel.\n")
	fmt.Fprintf(&b, "-- %d entries.\n", len(entries))
	b.WriteString("-- Apply with: psql $DATABASE_URL -f db/seeds/tds_sections.sql\n")
	b.WriteString("BEGIN;\n\n")
	b.WriteString("INSERT INTO tds_sections (section, category, rate, threshold) VALUES\n")

	for i := range entries {
		e := &entries[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %.2f, %.2f)",
			escapeSQL(e.section), escapeSQL(e.category), e.rate, e.threshold)
	}

	b.WriteString("\nON CONFLICT (section, category) DO UPDATE SET rate = EXCLUDED.rate, threshold = EXCLUDED.threshold;\n")
	b.WriteString("\nCOMMIT;\n")

	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}

	log.Printf("Generated %d entries in %s", len(entries), outPath)
	return nil
}

// parseRateSheet reads the first sheet of the rate chart.
// Columns: A(0)=section, B(1)=deductee category, C(2)=rate (percentage
// formatted), D(3)=threshold. Data starts at row index 2.
func parseRateSheet(f *excelize.File) ([]sectionEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []sectionEntry
	for i := 2; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 4 {
			continue
		}

		section := strings.TrimSpace(cellVal(row, 0))
		category := strings.ToLower(strings.TrimSpace(cellVal(row, 1)))
		if section == "" {
			continue
		}

		rateStr := strings.TrimSuffix(strings.TrimSpace(cellVal(row, 2)), "%")
		var rate float64
		if _, serr := fmt.Sscanf(rateStr, "%f", &rate); serr != nil {
			continue
		}

		var threshold float64
		thresholdStr := strings.ReplaceAll(strings.TrimSpace(cellVal(row, 3)), ",", "")
		if thresholdStr != "" {
			if _, serr := fmt.Sscanf(thresholdStr, "%f", &threshold); serr != nil {
				continue
			}
		}

		key := section + "|" + category
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, sectionEntry{
			section:   section,
			category:  category,
			rate:      rate,
			threshold: threshold,
		})
	}
	return entries, nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

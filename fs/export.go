package fs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/patdoc"
)

// maxListColumns caps how many entries of a list field are exported as
// separate CSV columns.
const maxListColumns = 5

// ExportCSV flattens every record under recordsDir into a single CSV
// table written to w. List fields (assignees, inventors, cited-by)
// become numbered columns sized to the widest record, capped at
// maxListColumns.
func ExportCSV(recordsDir string, w io.Writer) error {
	docs, err := readRecordsDir(recordsDir)
	if err != nil {
		return err
	}

	assigneeCols := listWidth(docs, func(d *patdoc.PatentDocument) int { return len(d.AssigneeNames) })
	inventorCols := listWidth(docs, func(d *patdoc.PatentDocument) int { return len(d.InventorNames) })
	citedByCols := listWidth(docs, func(d *patdoc.PatentDocument) int { return len(d.CitedBy) })

	header := []string{"patent_number", "google_patent_url", "title"}
	header = appendListHeader(header, "assignee", assigneeCols)
	header = appendListHeader(header, "inventor", inventorCols)
	header = append(header, "priority_date", "filing_date", "publication_date", "grant_date", "claim_count")
	header = appendListHeader(header, "cited_by", citedByCols)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, doc := range docs {
		row := []string{doc.Identifier, GooglePatentURL(doc.Identifier), doc.Title}
		row = appendListValues(row, doc.AssigneeNames, assigneeCols)
		row = appendListValues(row, doc.InventorNames, inventorCols)
		row = append(row, doc.PriorityDate, doc.FilingDate, doc.PublicationDate, doc.GrantDate, strconv.Itoa(len(doc.Claims)))
		row = appendListValues(row, doc.CitedBy, citedByCols)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func listWidth(docs []*patdoc.PatentDocument, length func(*patdoc.PatentDocument) int) int {
	width := 0
	for _, doc := range docs {
		if n := length(doc); n > width {
			width = n
		}
	}
	if width > maxListColumns {
		width = maxListColumns
	}
	return width
}

func appendListHeader(header []string, name string, width int) []string {
	for i := 1; i <= width; i++ {
		header = append(header, fmt.Sprintf("%s_%d", name, i))
	}
	return header
}

func appendListValues(row []string, values []string, width int) []string {
	for i := 0; i < width; i++ {
		if i < len(values) {
			row = append(row, values[i])
		} else {
			row = append(row, "")
		}
	}
	return row
}

// readRecordsDir decodes every record file in dir, in lexical filename
// order. Files without a recognized record extension are ignored.
func readRecordsDir(dir string) ([]*patdoc.PatentDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []*patdoc.PatentDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := FormatForPath(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		doc, err := DecodeRecord(data, format)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

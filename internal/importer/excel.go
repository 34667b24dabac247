// Package importer loads a product catalog from a spreadsheet, one
// product per row. Rows that collide with an already-registered barcode
// are skipped so re-importing the same file is harmless.
package importer

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/franpopo/EasyStock/internal/database"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumns reports a spreadsheet whose header row lacks the
// required columns.
var ErrMissingColumns = errors.New("spreadsheet must contain columns: name, stock, price (optional: barcode)")

// Summary counts what happened to each row of the file.
type Summary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportProducts reads the first sheet of an xlsx file and adds every row
// as a product of the given branch. The header row must contain "name",
// "stock" and "price" (any casing); "barcode" is optional. Rows with a
// duplicate barcode or unparsable numbers are counted as skipped without
// aborting the batch; a storage fault aborts.
func ImportProducts(r io.Reader, branchID uint) (*Summary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrMissingColumns
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "stock", "price"} {
		if _, ok := cols[required]; !ok {
			return nil, ErrMissingColumns
		}
	}
	barcodeCol, hasBarcode := cols["barcode"]

	cell := func(row []string, idx int) string {
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var summary Summary
	for _, row := range rows[1:] {
		name := cell(row, cols["name"])
		stock, stockErr := strconv.Atoi(cell(row, cols["stock"]))
		price, priceErr := strconv.ParseFloat(cell(row, cols["price"]), 64)
		if name == "" || stockErr != nil || priceErr != nil {
			summary.Skipped++
			continue
		}

		var barcode *string
		if hasBarcode {
			if code := cell(row, barcodeCol); code != "" {
				barcode = &code
			}
		}

		_, err := database.AddProduct(name, stock, price, branchID, barcode)
		if errors.Is(err, database.ErrDuplicateBarcode) {
			summary.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		summary.Imported++
	}
	return &summary, nil
}

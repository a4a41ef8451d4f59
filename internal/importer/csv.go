// Package importer parses the admin bulk-import CSV into products.
package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/example/kashvi/internal/models"
)

// ErrMissingHeader is returned when the file has no header row.
var ErrMissingHeader = errors.New("csv file has no header row")

// Result reports what a parse run produced.
type Result struct {
	Products []models.Product
	Skipped  int
}

// ParseProducts reads a CSV with a header row (name, description, price,
// stock, sizes, category, dataAiHint, trending, image). Column order is taken
// from the header. Rows missing name, price, category or image are skipped
// rather than failing the whole file; the sizes field is comma-separated.
func ParseProducts(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, ErrMissingHeader
		}
		return Result{}, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var result Result
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed row is a skip, not a failure.
			result.Skipped++
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		name := field("name")
		category := field("category")
		image := field("image")
		price, priceErr := strconv.ParseFloat(field("price"), 64)

		if name == "" || category == "" || image == "" || priceErr != nil {
			result.Skipped++
			continue
		}

		stock, _ := strconv.Atoi(field("stock"))
		trending, _ := strconv.ParseBool(field("trending"))

		product := models.Product{
			Name:        name,
			Description: field("description"),
			Price:       price,
			Stock:       stock,
			Category:    category,
			DataAiHint:  field("dataAiHint"),
			Trending:    trending,
			Image:       image,
			Sizes:       splitSizes(field("sizes")),
		}
		result.Products = append(result.Products, product)
	}

	return result, nil
}

func splitSizes(value string) []string {
	if value == "" {
		return nil
	}
	var sizes []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sizes = append(sizes, trimmed)
		}
	}
	return sizes
}

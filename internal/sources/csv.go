package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CSVSource parses the generic three-column export most banks can produce:
// date, amount, description. An optional header row is skipped when neither
// its date nor its amount field parses as data.
type CSVSource struct {
	dateLayout string
}

// NewCSVSource creates a CSV adapter using the given date layout
// (Go reference-time format, e.g. "2006-01-02").
func NewCSVSource(dateLayout string) *CSVSource {
	return &CSVSource{dateLayout: dateLayout}
}

// Ensure CSVSource implements Source
var _ Source = (*CSVSource)(nil)

func (s *CSVSource) Name() string {
	return "csv"
}

func looksNumeric(field string) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(field))
	return err == nil
}

// Parse reads the whole export before returning anything: one bad line
// invalidates the batch.
func (s *CSVSource) Parse(ctx context.Context, r io.Reader) ([]dto.StatementRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = 3

	var records []dto.StatementRecord
	line := 0
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		date, err := time.Parse(s.dateLayout, strings.TrimSpace(row[0]))
		if err != nil {
			// A header row has a non-numeric amount column too; a first data
			// row with just a typo'd date must fail the batch, not vanish.
			if line == 1 && !looksNumeric(row[1]) {
				continue
			}
			return nil, fmt.Errorf("line %d: malformed date %q: %w", line, row[0], err)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed amount %q: %w", line, row[1], err)
		}

		description := strings.TrimSpace(row[2])
		if description == "" {
			return nil, fmt.Errorf("line %d: empty description", line)
		}

		records = append(records, dto.StatementRecord{
			Date:        date,
			Amount:      amount,
			Description: description,
		})
	}

	return records, nil
}

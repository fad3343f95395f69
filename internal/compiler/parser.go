package compiler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"sttp/pkg/domain"
)

// headerRow is the exact header every table document must start with.
var headerRow = []string{"SOURCE", "DEST", "TRIGGER"}

// Parser converts a CSV state transition table into a validated Table.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse consumes the full document and returns the ordered transition
// sequence. Any defect aborts the parse: there is no partial table.
func (p *Parser) Parse(r io.Reader) (domain.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(headerRow)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty document, header must be %v", domain.ErrHeaderFormat, headerRow)
	}
	if err != nil {
		// Covers malformed header rows, e.g. the wrong column count.
		return nil, fmt.Errorf("%w: %v", domain.ErrHeaderFormat, err)
	}
	if !slices.Equal(header, headerRow) {
		return nil, fmt.Errorf("%w: must be %v, got %v", domain.ErrHeaderFormat, headerRow, header)
	}

	table := domain.Table{}
	var norm normalizer
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed CSV, e.g. a row with the wrong field count.
			return nil, &domain.RowError{Row: row, Err: err}
		}
		transition, err := norm.normalize(row)
		if err != nil {
			return nil, err
		}
		table = append(table, transition)
	}

	if err := validate(table); err != nil {
		return nil, err
	}
	return table, nil
}

// validate is the structural contract boundary with consumers: every built
// transition carries all three fields. Unreachable while normalization
// holds.
func validate(table domain.Table) error {
	for _, transition := range table {
		if transition.Trigger == "" || transition.Source == "" || transition.Dest == "" {
			return fmt.Errorf("%w: %+v", domain.ErrStructuralInvariant, transition)
		}
	}
	return nil
}

package report

import (
	"encoding/json"
	"io"

	"github.com/archlint/archlint/internal/domain"
)

// WriteJSON serializes a report for downstream tooling. Issue order and
// context key order are preserved as produced.
func WriteJSON(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

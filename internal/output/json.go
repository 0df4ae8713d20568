package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vulnverified/prowl/internal/report"
)

// WriteJSON writes the report to w as a single JSON document.
func WriteJSON(w io.Writer, rep *report.Report) error {
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		return fmt.Errorf("serializing report to JSON: %w", err)
	}
	return nil
}

// Package archive writes finished runs as JSON documents keyed by pixel id,
// to the local results directory and optionally to an object store bucket.
package archive

import (
	"encoding/json"
	"fmt"

	"pixel-match/internal/core/domain"
)

const stampLayout = "20060102-150405"

// Name returns the document name of a run: <app>_<YYYYMMDD-HHMMSS>.json.
func Name(app string, run domain.RunRecord) string {
	return fmt.Sprintf("%s_%s.json", app, run.StartedAt.Format(stampLayout))
}

// Encode renders the run outcomes with a four space indent.
func Encode(run domain.RunRecord) ([]byte, error) {
	b, err := json.MarshalIndent(run.Outcomes(), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode run %s: %w", run.ID, err)
	}
	return append(b, '\n'), nil
}

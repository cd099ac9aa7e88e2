package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseAnalysis decodes validated structured output into an Analysis.
// Unknown keys are rejected; decode failures indicate non-conforming data.
func ParseAnalysis(raw json.RawMessage) (*Analysis, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var analysis Analysis
	if err := dec.Decode(&analysis); err != nil {
		return nil, fmt.Errorf("failed to decode contract analysis: %w", err)
	}
	analysis.Normalize()
	return &analysis, nil
}

// Package report assembles the final audit report and exports it as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
)

func New(runID string, host models.HostInfo, info models.NetworkInfo, assessment models.Assessment, completedAt time.Time) *models.Report {
	return &models.Report{
		RunID:       runID,
		Host:        host,
		Network:     info,
		Assessment:  assessment,
		CompletedAt: completedAt,
	}
}

// WriteJSON writes a report as formatted JSON to the given writer.
func WriteJSON(w io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

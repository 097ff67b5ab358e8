package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"solat-assistant/models"
)

// ReadESolatResponseFromJSON loads an ESolatResponse from JSON on disk.
func ReadESolatResponseFromJSON(filePath string) (*models.ESolatResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ESolatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ESolatResponse: %w", err)
	}
	return &resp, nil
}

// PrintPrayerTimeRow writes a row's times, one prayer per line, in chronological order.
func PrintPrayerTimeRow(w io.Writer, row *models.PrayerTimeRow) {
	fmt.Fprintf(w, "Zone: %s\n", row.Zone)
	fmt.Fprintf(w, "Date: %s\n", row.Date)
	for _, p := range models.AllPrayers {
		if t, ok := row.TimeOf(p); ok {
			fmt.Fprintf(w, "%-8s %s\n", p.Title(), t.HHMM())
		}
	}
}

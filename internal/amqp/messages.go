package amqp

import (
	"encoding/json"
	"time"
)

// ReportReadyMessage tells the publishing workflow that a fresh output
// document exists. It carries only summary figures; consumers read the
// document itself from OutputPath.
type ReportReadyMessage struct {
	OutputPath      string    `json:"output_path"`
	Categories      int       `json:"categories"`
	RowsTotal       int       `json:"rows_total"`
	RowsDropped     int       `json:"rows_dropped"`
	GrandTotalCents int64     `json:"grand_total_cents"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewReportReadyMessage creates a message for a completed run.
func NewReportReadyMessage(outputPath string, categories, rowsTotal, rowsDropped int, grandTotalCents int64) *ReportReadyMessage {
	return &ReportReadyMessage{
		OutputPath:      outputPath,
		Categories:      categories,
		RowsTotal:       rowsTotal,
		RowsDropped:     rowsDropped,
		GrandTotalCents: grandTotalCents,
		Timestamp:       time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportReadyMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportReadyMessageFromJSON creates a message from JSON bytes.
func ReportReadyMessageFromJSON(data []byte) (*ReportReadyMessage, error) {
	var msg ReportReadyMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

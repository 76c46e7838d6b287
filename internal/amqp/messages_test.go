package amqp

import (
	"testing"
	"time"
)

func TestReportReadyMessageRoundTrip(t *testing.T) {
	msg := NewReportReadyMessage("totals.json", 3, 7, 1, 100000)
	if msg.Timestamp.IsZero() || time.Since(msg.Timestamp) > time.Minute {
		t.Fatalf("unexpected timestamp: %v", msg.Timestamp)
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := ReportReadyMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.OutputPath != "totals.json" || got.Categories != 3 || got.RowsTotal != 7 ||
		got.RowsDropped != 1 || got.GrandTotalCents != 100000 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestReportReadyMessageFromJSON_Invalid(t *testing.T) {
	if _, err := ReportReadyMessageFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

package observability

import "testing"

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordCallbackEvent("session_validated", "delivered")
	RecordCallbackEvent("ticket_created", "size_rejected")
	RecordTicketIssued()
	RecordTicketCancelled()
	RecordSessionBegin("ok")
	RecordVoiceRead("ok", 512)
	RecordVoiceRead("no_data", 0)
}

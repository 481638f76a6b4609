package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
	"github.com/hms/hms/internal/platform/outbox"
	"github.com/hms/hms/pkg/money"
)

// TopicPaymentNote is the outbox topic for medical-record payment notes.
const TopicPaymentNote = "billing.payment_note"

// PaymentNote is the outbox payload describing a recorded payment.
type PaymentNote struct {
	PatientID     string  `json:"patient_id"`
	BillID        string  `json:"bill_id"`
	BillNumber    string  `json:"bill_number"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
}

// NewPaymentNoteSink returns the outbox sink that writes a payment note into
// the patient's medical record through the Gateway.
func NewPaymentNoteSink(gw *gateway.Client) outbox.Sink {
	return outbox.SinkFunc(func(ctx context.Context, e *outbox.Entry) error {
		var note PaymentNote
		if err := json.Unmarshal(e.Payload, &note); err != nil {
			return fmt.Errorf("decode payment note: %w", err)
		}

		record := map[string]any{
			"patient_id":  note.PatientID,
			"record_type": "billing",
			"title":       fmt.Sprintf("Payment received for %s", note.BillNumber),
			"description": fmt.Sprintf("Payment of %s received via %s.",
				money.RupeesExact(note.AmountPaid), note.PaymentMethod),
			"record_date": note.PaymentDate,
		}
		_, err := gw.Create(ctx, "medical_records", record)
		return err
	})
}

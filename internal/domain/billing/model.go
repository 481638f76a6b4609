// Package billing manages hospital bills: line items, discounts, payment
// recording and the billing dashboard stats. Bill records live in the Entity
// Gateway; this package derives display fields and enforces the payment state
// machine before forwarding mutations.
package billing

import "github.com/hms/hms/pkg/money"

// PaymentStatus classifies a bill's payment state.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentPaid          PaymentStatus = "Paid"
	PaymentUnknown       PaymentStatus = "Unknown"
)

// ParsePaymentStatus maps a raw status string to the closed enumeration.
// Unknown strings map to PaymentUnknown rather than silently passing through.
func ParsePaymentStatus(s string) PaymentStatus {
	switch s {
	case string(PaymentPending):
		return PaymentPending
	case string(PaymentPartiallyPaid):
		return PaymentPartiallyPaid
	case string(PaymentPaid):
		return PaymentPaid
	default:
		return PaymentUnknown
	}
}

// BadgeClass returns the display treatment for the status.
func (s PaymentStatus) BadgeClass() string {
	switch s {
	case PaymentPaid:
		return "badge-success"
	case PaymentPartiallyPaid:
		return "badge-warning"
	case PaymentPending:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// LineItem is one charge on a bill.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Payment is one recorded payment against a bill.
type Payment struct {
	AmountPaid    float64 `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id,omitempty"`
	ReceivedBy    string  `json:"received_by,omitempty"`
}

// Bill mirrors the Gateway's bill record.
type Bill struct {
	ID             string     `json:"id,omitempty"`
	PatientID      string     `json:"patient_id"`
	PatientName    string     `json:"patient_name"`
	BillNumber     string     `json:"bill_number"`
	BillDate       string     `json:"bill_date"`
	LineItems      []LineItem `json:"line_items"`
	TotalAmount    float64    `json:"total_amount"`
	DiscountAmount float64    `json:"discount_amount"`
	AmountDue      float64    `json:"amount_due"`
	PaymentStatus  string     `json:"payment_status"`
	Payments       []Payment  `json:"payments"`
}

// PaidTotal sums the recorded payments.
func (b *Bill) PaidTotal() float64 {
	var sum float64
	for _, p := range b.Payments {
		sum += p.AmountPaid
	}
	return sum
}

// DueAmount recomputes the outstanding amount from total, discount and
// payments. The wire value of amount_due is never trusted.
func (b *Bill) DueAmount() float64 {
	due := b.TotalAmount - b.DiscountAmount - b.PaidTotal()
	if due < 0 {
		return 0
	}
	return due
}

// Reconcile overwrites amount_due and payment_status with values recomputed
// from the payment history. Paid when nothing is due, Partially Paid while
// the due amount is below the bill total, Pending otherwise.
func (b *Bill) Reconcile() {
	due := b.DueAmount()
	b.AmountDue = due
	switch {
	case due == 0:
		b.PaymentStatus = string(PaymentPaid)
	case due < b.TotalAmount:
		b.PaymentStatus = string(PaymentPartiallyPaid)
	default:
		b.PaymentStatus = string(PaymentPending)
	}
}

// View is the display shape of a bill.
type View struct {
	*Bill
	Status           PaymentStatus `json:"status"`
	StatusBadge      string        `json:"status_badge"`
	AmountDueDisplay string        `json:"amount_due_display"`
	TotalDisplay     string        `json:"total_display"`
}

// NewView derives the display fields for a bill without mutating it.
func NewView(b *Bill) View {
	status := ParsePaymentStatus(b.PaymentStatus)
	return View{
		Bill:             b,
		Status:           status,
		StatusBadge:      status.BadgeClass(),
		AmountDueDisplay: money.RupeesExact(b.DueAmount()),
		TotalDisplay:     money.RupeesExact(b.TotalAmount),
	}
}

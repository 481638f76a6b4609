package billing

import (
	"github.com/hms/hms/pkg/money"
	"github.com/hms/hms/pkg/stats"
)

// Stats is the billing block on the dashboard.
type Stats struct {
	TotalBills         int     `json:"totalBills"`
	PaidBills          int     `json:"paidBills"`
	PendingBills       int     `json:"pendingBills"`
	PartiallyPaidBills int     `json:"partiallyPaidBills"`
	TotalRevenue       float64 `json:"totalRevenue"`
	RevenueDisplay     string  `json:"revenueDisplay"`
	OutstandingAmount  float64 `json:"outstandingAmount"`
	OutstandingDisplay string  `json:"outstandingDisplay"`
	CollectionRate     int     `json:"collectionRate"`
}

// ComputeStats derives billing metrics from a bill snapshot. Outstanding
// amounts are recomputed from payment history, never read from the wire.
func ComputeStats(bills []*Bill) Stats {
	var st Stats
	st.TotalBills = len(bills)

	for _, b := range bills {
		switch ParsePaymentStatus(b.PaymentStatus) {
		case PaymentPaid:
			st.PaidBills++
			st.TotalRevenue += b.TotalAmount
		case PaymentPartiallyPaid:
			st.PartiallyPaidBills++
		case PaymentPending:
			st.PendingBills++
		}
		st.OutstandingAmount += b.DueAmount()
	}

	st.CollectionRate = stats.Rate(st.PaidBills, st.TotalBills)
	st.RevenueDisplay = money.RupeesExact(st.TotalRevenue)
	st.OutstandingDisplay = money.RupeesExact(st.OutstandingAmount)
	return st
}

package billing

import (
	"reflect"
	"testing"
)

func sampleBills() []*Bill {
	return []*Bill{
		{TotalAmount: 1000, PaymentStatus: string(PaymentPaid), Payments: []Payment{{AmountPaid: 1000}}},
		{TotalAmount: 500, PaymentStatus: string(PaymentPartiallyPaid), Payments: []Payment{{AmountPaid: 200}}},
		{TotalAmount: 300, PaymentStatus: string(PaymentPending)},
		{TotalAmount: 100, PaymentStatus: "garbage"},
	}
}

func TestComputeStats(t *testing.T) {
	st := ComputeStats(sampleBills())

	if st.TotalBills != 4 {
		t.Errorf("totalBills = %d, want 4", st.TotalBills)
	}
	if st.PaidBills != 1 || st.PartiallyPaidBills != 1 || st.PendingBills != 1 {
		t.Errorf("status partition wrong: %+v", st)
	}
	if st.TotalRevenue != 1000 {
		t.Errorf("totalRevenue = %v, want 1000 (paid bills only)", st.TotalRevenue)
	}
	// 0 + 300 + 100 + 300(partial: 500-200) = 700
	if st.OutstandingAmount != 700 {
		t.Errorf("outstandingAmount = %v, want 700", st.OutstandingAmount)
	}
	if st.CollectionRate != 25 {
		t.Errorf("collectionRate = %d, want 25", st.CollectionRate)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil)
	if st.TotalBills != 0 || st.CollectionRate != 0 || st.OutstandingAmount != 0 {
		t.Errorf("empty snapshot should produce zero stats: %+v", st)
	}
}

func TestComputeStatsIdempotent(t *testing.T) {
	bills := sampleBills()
	first := ComputeStats(bills)
	second := ComputeStats(bills)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregator not idempotent: %+v vs %+v", first, second)
	}
}

func TestReconcileNeverNegative(t *testing.T) {
	b := &Bill{TotalAmount: 100, Payments: []Payment{{AmountPaid: 150}}}
	b.Reconcile()
	if b.AmountDue != 0 {
		t.Errorf("amount_due floored at 0, got %v", b.AmountDue)
	}
	if b.PaymentStatus != string(PaymentPaid) {
		t.Errorf("expected Paid, got %s", b.PaymentStatus)
	}
}

func TestParsePaymentStatusUnknown(t *testing.T) {
	if ParsePaymentStatus("whatever") != PaymentUnknown {
		t.Error("unknown strings must map to PaymentUnknown")
	}
	if PaymentUnknown.BadgeClass() != "badge-neutral" {
		t.Error("unknown status must get the neutral badge")
	}
}

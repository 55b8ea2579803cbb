package utils

// Lease financing terms: flat 10% markup on the cash total, paid over a
// fixed 12-month term.
const (
	LeaseMarkupRate  = 0.10
	LeaseTermMonths  = 12
	LeaseGracePeriod = 30 // days until the first payment is due
)

// LeaseQuote is the computed schedule for financing a cart total.
type LeaseQuote struct {
	CashTotal     float64 `json:"cashTotal"`
	LeaseTotal    float64 `json:"leaseTotal"`
	MonthlyAmount float64 `json:"monthlyAmount"`
}

// QuoteLease converts a cash total into the lease schedule. Plain float
// division, no rounding; display formatting is the caller's concern.
func QuoteLease(cashTotal float64) LeaseQuote {
	leaseTotal := cashTotal * (1 + LeaseMarkupRate)
	return LeaseQuote{
		CashTotal:     cashTotal,
		LeaseTotal:    leaseTotal,
		MonthlyAmount: leaseTotal / LeaseTermMonths,
	}
}

package models

// MonthEntry is one row of the per-month paid/unpaid report.
type MonthEntry struct {
	UserID   int64   `json:"userId"`
	Name     string  `json:"name"`
	Village  string  `json:"village"`
	Category string  `json:"category"`
	Phone    string  `json:"phone"`
	Amount   float64 `json:"amount,omitempty"`
}

// MonthReport splits the active customers into those who paid for a month and
// those who did not.
type MonthReport struct {
	PaidCount   int          `json:"paidCount"`
	UnpaidCount int          `json:"unpaidCount"`
	TotalCount  int          `json:"totalCount"`
	PaidUsers   []MonthEntry `json:"paidUsers"`
	UnpaidUsers []MonthEntry `json:"unpaidUsers"`
}

// InactiveCustomer is a customer whose most recent payment is older than the
// inactivity window, or who never paid at all.
type InactiveCustomer struct {
	UserID            int64   `json:"userId"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Village           string  `json:"village"`
	Category          string  `json:"category"`
	LastPaymentMonth  string  `json:"lastPaymentMonth"`
	LastPaymentAmount float64 `json:"lastPaymentAmount"`
}

// PaymentStatus is the answer to a paid-or-not query for a (user, month) pair.
// A pending request counts as paid so the month cannot be requested twice.
type PaymentStatus struct {
	UserID                int64  `json:"userId"`
	Month                 string `json:"month"`
	IsPaid                bool   `json:"isPaid"`
	HasApprovedPayment    bool   `json:"hasApprovedPayment"`
	HasPendingTransaction bool   `json:"hasPendingTransaction"`
}

package dto

// AccountStatus is the lifecycle state of a reported account.
type AccountStatus string

const (
	StatusActive AccountStatus = "Active"
	StatusClosed AccountStatus = "Closed"
)

// AccountEntry is one account discovered in the report, in document order.
// Entries are created once by the ledger scan and never mutated.
type AccountEntry struct {
	Bank   string        `json:"bank"`
	Type   string        `json:"type"`
	Status AccountStatus `json:"status"`
	// CloseDate is the raw date string next to the "Date Closed" label.
	// Only set for Closed accounts, and only when a real date (not the
	// "-" placeholder) followed the label.
	CloseDate *string `json:"close_date,omitempty"`
}

// CreditMetrics is the structured profile extracted from one CIBIL report.
//
// Optional fields are pointers: nil means the pattern never matched, which
// is different from a found zero. Balances and enquiry counts depend on
// that distinction downstream, so it must not be collapsed into a zero
// default anywhere.
type CreditMetrics struct {
	// Score is the bureau score. Section-scoped matches accept [300,900],
	// the fallback scan only [600,850].
	Score *int `json:"score"`
	// ScoreDate is passed through as found, not parsed into a time.Time.
	ScoreDate *string `json:"score_date"`

	TotalAccounts  int `json:"total_accounts"`
	ActiveAccounts int `json:"active_accounts"`
	ClosedAccounts int `json:"closed_accounts"`
	CreditCards    int `json:"credit_cards"`
	Loans          int `json:"loans"`

	Accounts []AccountEntry `json:"accounts"`

	TotalCreditLimit        *float64 `json:"total_credit_limit"`
	TotalOutstandingBalance *float64 `json:"total_outstanding_balance"`

	RecentEnquiries *int `json:"recent_enquiries"`

	// Not extracted by the current pipeline; always nil. Kept so the
	// ratio and advisory rules that reference them stay wired for when
	// the payment-history section parser lands.
	MaxDPD          *int `json:"max_dpd"`
	LatePayments12m *int `json:"late_payments_12m"`
	WrittenOffCount *int `json:"written_off_count"`
}

// Ratio is one named, individually optional risk ratio.
type Ratio struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

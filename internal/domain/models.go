package domain

import "time"

const (
	KindPersonal   = "PERSONAL"
	KindBusiness   = "BUSINESS"
	KindBank       = "BANK"
	KindSystemPool = "SYSTEM_POOL"
)

const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
	StatusForced  = "FORCED"
)

// SystemOwnerID owns the MAIN POOL account; it is not a real telegram user.
const SystemOwnerID int64 = 0

type Owner struct {
	TgUserID        int64     `db:"tg_user_id"`
	ActiveAccountID *int64    `db:"active_account_id"`
	CreatedAt       time.Time `db:"created_at"`
}

type Account struct {
	ID        int64     `db:"id"`
	OwnerTgID int64     `db:"owner_tg_id"`
	Kind      string    `db:"kind"`
	Label     string    `db:"label"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// Transaction is one immutable ledger row. Nil account ids represent
// system-origin or system-sink flows.
type Transaction struct {
	ID            int64     `db:"id"`
	ReceiptNo     string    `db:"receipt_no"`
	TsUTC         time.Time `db:"ts_utc"`
	FromAccountID *int64    `db:"from_account_id"`
	ToAccountID   *int64    `db:"to_account_id"`
	Amount        int64     `db:"amount"`
	Status        string    `db:"status"`
	Description   string    `db:"description"`
	CreatedByTgID int64     `db:"created_by_tg_id"`
	Forced        bool      `db:"forced"`
}

type Staff struct {
	ID                int64     `db:"id"`
	BusinessAccountID int64     `db:"business_account_id"`
	Name              string    `db:"staff_name"`
	TgID              *int64    `db:"staff_tg_id"`
	AccountID         int64     `db:"staff_account_id"`
	MonthlySalary     int64     `db:"monthly_salary"`
	IsActive          bool      `db:"is_active"`
	CreatedAt         time.Time `db:"created_at"`
}

type PayrollRun struct {
	ID                int64     `db:"id"`
	BusinessAccountID int64     `db:"business_account_id"`
	Year              int       `db:"year"`
	Month             int       `db:"month"`
	CreatedByTgID     int64     `db:"created_by_tg_id"`
	CreatedAt         time.Time `db:"created_at"`
}

// PayrollPayout is the per-staff outcome of one payroll run. A failed payout
// carries the reason and an empty receipt number.
type PayrollPayout struct {
	StaffID   int64
	StaffName string
	ReceiptNo string
	Err       error
}

// Notification is the data the core emits for a committed transfer; delivering
// it (receipt image, telegram message) is the gateway's job.
type Notification struct {
	ID        int64      `db:"id"`
	ReceiptNo string     `db:"receipt_no"`
	AccountID int64      `db:"account_id"`
	CreatedAt time.Time  `db:"created_at"`
	SentAt    *time.Time `db:"sent_at"`
}

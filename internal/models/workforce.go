package models

import "github.com/shopspring/decimal"

// WorkforceEntry is the workforce_entries table row.
type WorkforceEntry struct {
	EntryID   string          `db:"entry_id"`
	Partition string          `db:"partition"`
	FTE       decimal.Decimal `db:"fte"`
	Role      string          `db:"role"`
	Ethnicity string          `db:"ethnicity"`
	Languages []string        `db:"languages"`
}

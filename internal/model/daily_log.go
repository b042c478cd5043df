package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// charity_amount goes out as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// DailyLog is one user's devotional record for a calendar date.
type DailyLog struct {
	ID             int64           `db:"id" json:"id"`
	UserID         string          `db:"user_id" json:"user_id"`
	Date           string          `db:"date" json:"date"` // YYYY-MM-DD
	RozaKept       bool            `db:"roza_kept" json:"roza_kept"`
	MissedReason   *string         `db:"missed_reason" json:"missed_reason,omitempty"`
	SehriTaken     bool            `db:"sehri_taken" json:"sehri_taken"`
	IftarDone      bool            `db:"iftar_done" json:"iftar_done"`
	TaraweehPrayed bool            `db:"taraweeh_prayed" json:"taraweeh_prayed"`
	QuranPages     int             `db:"quran_pages" json:"quran_pages"`
	ZikrCount      int             `db:"zikr_count" json:"zikr_count"`
	CharityAmount  decimal.Decimal `db:"charity_amount" json:"charity_amount"`
	Notes          *string         `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

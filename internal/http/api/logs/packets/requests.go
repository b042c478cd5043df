package packets

import (
	"github.com/shopspring/decimal"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"
)

// body for saving a day's log. Omitted fields are stored as their zero value.
type DailyLogRequest struct {
	UserID         string          `json:"user_id"`
	Date           string          `json:"date"`
	RozaKept       bool            `json:"roza_kept"`
	MissedReason   *string         `json:"missed_reason"`
	SehriTaken     bool            `json:"sehri_taken"`
	IftarDone      bool            `json:"iftar_done"`
	TaraweehPrayed bool            `json:"taraweeh_prayed"`
	QuranPages     int             `json:"quran_pages"`
	ZikrCount      int             `json:"zikr_count"`
	CharityAmount  decimal.Decimal `json:"charity_amount"`
	Notes          *string         `json:"notes"`
}

func (r DailyLogRequest) ToModel() model.DailyLog {
	return model.DailyLog{
		UserID:         r.UserID,
		Date:           r.Date,
		RozaKept:       r.RozaKept,
		MissedReason:   r.MissedReason,
		SehriTaken:     r.SehriTaken,
		IftarDone:      r.IftarDone,
		TaraweehPrayed: r.TaraweehPrayed,
		QuranPages:     r.QuranPages,
		ZikrCount:      r.ZikrCount,
		CharityAmount:  r.CharityAmount,
		Notes:          r.Notes,
	}
}

package schedule

import "time"

// SehriAlert decides when to remind a user that Imsak is approaching. It fires
// at most once in each [Imsak-lead, Imsak) window and re-arms once Imsak has
// passed. Not safe for concurrent use.
type SehriAlert struct {
	lead     time.Duration
	notified bool
}

func NewSehriAlert(leadMinutes int) *SehriAlert {
	return &SehriAlert{lead: time.Duration(leadMinutes) * time.Minute}
}

// SetLead changes the lead time. A different lead re-arms the alert so the new
// window is honored the same day.
func (a *SehriAlert) SetLead(leadMinutes int) {
	lead := time.Duration(leadMinutes) * time.Minute
	if lead == a.lead {
		return
	}
	a.lead = lead
	a.notified = false
}

func (a *SehriAlert) LeadMinutes() int {
	return int(a.lead / time.Minute)
}

func (a *SehriAlert) Notified() bool {
	return a.notified
}

// Check reports whether a notification should fire now for the given Imsak
// time of day, and records it if so. Once today's Imsak has passed, the window
// of tomorrow's Imsak applies, which may open before midnight.
func (a *SehriAlert) Check(imsak string, now time.Time) bool {
	imsakAt, ok := At(now, imsak)
	if !ok {
		return false
	}
	if !now.Before(imsakAt) {
		imsakAt = imsakAt.AddDate(0, 0, 1)
		if now.Before(imsakAt.Add(-a.lead)) {
			a.notified = false
			return false
		}
	}
	if a.notified || now.Before(imsakAt.Add(-a.lead)) {
		return false
	}
	a.notified = true
	return true
}

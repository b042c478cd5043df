package packets

import "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/model"

// returned by the next-prayer endpoint and each stream event.
type NextPrayerResponse struct {
	Available bool              `json:"available"`
	Timezone  string            `json:"timezone,omitempty"`
	Next      *model.NextPrayer `json:"next,omitempty"`
}

package packets

import "github.com/MOSHAROF-4246/Ramadan-Super-App/internal/prayertimes"

// query for a location: city+country or latitude+longitude.
type LocationQuery struct {
	City      string `form:"city"`
	Country   string `form:"country"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
	Method    string `form:"method"`
}

func (q LocationQuery) Valid() bool {
	return (q.Latitude != "" && q.Longitude != "") || (q.City != "" && q.Country != "")
}

func (q LocationQuery) ToQuery() prayertimes.Query {
	return prayertimes.Query{
		City:      q.City,
		Country:   q.Country,
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		Method:    q.Method,
	}
}

type CalendarQuery struct {
	LocationQuery
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=1"`
}

func (q CalendarQuery) ToQuery() prayertimes.CalendarQuery {
	return prayertimes.CalendarQuery{Query: q.LocationQuery.ToQuery(), Month: q.Month, Year: q.Year}
}

package domain

import "time"

// QueryDateLayout is the partition date format used by the impression tables.
const QueryDateLayout = "20060102"

// Pixel represents a trackable marketing placement returned by discovery.
// Only the first campaign of a pixel contributes its dates.
type Pixel struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   *time.Time // nil when the campaign has no end date
}

// Eligible reports whether the pixel should be processed on the given day:
// it needs a start date and either no end date or one strictly after today.
func (p Pixel) Eligible(today time.Time) bool {
	if p.StartDate.IsZero() {
		return false
	}
	if p.EndDate == nil {
		return true
	}
	return truncateDay(*p.EndDate).After(truncateDay(today))
}

// QueryStartDate returns the start date formatted as a partition lower bound.
func (p Pixel) QueryStartDate() string {
	return p.StartDate.Format(QueryDateLayout)
}

// Discovery is the result of one call to the pixel catalog.
type Discovery struct {
	Total  int
	Pixels []Pixel
}

// Eligible filters the discovered pixels down to those active on today.
func (d Discovery) Eligible(today time.Time) []Pixel {
	out := make([]Pixel, 0, len(d.Pixels))
	for _, p := range d.Pixels {
		if p.Eligible(today) {
			out = append(out, p)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

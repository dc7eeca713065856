// Package feed implements the pure filter the app applies to the event list.
package feed

import (
	"net/url"
	"strings"
	"time"

	"github.com/aksuu-app/aksuu-server/internal/models"
)

type DateRange string

const (
	DateAny   DateRange = "any"
	DateToday DateRange = "today"
	DateWeek  DateRange = "week"
	DateMonth DateRange = "month"
)

type PriceFilter string

const (
	PriceAny  PriceFilter = "any"
	PriceFree PriceFilter = "free"
	PricePaid PriceFilter = "paid"
)

// Filter narrows the full event list. The zero-ish Default() filter keeps
// everything.
type Filter struct {
	Q          string
	Categories map[models.EventCategory]struct{}
	DateRange  DateRange
	Price      PriceFilter
}

func Default() Filter {
	return Filter{DateRange: DateAny, Price: PriceAny}
}

// Parse reads the filter out of request query parameters: q, a
// comma-separated categories list, dateRange and price. Unknown values fall
// back to "any".
func Parse(q url.Values) Filter {
	f := Default()
	f.Q = q.Get("q")

	for _, raw := range strings.Split(q.Get("categories"), ",") {
		c := models.EventCategory(strings.TrimSpace(raw))
		if !c.Valid() {
			continue
		}
		if f.Categories == nil {
			f.Categories = make(map[models.EventCategory]struct{})
		}
		f.Categories[c] = struct{}{}
	}

	switch dr := DateRange(q.Get("dateRange")); dr {
	case DateToday, DateWeek, DateMonth:
		f.DateRange = dr
	}
	switch p := PriceFilter(q.Get("price")); p {
	case PriceFree, PricePaid:
		f.Price = p
	}
	return f
}

// Apply returns the subsequence of items passing every active predicate,
// preserving input order. The date ranges bound start times only from above
// (now + 1/7/30 days); events already past stay visible under every range,
// matching the app's behavior.
func (f Filter) Apply(items []models.Event, now time.Time) []models.Event {
	q := strings.ToLower(strings.TrimSpace(f.Q))
	const day = 24 * time.Hour

	out := make([]models.Event, 0, len(items))
	for _, e := range items {
		if q != "" {
			hay := strings.ToLower(e.Title + " " + e.LocationName + " " + e.OrganizerName)
			if !strings.Contains(hay, q) {
				continue
			}
		}

		if len(f.Categories) > 0 {
			if _, ok := f.Categories[e.Category]; !ok {
				continue
			}
		}

		if f.Price == PriceFree && e.Price != 0 {
			continue
		}
		if f.Price == PricePaid && e.Price == 0 {
			continue
		}

		switch f.DateRange {
		case DateToday:
			if e.StartsAt.After(now.Add(day)) {
				continue
			}
		case DateWeek:
			if e.StartsAt.After(now.Add(7 * day)) {
				continue
			}
		case DateMonth:
			if e.StartsAt.After(now.Add(30 * day)) {
				continue
			}
		}

		out = append(out, e)
	}
	return out
}

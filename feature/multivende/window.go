package multivende

import (
	"fmt"
	"net/url"
	"time"
)

// timeLayout is the ISO-8601 naive-local format the API expects in window
// filters: no timezone suffix.
const timeLayout = "2006-01-02T15:04:05"

// WindowField selects which timestamp a collection window filters on.
type WindowField string

const (
	// SoldAt sweeps records by sale date.
	SoldAt WindowField = "sold_at"
	// UpdatedAt sweeps records by last modification, catching changes to
	// older sales.
	UpdatedAt WindowField = "updated_at"
)

// Window is a [From, To] time filter on a collection fetch.
type Window struct {
	Field WindowField
	From  time.Time
	To    time.Time
}

// query renders the window as API query parameters
// (_sold_at_from/_sold_at_to or _updated_at_from/_updated_at_to).
func (w *Window) query() string {
	if w == nil {
		return ""
	}
	v := url.Values{}
	v.Set(fmt.Sprintf("_%s_from", w.Field), w.From.Format(timeLayout))
	v.Set(fmt.Sprintf("_%s_to", w.Field), w.To.Format(timeLayout))
	return v.Encode()
}

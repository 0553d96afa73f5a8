package model

import (
	"strconv"
	"time"
)

// All is the list-filter wildcard the forms send.
const All = "All"

// Filter narrows a list by exact-match fields and an optional trailing day
// window. Empty fields (or "All") match everything; fields a kind does not
// carry are ignored for that kind.
type Filter struct {
	Member   string `form:"member" json:"member,omitempty"`
	Status   string `form:"status" json:"status,omitempty"`
	Priority string `form:"priority" json:"priority,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Type     string `form:"type" json:"type,omitempty"`
	Days     int    `form:"days" json:"days,omitempty"`
}

// Match reports whether want (a filter field) accepts got.
func Match(want, got string) bool {
	return want == "" || want == All || want == got
}

// Window is a trailing period in days; AllTime disables it.
type Window int

const (
	AllTime     Window = 0
	Last7Days   Window = 7
	Last30Days  Window = 30
	Last90Days  Window = 90
	Last6Months Window = 180
)

// Contains reports whether the day d falls inside the window ending at now,
// i.e. now - N days <= d, compared on now's wall clock.
func (w Window) Contains(now time.Time, d Date) bool {
	if w <= 0 {
		return true
	}
	if d.IsZero() {
		return false
	}
	y, m, day := now.Date()
	hh, mm, ss := now.Clock()
	wall := time.Date(y, m, day, hh, mm, ss, now.Nanosecond(), time.UTC)
	cutoff := wall.AddDate(0, 0, -int(w))
	return !d.Time.Before(cutoff)
}

func (w Window) Label() string {
	switch w {
	case AllTime:
		return "All Time"
	case Last6Months:
		return "Last 6 months"
	default:
		return "Last " + strconv.Itoa(int(w)) + " days"
	}
}

// Package report computes read-only rollups over a model.Snapshot. Nothing
// here mutates or persists state.
package report

import (
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

// Display counts for the dashboard lists.
const (
	RecentCheckinsShown   = 5
	AttentionShown        = 5
	UpcomingBookingsShown = 3
	RecentResourcesShown  = 3
)

type QuickStats struct {
	TeamSize           int `json:"team_size"`
	RecentCheckins     int `json:"recent_checkins"`
	ActiveActions      int `json:"active_actions"`
	OverdueActions     int `json:"overdue_actions"`
	TrainingInProgress int `json:"training_in_progress"`
	UpcomingBookings   int `json:"upcoming_bookings"`
}

// Completion is a completed/total count with its percentage (0 when
// total is 0).
type Completion struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

func newCompletion(completed, total int) Completion {
	c := Completion{Completed: completed, Total: total}
	if total > 0 {
		c.Percent = float64(completed) / float64(total) * 100
	}
	return c
}

type MemberCompletion struct {
	Member string `json:"member"`
	Completion
}

type Dashboard struct {
	Stats            QuickStats         `json:"stats"`
	RecentCheckins   []model.Checkin    `json:"recent_checkins"`
	Attention        []model.Action     `json:"attention"`
	UpcomingBookings []model.Booking    `json:"upcoming_bookings"`
	RecentResources  []model.Resource   `json:"recent_resources"`
	MatrixCompletion []MemberCompletion `json:"matrix_completion"`
}

// Quick computes the headline numbers. Action statuses in s are expected
// to be derived already.
func Quick(s model.Snapshot) QuickStats {
	q := QuickStats{TeamSize: len(s.Members)}
	for _, c := range s.Checkins {
		if model.Last7Days.Contains(s.Now, c.Date) {
			q.RecentCheckins++
		}
	}
	for _, a := range s.Actions {
		if a.Status != model.StatusCompleted {
			q.ActiveActions++
		}
		if a.Status == model.StatusOverdue {
			q.OverdueActions++
		}
	}
	for _, t := range s.Training {
		if t.Status == model.StatusInProgress {
			q.TrainingInProgress++
		}
	}
	q.UpcomingBookings = len(upcomingBookings(s))
	return q
}

func BuildDashboard(s model.Snapshot) Dashboard {
	checkins := slices.Clone(s.Checkins)
	slices.SortStableFunc(checkins, func(a, b model.Checkin) int { return b.Date.Compare(a.Date.Time) })

	resources := slices.Clone(s.Resources)
	slices.SortStableFunc(resources, func(a, b model.Resource) int { return b.AssignedDate.Compare(a.AssignedDate.Time) })

	return Dashboard{
		Stats:            Quick(s),
		RecentCheckins:   head(checkins, RecentCheckinsShown),
		Attention:        RequiresAttention(s, AttentionShown),
		UpcomingBookings: head(upcomingBookings(s), UpcomingBookingsShown),
		RecentResources:  head(resources, RecentResourcesShown),
		MatrixCompletion: MatrixByMember(s),
	}
}

// RequiresAttention lists actions that are Not Started or Overdue, earliest
// due first, cut to limit (limit <= 0 means no cut).
func RequiresAttention(s model.Snapshot, limit int) []model.Action {
	out := []model.Action{}
	for _, a := range s.Actions {
		if a.Status == model.StatusNotStarted || a.Status == model.StatusOverdue {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Action) int { return a.DueDate.Compare(b.DueDate.Time) })
	return head(out, limit)
}

// upcomingBookings are bookings starting today or later that are not
// completed, soonest first.
func upcomingBookings(s model.Snapshot) []model.Booking {
	today := s.Today()
	out := []model.Booking{}
	for _, b := range s.Bookings {
		if !b.StartDate.Before(today) && b.Status != model.StatusCompleted {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Booking) int { return a.StartDate.Compare(b.StartDate.Time) })
	return out
}

// MatrixByMember reports skill completion for each roster member that has
// at least one matrix row.
func MatrixByMember(s model.Snapshot) []MemberCompletion {
	out := []MemberCompletion{}
	for _, member := range s.Members {
		var done, total int
		for _, m := range s.Matrix {
			if m.TeamMember != member {
				continue
			}
			total++
			if m.Completed {
				done++
			}
		}
		if total > 0 {
			out = append(out, MemberCompletion{Member: member, Completion: newCompletion(done, total)})
		}
	}
	return out
}

func head[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

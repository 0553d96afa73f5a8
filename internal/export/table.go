// Package export turns record lists into flat tables and writes them as CSV
// or XLSX. One row per record; columns follow the JSON field order.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

func Checkins(items []model.Checkin) Table {
	t := Table{
		Name:   string(model.KindCheckins),
		Header: []string{"id", "team_member", "date", "type", "notes", "tags", "follow_up", "created_at"},
	}
	for _, c := range items {
		t.Rows = append(t.Rows, []string{
			itoa(c.ID), c.TeamMember, c.Date.String(), c.Type, c.Notes,
			strings.Join(c.Tags, ", "), boolText(c.FollowUp), stamp(&c.CreatedAt),
		})
	}
	return t
}

func Actions(items []model.Action) Table {
	t := Table{
		Name: string(model.KindActions),
		Header: []string{
			"id", "team_member", "action", "priority", "owner", "due_date",
			"category", "notes", "status", "created_at", "updates",
		},
	}
	for _, a := range items {
		t.Rows = append(t.Rows, []string{
			itoa(a.ID), a.TeamMember, a.Action, string(a.Priority), a.Owner, a.DueDate.String(),
			a.Category, a.Notes, string(a.Status), stamp(&a.CreatedAt), notes(a.Updates),
		})
	}
	return t
}

func Training(items []model.TrainingPlan) Table {
	t := Table{
		Name: string(model.KindTraining),
		Header: []string{
			"id", "team_member", "course_name", "type", "start_date", "end_date", "priority",
			"objectives", "business_case", "cost", "approval_required", "approval_status",
			"status", "progress", "created_at", "notes",
		},
	}
	for _, p := range items {
		t.Rows = append(t.Rows, []string{
			itoa(p.ID), p.TeamMember, p.CourseName, p.Type, p.StartDate.String(), p.EndDate.String(), string(p.Priority),
			p.Objectives, p.BusinessCase, money(p.Cost), boolText(p.ApprovalRequired), string(p.ApprovalStatus),
			string(p.Status), itoa(p.Progress), stamp(&p.CreatedAt), notes(p.Notes),
		})
	}
	return t
}

func Matrix(items []model.MatrixItem) Table {
	t := Table{
		Name: string(model.KindMatrix),
		Header: []string{
			"id", "team_member", "skill_name", "category", "required_level", "current_level",
			"priority", "target_date", "training_method", "completed", "completion_date",
			"created_at", "notes",
		},
	}
	for _, m := range items {
		t.Rows = append(t.Rows, []string{
			itoa(m.ID), m.TeamMember, m.SkillName, m.Category, string(m.RequiredLevel), string(m.CurrentLevel),
			string(m.Priority), m.TargetDate.String(), m.TrainingMethod, boolText(m.Completed), stamp(m.CompletionDate),
			stamp(&m.CreatedAt), notes(m.Notes),
		})
	}
	return t
}

func Bookings(items []model.Booking) Table {
	t := Table{
		Name: string(model.KindBookings),
		Header: []string{
			"id", "team_member", "course_name", "location", "start_date", "end_date", "cost",
			"travel_required", "expenses_estimate", "objectives", "booking_ref", "status",
			"attendance", "completion_date", "feedback", "created_at",
		},
	}
	for _, b := range items {
		t.Rows = append(t.Rows, []string{
			itoa(b.ID), b.TeamMember, b.CourseName, b.Location, b.StartDate.String(), b.EndDate.String(), money(b.Cost),
			boolText(b.TravelRequired), money(b.ExpensesEstimate), b.Objectives, b.BookingRef, string(b.Status),
			deref(b.Attendance), stamp(b.CompletionDate), deref(b.Feedback), stamp(&b.CreatedAt),
		})
	}
	return t
}

func Resources(items []model.Resource) Table {
	t := Table{
		Name: string(model.KindResources),
		Header: []string{
			"id", "team_member", "title", "type", "provider", "cost", "assigned_date",
			"expiry_date", "link_to_expenses", "description", "status", "completion_date",
			"created_at", "notes",
		},
	}
	for _, r := range items {
		t.Rows = append(t.Rows, []string{
			itoa(r.ID), r.TeamMember, r.Title, r.Type, r.Provider, money(r.Cost), r.AssignedDate.String(),
			r.ExpiryDate.String(), boolText(r.LinkToExpenses), r.Description, string(r.Status), stamp(r.CompletionDate),
			stamp(&r.CreatedAt), notes(r.Notes),
		})
	}
	return t
}

func Roster(members []string) Table {
	t := Table{Name: string(model.KindTeam), Header: []string{"name"}}
	for _, m := range members {
		t.Rows = append(t.Rows, []string{m})
	}
	return t
}

func itoa(n int) string { return strconv.Itoa(n) }

func boolText(b bool) string { return strconv.FormatBool(b) }

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func stamp(ts *model.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}

// notes flattens a trail to "date: note" entries joined with " | ".
func notes(trail []model.Note) string {
	parts := make([]string, len(trail))
	for i, n := range trail {
		parts[i] = fmt.Sprintf("%s: %s", model.DateOf(n.Date.Time), n.Note)
	}
	return strings.Join(parts, " | ")
}

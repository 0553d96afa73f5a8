package report

import (
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

// MemberActivity is one roster member's row in the activity overview.
// Only check-ins are limited by the report window.
type MemberActivity struct {
	Member             string `json:"member"`
	Checkins           int    `json:"checkins"`
	Actions            int    `json:"actions"`
	TrainingInProgress int    `json:"training_in_progress"`
	OpenSkills         int    `json:"open_skills"`
}

type TrainingOverview struct {
	Member          string  `json:"member"`
	Total           int     `json:"total"`
	InProgress      int     `json:"in_progress"`
	Completed       int     `json:"completed"`
	AverageProgress float64 `json:"average_progress"`
}

type Investment struct {
	Training  float64 `json:"training"`
	Bookings  float64 `json:"bookings"`
	Resources float64 `json:"resources"`
	Total     float64 `json:"total"`
}

type Report struct {
	Window       model.Window          `json:"window"`
	Label        string                `json:"label"`
	Activity     []MemberActivity      `json:"activity"`
	Training     []TrainingOverview    `json:"training"`
	ActionStatus map[model.Status]int  `json:"action_status"`
	Investment   Investment            `json:"investment"`
	Completion   map[string]Completion `json:"completion"`
}

// Build assembles the periodic report for window w.
func Build(s model.Snapshot, w model.Window) Report {
	return Report{
		Window:       w,
		Label:        w.Label(),
		Activity:     Activity(s, w),
		Training:     TrainingByMember(s),
		ActionStatus: ActionStatusCounts(s.Actions),
		Investment:   Invested(s),
		Completion: map[string]Completion{
			string(model.KindTraining): TrainingCompletion(s.Training),
			string(model.KindMatrix):   MatrixCompletion(s.Matrix),
			string(model.KindBookings): BookingCompletion(s.Bookings),
		},
	}
}

func Activity(s model.Snapshot, w model.Window) []MemberActivity {
	out := make([]MemberActivity, 0, len(s.Members))
	for _, member := range s.Members {
		row := MemberActivity{Member: member}
		for _, c := range s.Checkins {
			if c.TeamMember == member && w.Contains(s.Now, c.Date) {
				row.Checkins++
			}
		}
		for _, a := range s.Actions {
			if a.TeamMember == member {
				row.Actions++
			}
		}
		for _, t := range s.Training {
			if t.TeamMember == member && t.Status == model.StatusInProgress {
				row.TrainingInProgress++
			}
		}
		for _, m := range s.Matrix {
			if m.TeamMember == member && !m.Completed {
				row.OpenSkills++
			}
		}
		out = append(out, row)
	}
	return out
}

// TrainingByMember summarises plans per roster member, skipping members
// with no plans.
func TrainingByMember(s model.Snapshot) []TrainingOverview {
	out := []TrainingOverview{}
	for _, member := range s.Members {
		row := TrainingOverview{Member: member}
		progress := 0
		for _, t := range s.Training {
			if t.TeamMember != member {
				continue
			}
			row.Total++
			progress += t.Progress
			switch t.Status {
			case model.StatusInProgress:
				row.InProgress++
			case model.StatusCompleted:
				row.Completed++
			}
		}
		if row.Total == 0 {
			continue
		}
		row.AverageProgress = float64(progress) / float64(row.Total)
		out = append(out, row)
	}
	return out
}

func ActionStatusCounts(actions []model.Action) map[model.Status]int {
	out := make(map[model.Status]int)
	for _, a := range actions {
		out[a.Status]++
	}
	return out
}

// Invested sums costs across all plans, bookings (with expenses) and
// resources.
func Invested(s model.Snapshot) Investment {
	var inv Investment
	for _, t := range s.Training {
		inv.Training += t.Cost
	}
	for _, b := range s.Bookings {
		inv.Bookings += b.TotalCost()
	}
	for _, r := range s.Resources {
		inv.Resources += r.Cost
	}
	inv.Total = inv.Training + inv.Bookings + inv.Resources
	return inv
}

func TrainingCompletion(plans []model.TrainingPlan) Completion {
	done := 0
	for _, t := range plans {
		if t.Status == model.StatusCompleted {
			done++
		}
	}
	return newCompletion(done, len(plans))
}

func MatrixCompletion(items []model.MatrixItem) Completion {
	done := 0
	for _, m := range items {
		if m.Completed {
			done++
		}
	}
	return newCompletion(done, len(items))
}

func BookingCompletion(bookings []model.Booking) Completion {
	done := 0
	for _, b := range bookings {
		if b.Status == model.StatusCompleted {
			done++
		}
	}
	return newCompletion(done, len(bookings))
}

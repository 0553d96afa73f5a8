package model

import "time"

// Kind names a record collection; the value doubles as the persisted
// document name.
type Kind string

const (
	KindCheckins  Kind = "checkins"
	KindActions   Kind = "actions"
	KindTraining  Kind = "training_plans"
	KindMatrix    Kind = "training_matrix"
	KindBookings  Kind = "sytner_bookings"
	KindResources Kind = "learning_resources"
	KindTeam      Kind = "team_members"
)

var Kinds = []Kind{KindCheckins, KindActions, KindTraining, KindMatrix, KindBookings, KindResources, KindTeam}

type Checkin struct {
	ID         int       `json:"id"`
	TeamMember string    `json:"team_member"`
	Date       Date      `json:"date"`
	Type       string    `json:"type"`
	Notes      string    `json:"notes"`
	Tags       []string  `json:"tags"`
	FollowUp   bool      `json:"follow_up"`
	CreatedAt  Timestamp `json:"created_at"`
}

func (c Checkin) Clone() Checkin {
	if c.Tags != nil {
		c.Tags = append([]string(nil), c.Tags...)
	}
	return c
}

type Action struct {
	ID         int       `json:"id"`
	TeamMember string    `json:"team_member"`
	Action     string    `json:"action"`
	Priority   Priority  `json:"priority"`
	Owner      string    `json:"owner"`
	DueDate    Date      `json:"due_date"`
	Category   string    `json:"category"`
	Notes      string    `json:"notes"`
	Status     Status    `json:"status"`
	CreatedAt  Timestamp `json:"created_at"`
	Updates    []Note    `json:"updates"`
}

func (a Action) Clone() Action {
	a.Updates = cloneNotes(a.Updates)
	return a
}

// EffectiveStatus derives the status shown to readers: anything not
// completed whose due date is before today reads as Overdue.
func (a Action) EffectiveStatus(today Date) Status {
	if a.Status != StatusCompleted && !a.DueDate.IsZero() && a.DueDate.Before(today) {
		return StatusOverdue
	}
	return a.Status
}

type TrainingPlan struct {
	ID               int            `json:"id"`
	TeamMember       string         `json:"team_member"`
	CourseName       string         `json:"course_name"`
	Type             string         `json:"type"`
	StartDate        Date           `json:"start_date"`
	EndDate          Date           `json:"end_date"`
	Priority         Priority       `json:"priority"`
	Objectives       string         `json:"objectives"`
	BusinessCase     string         `json:"business_case"`
	Cost             float64        `json:"cost"`
	ApprovalRequired bool           `json:"approval_required"`
	ApprovalStatus   ApprovalStatus `json:"approval_status"`
	Status           Status         `json:"status"`
	Progress         int            `json:"progress"`
	CreatedAt        Timestamp      `json:"created_at"`
	Notes            []Note         `json:"notes"`
}

func (t TrainingPlan) Clone() TrainingPlan {
	t.Notes = cloneNotes(t.Notes)
	return t
}

type MatrixItem struct {
	ID             int        `json:"id"`
	TeamMember     string     `json:"team_member"`
	SkillName      string     `json:"skill_name"`
	Category       string     `json:"category"`
	RequiredLevel  Level      `json:"required_level"`
	CurrentLevel   Level      `json:"current_level"`
	Priority       Priority   `json:"priority"`
	TargetDate     Date       `json:"target_date"`
	TrainingMethod string     `json:"training_method"`
	Completed      bool       `json:"completed"`
	CompletionDate *Timestamp `json:"completion_date"`
	CreatedAt      Timestamp  `json:"created_at"`
	Notes          []Note     `json:"notes"`
}

func (m MatrixItem) Clone() MatrixItem {
	m.Notes = cloneNotes(m.Notes)
	m.CompletionDate = cloneTimestamp(m.CompletionDate)
	return m
}

// MatrixStatus maps the completed flag onto the matrix view's two labels.
func (m MatrixItem) MatrixStatus() string {
	if m.Completed {
		return MatrixStatusCompleted
	}
	return MatrixStatusInProgress
}

// Booking is an external (Sytner) training course reservation.
type Booking struct {
	ID               int        `json:"id"`
	TeamMember       string     `json:"team_member"`
	CourseName       string     `json:"course_name"`
	Location         string     `json:"location"`
	StartDate        Date       `json:"start_date"`
	EndDate          Date       `json:"end_date"`
	Cost             float64    `json:"cost"`
	TravelRequired   bool       `json:"travel_required"`
	ExpensesEstimate float64    `json:"expenses_estimate"`
	Objectives       string     `json:"objectives"`
	BookingRef       string     `json:"booking_ref"`
	Status           Status     `json:"status"`
	Attendance       *string    `json:"attendance"`
	CompletionDate   *Timestamp `json:"completion_date"`
	Feedback         *string    `json:"feedback"`
	CreatedAt        Timestamp  `json:"created_at"`
}

func (b Booking) Clone() Booking {
	b.Attendance = cloneString(b.Attendance)
	b.Feedback = cloneString(b.Feedback)
	b.CompletionDate = cloneTimestamp(b.CompletionDate)
	return b
}

// TotalCost is the course cost plus the travel expenses estimate.
func (b Booking) TotalCost() float64 { return b.Cost + b.ExpensesEstimate }

type Resource struct {
	ID             int        `json:"id"`
	TeamMember     string     `json:"team_member"`
	Title          string     `json:"title"`
	Type           string     `json:"type"`
	Provider       string     `json:"provider"`
	Cost           float64    `json:"cost"`
	AssignedDate   Date       `json:"assigned_date"`
	ExpiryDate     Date       `json:"expiry_date"`
	LinkToExpenses bool       `json:"link_to_expenses"`
	Description    string     `json:"description"`
	Status         Status     `json:"status"`
	CompletionDate *Timestamp `json:"completion_date"`
	CreatedAt      Timestamp  `json:"created_at"`
	Notes          []Note     `json:"notes"`
}

func (r Resource) Clone() Resource {
	r.Notes = cloneNotes(r.Notes)
	r.CompletionDate = cloneTimestamp(r.CompletionDate)
	return r
}

// Snapshot is a detached copy of every collection at one instant, with
// derived action statuses already applied.
type Snapshot struct {
	Now       time.Time
	Members   []string
	Checkins  []Checkin
	Actions   []Action
	Training  []TrainingPlan
	Matrix    []MatrixItem
	Bookings  []Booking
	Resources []Resource
}

// Today is the calendar day of the snapshot instant.
func (s Snapshot) Today() Date { return DateOf(s.Now) }

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimestamp(p *Timestamp) *Timestamp {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

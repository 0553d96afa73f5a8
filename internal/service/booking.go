package service

import (
	"context"
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

type BookingInput struct {
	TeamMember       string     `json:"team_member" validate:"required"`
	CourseName       string     `json:"course_name" validate:"required"`
	Location         string     `json:"location" validate:"required,enum=location"`
	StartDate        model.Date `json:"start_date"`
	EndDate          model.Date `json:"end_date"`
	Cost             float64    `json:"cost"`
	TravelRequired   bool       `json:"travel_required"`
	ExpensesEstimate float64    `json:"expenses_estimate"`
	Objectives       string     `json:"objectives"`
	BookingRef       string     `json:"booking_ref"`
}

// BookingPatch changes the status. Attendance and Feedback are recorded
// only when the same patch sets the status to Completed.
type BookingPatch struct {
	Status     *model.Status `json:"status" validate:"omitempty,enum=booking_status"`
	Attendance *string       `json:"attendance" validate:"omitempty,enum=attendance"`
	Feedback   *string       `json:"feedback"`
}

type BookingService struct{ st *State }

func NewBookingService(st *State) *BookingService { return &BookingService{st: st} }

func (s *BookingService) Create(ctx context.Context, in BookingInput) (model.Booking, error) {
	in.TeamMember = trim(in.TeamMember)
	in.CourseName = trim(in.CourseName)
	in.Location = orDefault(in.Location, model.EnumLocation)
	if err := validateStruct(in); err != nil {
		return model.Booking{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.requireMember(in.TeamMember); err != nil {
		return model.Booking{}, err
	}

	now := st.Now()
	inTwoWeeks := model.DateOf(now).AddDays(14)
	if in.StartDate.IsZero() {
		in.StartDate = inTwoWeeks
	}
	if in.EndDate.IsZero() {
		in.EndDate = inTwoWeeks
	}
	if !in.TravelRequired {
		in.ExpensesEstimate = 0
	}
	b := model.Booking{
		ID:               nextID(len(st.bookings)),
		TeamMember:       in.TeamMember,
		CourseName:       in.CourseName,
		Location:         in.Location,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Cost:             in.Cost,
		TravelRequired:   in.TravelRequired,
		ExpensesEstimate: in.ExpensesEstimate,
		Objectives:       trim(in.Objectives),
		BookingRef:       trim(in.BookingRef),
		Status:           model.StatusBooked,
		CreatedAt:        model.NewTimestamp(now),
	}
	st.bookings = append(st.bookings, b)
	err := persist(ctx, st, model.KindBookings, st.bookings)
	return b.Clone(), created(model.KindBookings, b.ID, err)
}

// Update sets the status. Completing a booking stamps completion_date with
// the current time on every such call.
func (s *BookingService) Update(ctx context.Context, id int, patch BookingPatch) (model.Booking, error) {
	if err := validateStruct(patch); err != nil {
		return model.Booking{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	i := slices.IndexFunc(st.bookings, func(b model.Booking) bool { return b.ID == id })
	if i < 0 {
		return model.Booking{}, apperr.NotFound("booking", id)
	}
	b := &st.bookings[i]
	if patch.Status != nil {
		b.Status = *patch.Status
		if b.Status == model.StatusCompleted {
			ts := model.NewTimestamp(st.Now())
			b.CompletionDate = &ts
			if patch.Attendance != nil {
				v := *patch.Attendance
				b.Attendance = &v
			}
			if patch.Feedback != nil {
				v := trim(*patch.Feedback)
				b.Feedback = &v
			}
		}
	}

	out := b.Clone()
	err := persist(ctx, st, model.KindBookings, st.bookings)
	return out, updated(model.KindBookings, id, err)
}

// List returns matching bookings by start date.
func (s *BookingService) List(f model.Filter) []model.Booking {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.Now()
	out := []model.Booking{}
	for _, b := range st.bookings {
		if model.Match(f.Member, b.TeamMember) && model.Match(f.Status, string(b.Status)) &&
			model.Match(f.Category, b.Location) && model.Window(f.Days).Contains(now, b.StartDate) {
			out = append(out, b.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b model.Booking) int { return byDate(a.StartDate, b.StartDate) })
	return out
}

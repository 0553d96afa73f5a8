package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

type fixture struct {
	ctx   context.Context
	gw    *store.MemoryGateway
	clock *fakeClock
	st    *State
	svc   *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:   context.Background(),
		gw:    store.NewMemoryGateway(),
		clock: &fakeClock{t: time.Date(2025, 6, 30, 9, 30, 0, 0, time.UTC)},
	}
	f.st = NewState(f.gw, WithClock(f.clock.Now))
	require.Empty(t, f.st.Load(f.ctx))
	f.svc = New(f.st)
	return f
}

func (f *fixture) today() model.Date { return model.DateOf(f.clock.t) }

func ptr[T any](v T) *T { return &v }

func TestIDsFollowCreationOrder(t *testing.T) {
	f := newFixture(t)
	const n = 3
	for i := 0; i < n; i++ {
		_, err := f.svc.Checkins.Create(f.ctx, CheckinInput{TeamMember: "Alice Johnson", Notes: "chat"})
		require.NoError(t, err)
		_, err = f.svc.Actions.Create(f.ctx, ActionInput{TeamMember: "Alice Johnson", Action: "follow up"})
		require.NoError(t, err)
		_, err = f.svc.Training.Create(f.ctx, TrainingInput{TeamMember: "Alice Johnson", CourseName: "Go"})
		require.NoError(t, err)
		_, err = f.svc.Matrix.Create(f.ctx, MatrixInput{TeamMember: "Alice Johnson", SkillName: "SQL"})
		require.NoError(t, err)
		_, err = f.svc.Bookings.Create(f.ctx, BookingInput{TeamMember: "Alice Johnson", CourseName: "Aftersales"})
		require.NoError(t, err)
		_, err = f.svc.Resources.Create(f.ctx, ResourceInput{TeamMember: "Alice Johnson", Title: "Clean Code"})
		require.NoError(t, err)
	}

	var none model.Filter
	ids := func(get func(int) int, count int) []int {
		out := make([]int, count)
		for i := range out {
			out[i] = get(i)
		}
		return out
	}
	want := []int{1, 2, 3}

	checkins := f.svc.Checkins.List(none)
	require.Len(t, checkins, n)
	assert.ElementsMatch(t, want, ids(func(i int) int { return checkins[i].ID }, n))

	actions := f.svc.Actions.List(none)
	require.Len(t, actions, n)
	assert.Equal(t, want, ids(func(i int) int { return actions[i].ID }, n))

	training := f.svc.Training.List(none)
	require.Len(t, training, n)
	assert.Equal(t, want, ids(func(i int) int { return training[i].ID }, n))

	matrix := f.svc.Matrix.List(none)
	require.Len(t, matrix, n)
	assert.Equal(t, want, ids(func(i int) int { return matrix[i].ID }, n))

	bookings := f.svc.Bookings.List(none)
	require.Len(t, bookings, n)
	assert.Equal(t, want, ids(func(i int) int { return bookings[i].ID }, n))

	resources := f.svc.Resources.List(none)
	require.Len(t, resources, n)
	assert.Equal(t, want, ids(func(i int) int { return resources[i].ID }, n))
}

func TestActionInitialStatus(t *testing.T) {
	f := newFixture(t)

	past, err := f.svc.Actions.Create(f.ctx, ActionInput{
		TeamMember: "Bob Smith", Action: "late", DueDate: f.today().AddDays(-1),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOverdue, past.Status)

	future, err := f.svc.Actions.Create(f.ctx, ActionInput{
		TeamMember: "Bob Smith", Action: "soon", DueDate: f.today().AddDays(3),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, future.Status)

	dueToday, err := f.svc.Actions.Create(f.ctx, ActionInput{
		TeamMember: "Bob Smith", Action: "today", DueDate: f.today(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, dueToday.Status)
}

func TestActionOverdueDerivedOnList(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.Actions.Create(f.ctx, ActionInput{
		TeamMember: "Bob Smith", Action: "prep review", DueDate: f.today().AddDays(2),
	})
	require.NoError(t, err)
	done, err := f.svc.Actions.Create(f.ctx, ActionInput{
		TeamMember: "Bob Smith", Action: "done already", DueDate: f.today().AddDays(2),
	})
	require.NoError(t, err)
	_, err = f.svc.Actions.Update(f.ctx, done.ID, ActionPatch{Status: ptr(model.StatusCompleted)})
	require.NoError(t, err)

	f.clock.advance(3)

	list := f.svc.Actions.List(model.Filter{})
	require.Len(t, list, 2)
	assert.Equal(t, model.StatusOverdue, list[0].Status)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, model.StatusCompleted, list[1].Status)

	overdue := f.svc.Actions.List(model.Filter{Status: string(model.StatusOverdue)})
	require.Len(t, overdue, 1)

	// derived, not persisted
	stored, _, err := store.LoadCollection[model.Action](f.ctx, f.gw, string(model.KindActions))
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, stored[0].Status)
}

func TestActionScenario(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.Actions.Create(f.ctx, ActionInput{
		TeamMember: "Bob Smith", Action: "Review matrix", DueDate: f.today().AddDays(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, model.StatusNotStarted, a.Status)
	assert.Equal(t, model.PriorityLow, a.Priority)
	assert.Equal(t, "Manager", a.Owner)
	assert.Equal(t, "Development", a.Category)

	a, err = f.svc.Actions.Update(f.ctx, 1, ActionPatch{Status: ptr(model.StatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, a.Status)
	assert.Empty(t, a.Updates)
}

func TestMatrixCompletionAtCreate(t *testing.T) {
	f := newFixture(t)

	met, err := f.svc.Matrix.Create(f.ctx, MatrixInput{
		TeamMember: "Carol Williams", SkillName: "Diagnostics",
		RequiredLevel: model.LevelAdvanced, CurrentLevel: model.LevelAdvanced,
	})
	require.NoError(t, err)
	assert.True(t, met.Completed)
	require.NotNil(t, met.CompletionDate)
	assert.Equal(t, f.clock.t, met.CompletionDate.Time)

	gap, err := f.svc.Matrix.Create(f.ctx, MatrixInput{
		TeamMember: "Carol Williams", SkillName: "Leadership",
		RequiredLevel: model.LevelAdvanced, CurrentLevel: model.LevelBasic,
	})
	require.NoError(t, err)
	assert.False(t, gap.Completed)
	assert.Nil(t, gap.CompletionDate)

	t.Run("defaults never start completed", func(t *testing.T) {
		m, err := f.svc.Matrix.Create(f.ctx, MatrixInput{TeamMember: "Carol Williams", SkillName: "Excel"})
		require.NoError(t, err)
		assert.Equal(t, model.LevelBasic, m.RequiredLevel)
		assert.Equal(t, model.LevelNone, m.CurrentLevel)
		assert.Equal(t, "Technical", m.Category)
		assert.Equal(t, f.today().AddDays(90), m.TargetDate)
		assert.False(t, m.Completed)
	})
}

func TestMatrixCompletionDateKept(t *testing.T) {
	f := newFixture(t)
	m, err := f.svc.Matrix.Create(f.ctx, MatrixInput{TeamMember: "Carol Williams", SkillName: "Welding"})
	require.NoError(t, err)

	m, err = f.svc.Matrix.Update(f.ctx, m.ID, MatrixPatch{Completed: ptr(true), CurrentLevel: ptr(model.LevelBasic)})
	require.NoError(t, err)
	require.NotNil(t, m.CompletionDate)
	first := m.CompletionDate.Time

	f.clock.advance(1)
	m, err = f.svc.Matrix.Update(f.ctx, m.ID, MatrixPatch{Completed: ptr(false)})
	require.NoError(t, err)
	assert.False(t, m.Completed)
	require.NotNil(t, m.CompletionDate)
	assert.Equal(t, first, m.CompletionDate.Time)

	m, err = f.svc.Matrix.Update(f.ctx, m.ID, MatrixPatch{Completed: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, first, m.CompletionDate.Time)
}

func TestNotesAppend(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.Actions.Create(f.ctx, ActionInput{TeamMember: "Alice Johnson", Action: "x"})
	require.NoError(t, err)
	tp, err := f.svc.Training.Create(f.ctx, TrainingInput{TeamMember: "Alice Johnson", CourseName: "x"})
	require.NoError(t, err)
	m, err := f.svc.Matrix.Create(f.ctx, MatrixInput{TeamMember: "Alice Johnson", SkillName: "x"})
	require.NoError(t, err)
	r, err := f.svc.Resources.Create(f.ctx, ResourceInput{TeamMember: "Alice Johnson", Title: "x"})
	require.NoError(t, err)

	for _, note := range []string{"first", "", "   ", "second"} {
		a, err = f.svc.Actions.Update(f.ctx, a.ID, ActionPatch{Note: note})
		require.NoError(t, err)
		tp, err = f.svc.Training.Update(f.ctx, tp.ID, TrainingPatch{Note: note})
		require.NoError(t, err)
		m, err = f.svc.Matrix.Update(f.ctx, m.ID, MatrixPatch{Note: note})
		require.NoError(t, err)
		r, err = f.svc.Resources.Update(f.ctx, r.ID, ResourcePatch{Note: note})
		require.NoError(t, err)
	}

	for name, trail := range map[string][]model.Note{
		"action": a.Updates, "training": tp.Notes, "matrix": m.Notes, "resource": r.Notes,
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, trail, 2)
			assert.Equal(t, "first", trail[0].Note)
			assert.Equal(t, "second", trail[1].Note)
			assert.Equal(t, f.clock.t, trail[0].Date.Time)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Checkins.Create(f.ctx, CheckinInput{
		TeamMember: "Alice Johnson", Notes: "worried about workload",
		Type: "Wellbeing Check", Tags: []string{"Wellbeing", "Project", "Wellbeing"}, FollowUp: true,
	})
	require.NoError(t, err)
	_, err = f.svc.Actions.Update(f.ctx, 1, ActionPatch{})
	require.True(t, apperr.IsNotFound(err))
	a, err := f.svc.Actions.Create(f.ctx, ActionInput{TeamMember: "Bob Smith", Action: "1-2-1", Notes: "quarterly"})
	require.NoError(t, err)
	_, err = f.svc.Actions.Update(f.ctx, a.ID, ActionPatch{Status: ptr(model.StatusInProgress), Note: "booked room"})
	require.NoError(t, err)
	_, err = f.svc.Training.Create(f.ctx, TrainingInput{TeamMember: "Bob Smith", CourseName: "EV safety", Cost: 499.99, ApprovalRequired: true})
	require.NoError(t, err)
	_, err = f.svc.Matrix.Create(f.ctx, MatrixInput{TeamMember: "Bob Smith", SkillName: "EV", RequiredLevel: model.LevelBasic, CurrentLevel: model.LevelBasic})
	require.NoError(t, err)
	b, err := f.svc.Bookings.Create(f.ctx, BookingInput{TeamMember: "Bob Smith", CourseName: "HV", TravelRequired: true, ExpensesEstimate: 80})
	require.NoError(t, err)
	_, err = f.svc.Bookings.Update(f.ctx, b.ID, BookingPatch{Status: ptr(model.StatusCompleted), Attendance: ptr(model.AttendancePartial), Feedback: ptr("ok")})
	require.NoError(t, err)
	_, err = f.svc.Resources.Create(f.ctx, ResourceInput{TeamMember: "Bob Smith", Title: "Manual", Provider: "OEM"})
	require.NoError(t, err)
	_, err = f.svc.Roster.Add(f.ctx, "Eve Adams")
	require.NoError(t, err)

	before := f.st.Snapshot()

	reloaded := NewState(f.gw, WithClock(f.clock.Now), WithDefaultMembers(nil))
	require.Empty(t, reloaded.Load(f.ctx))
	after := reloaded.Snapshot()

	assert.Equal(t, before, after)
	assert.Equal(t, []string{"Wellbeing", "Project"}, after.Checkins[0].Tags)
}

func TestTrainingFilterMemberAndStatus(t *testing.T) {
	f := newFixture(t)
	type seed struct {
		member string
		offset int
		status model.Status
	}
	for _, s := range []seed{
		{"Alice Johnson", 20, model.StatusCompleted},
		{"Bob Smith", 1, model.StatusCompleted},
		{"Alice Johnson", 5, model.StatusInProgress},
		{"Alice Johnson", -10, model.StatusCompleted},
	} {
		tp, err := f.svc.Training.Create(f.ctx, TrainingInput{
			TeamMember: s.member, CourseName: "c", StartDate: f.today().AddDays(s.offset),
		})
		require.NoError(t, err)
		_, err = f.svc.Training.Update(f.ctx, tp.ID, TrainingPatch{Status: ptr(s.status)})
		require.NoError(t, err)
	}

	got := f.svc.Training.List(model.Filter{Member: "Alice Johnson", Status: "Completed"})
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].ID)
	assert.Equal(t, 1, got[1].ID)

	assert.Len(t, f.svc.Training.List(model.Filter{Member: model.All, Status: "Completed"}), 3)
	assert.Len(t, f.svc.Training.List(model.Filter{Member: "Alice Johnson", Days: 7}), 2)
}

func TestRosterRemovalLeavesRecords(t *testing.T) {
	f := newFixture(t)
	c, err := f.svc.Checkins.Create(f.ctx, CheckinInput{TeamMember: "David Brown", Notes: "leaving"})
	require.NoError(t, err)

	members, err := f.svc.Roster.Remove(f.ctx, "David Brown")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Johnson", "Bob Smith", "Carol Williams"}, members)

	list := f.svc.Checkins.List(model.Filter{Member: "David Brown"})
	require.Len(t, list, 1)
	assert.Equal(t, c, list[0])

	_, err = f.svc.Checkins.Create(f.ctx, CheckinInput{TeamMember: "David Brown", Notes: "again"})
	assert.True(t, apperr.IsValidation(err))
}

func TestRoster(t *testing.T) {
	f := newFixture(t)

	members, err := f.svc.Roster.Add(f.ctx, "  Eve Adams ")
	require.NoError(t, err)
	assert.Equal(t, "Eve Adams", members[len(members)-1])

	again, err := f.svc.Roster.Add(f.ctx, "Eve Adams")
	require.NoError(t, err)
	assert.Equal(t, members, again)

	_, err = f.svc.Roster.Add(f.ctx, "   ")
	assert.True(t, apperr.IsValidation(err))

	_, err = f.svc.Roster.Remove(f.ctx, "Nobody")
	assert.True(t, apperr.IsNotFound(err))

	saved, found, err := store.LoadCollection[string](f.ctx, f.gw, string(model.KindTeam))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, f.svc.Roster.Members(), saved)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name  string
		field string
		run   func() error
	}{
		{"checkin without notes", "notes", func() error {
			_, err := f.svc.Checkins.Create(f.ctx, CheckinInput{TeamMember: "Alice Johnson", Notes: "  "})
			return err
		}},
		{"checkin bad tag", "tags[0]", func() error {
			_, err := f.svc.Checkins.Create(f.ctx, CheckinInput{TeamMember: "Alice Johnson", Notes: "n", Tags: []string{"Gossip"}})
			return err
		}},
		{"action without member", "team_member", func() error {
			_, err := f.svc.Actions.Create(f.ctx, ActionInput{Action: "x"})
			return err
		}},
		{"action bad priority", "priority", func() error {
			_, err := f.svc.Actions.Create(f.ctx, ActionInput{TeamMember: "Alice Johnson", Action: "x", Priority: "Urgent"})
			return err
		}},
		{"training without course", "course_name", func() error {
			_, err := f.svc.Training.Create(f.ctx, TrainingInput{TeamMember: "Alice Johnson"})
			return err
		}},
		{"matrix required None", "required_level", func() error {
			_, err := f.svc.Matrix.Create(f.ctx, MatrixInput{TeamMember: "Alice Johnson", SkillName: "x", RequiredLevel: model.LevelNone})
			return err
		}},
		{"booking bad location", "location", func() error {
			_, err := f.svc.Bookings.Create(f.ctx, BookingInput{TeamMember: "Alice Johnson", CourseName: "x", Location: "Moon"})
			return err
		}},
		{"resource without title", "title", func() error {
			_, err := f.svc.Resources.Create(f.ctx, ResourceInput{TeamMember: "Alice Johnson"})
			return err
		}},
		{"member off roster", "team_member", func() error {
			_, err := f.svc.Resources.Create(f.ctx, ResourceInput{TeamMember: "Mallory", Title: "x"})
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			require.True(t, apperr.IsValidation(err))
			fields := apperr.Fields(err)
			require.NotEmpty(t, fields)
			assert.Equal(t, tc.field, fields[0].Field)
		})
	}

	snap := f.st.Snapshot()
	assert.Empty(t, snap.Checkins)
	assert.Empty(t, snap.Actions)
	assert.Empty(t, snap.Training)
	assert.Empty(t, snap.Matrix)
	assert.Empty(t, snap.Bookings)
	assert.Empty(t, snap.Resources)
}

func TestUpdateNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Checkins.Update(f.ctx, 9, CheckinPatch{FollowUp: ptr(true)})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.Actions.Update(f.ctx, 9, ActionPatch{Note: "late"})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.Training.Update(f.ctx, 9, TrainingPatch{Progress: ptr(50)})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.Training.Approve(f.ctx, 9)
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.Training.Reject(f.ctx, 9)
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.Matrix.Update(f.ctx, 9, MatrixPatch{})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.Bookings.Update(f.ctx, 9, BookingPatch{})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.Resources.Update(f.ctx, 9, ResourcePatch{})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateRejectsBadPatch(t *testing.T) {
	f := newFixture(t)
	tp, err := f.svc.Training.Create(f.ctx, TrainingInput{TeamMember: "Alice Johnson", CourseName: "x"})
	require.NoError(t, err)

	_, err = f.svc.Training.Update(f.ctx, tp.ID, TrainingPatch{Progress: ptr(120)})
	assert.True(t, apperr.IsValidation(err))
	_, err = f.svc.Training.Update(f.ctx, tp.ID, TrainingPatch{Status: ptr(model.StatusBooked)})
	assert.True(t, apperr.IsValidation(err))

	a, err := f.svc.Actions.Create(f.ctx, ActionInput{TeamMember: "Alice Johnson", Action: "x"})
	require.NoError(t, err)
	_, err = f.svc.Actions.Update(f.ctx, a.ID, ActionPatch{Status: ptr(model.StatusOverdue)})
	assert.True(t, apperr.IsValidation(err))
}

func TestTrainingApproval(t *testing.T) {
	f := newFixture(t)

	open, err := f.svc.Training.Create(f.ctx, TrainingInput{TeamMember: "Alice Johnson", CourseName: "free"})
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, open.ApprovalStatus)
	assert.Equal(t, model.StatusNotStarted, open.Status)
	assert.Equal(t, f.today(), open.StartDate)
	assert.Equal(t, f.today().AddDays(90), open.EndDate)

	gated, err := f.svc.Training.Create(f.ctx, TrainingInput{TeamMember: "Alice Johnson", CourseName: "paid", ApprovalRequired: true})
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalPending, gated.ApprovalStatus)

	gated, err = f.svc.Training.Reject(f.ctx, gated.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalRejected, gated.ApprovalStatus)

	gated, err = f.svc.Training.Approve(f.ctx, gated.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, gated.ApprovalStatus)

	gated, err = f.svc.Training.Approve(f.ctx, gated.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, gated.ApprovalStatus)

	gated, err = f.svc.Training.Update(f.ctx, gated.ID, TrainingPatch{Progress: ptr(60), Status: ptr(model.StatusInProgress)})
	require.NoError(t, err)
	assert.Equal(t, 60, gated.Progress)
	assert.Equal(t, model.StatusInProgress, gated.Status)
}

func TestBookingLifecycle(t *testing.T) {
	f := newFixture(t)

	b, err := f.svc.Bookings.Create(f.ctx, BookingInput{
		TeamMember: "Carol Williams", CourseName: "Brake systems", Cost: 250, ExpensesEstimate: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusBooked, b.Status)
	assert.Equal(t, "Head Office", b.Location)
	assert.Equal(t, f.today().AddDays(14), b.StartDate)
	assert.Zero(t, b.ExpensesEstimate, "expenses only count with travel")

	b, err = f.svc.Bookings.Update(f.ctx, b.ID, BookingPatch{
		Status: ptr(model.StatusInProgress), Attendance: ptr(model.AttendanceAttended), Feedback: ptr("early"),
	})
	require.NoError(t, err)
	assert.Nil(t, b.Attendance)
	assert.Nil(t, b.Feedback)
	assert.Nil(t, b.CompletionDate)

	b, err = f.svc.Bookings.Update(f.ctx, b.ID, BookingPatch{
		Status: ptr(model.StatusCompleted), Attendance: ptr(model.AttendanceAttended), Feedback: ptr(" useful "),
	})
	require.NoError(t, err)
	require.NotNil(t, b.CompletionDate)
	first := b.CompletionDate.Time
	assert.Equal(t, model.AttendanceAttended, *b.Attendance)
	assert.Equal(t, "useful", *b.Feedback)

	f.clock.advance(2)
	b, err = f.svc.Bookings.Update(f.ctx, b.ID, BookingPatch{Status: ptr(model.StatusCompleted)})
	require.NoError(t, err)
	assert.True(t, b.CompletionDate.After(first))
	assert.Equal(t, model.AttendanceAttended, *b.Attendance)
}

func TestResourceCompletionDateOnce(t *testing.T) {
	f := newFixture(t)
	r, err := f.svc.Resources.Create(f.ctx, ResourceInput{TeamMember: "Bob Smith", Title: "Book"})
	require.NoError(t, err)
	assert.Equal(t, f.today().AddDays(365), r.ExpiryDate)
	assert.Equal(t, "Book", r.Type)

	r, err = f.svc.Resources.Update(f.ctx, r.ID, ResourcePatch{Status: ptr(model.StatusCompleted)})
	require.NoError(t, err)
	require.NotNil(t, r.CompletionDate)
	first := r.CompletionDate.Time

	f.clock.advance(1)
	r, err = f.svc.Resources.Update(f.ctx, r.ID, ResourcePatch{Status: ptr(model.StatusInProgress)})
	require.NoError(t, err)
	r, err = f.svc.Resources.Update(f.ctx, r.ID, ResourcePatch{Status: ptr(model.StatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, first, r.CompletionDate.Time)
}

func TestCheckinListNewestFirst(t *testing.T) {
	f := newFixture(t)
	for _, offset := range []int{-10, -1, -5} {
		_, err := f.svc.Checkins.Create(f.ctx, CheckinInput{
			TeamMember: "Alice Johnson", Notes: "n", Date: f.today().AddDays(offset),
		})
		require.NoError(t, err)
	}
	list := f.svc.Checkins.List(model.Filter{})
	require.Len(t, list, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{list[0].ID, list[1].ID, list[2].ID})

	assert.Len(t, f.svc.Checkins.List(model.Filter{Days: 7}), 2)

	c, err := f.svc.Checkins.Update(f.ctx, 1, CheckinPatch{FollowUp: ptr(true)})
	require.NoError(t, err)
	assert.True(t, c.FollowUp)
	assert.Equal(t, "Quick Catch-up", c.Type)
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	f := newFixture(t)
	f.gw.FailSave = errors.New("disk full")

	a, err := f.svc.Actions.Create(f.ctx, ActionInput{TeamMember: "Alice Johnson", Action: "x"})
	require.Error(t, err)
	assert.True(t, apperr.IsPersistence(err))
	assert.Equal(t, 1, a.ID)
	assert.Len(t, f.svc.Actions.List(model.Filter{}), 1)

	_, err = f.svc.Roster.Add(f.ctx, "Eve Adams")
	assert.True(t, apperr.IsPersistence(err))
	assert.Contains(t, f.svc.Roster.Members(), "Eve Adams")
}

func TestLoadWarnings(t *testing.T) {
	gw := store.NewMemoryGateway()
	gw.Put(string(model.KindActions), []byte("{broken"))
	gw.Put(string(model.KindCheckins), []byte(`[{"id":1,"team_member":"Zed","date":"2025-01-02","type":"Other","notes":"n","tags":[],"follow_up":false,"created_at":"2025-01-02T10:00:00"}]`))

	st := NewState(gw, WithDefaultMembers([]string{"Zed"}))
	warnings := st.Load(context.Background())
	require.Len(t, warnings, 1)
	assert.True(t, apperr.IsPersistence(warnings[0]))

	snap := st.Snapshot()
	assert.Empty(t, snap.Actions)
	require.Len(t, snap.Checkins, 1)
	assert.Equal(t, model.NewDate(2025, 1, 2), snap.Checkins[0].Date)
	assert.Equal(t, []string{"Zed"}, snap.Members)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Actions.Create(f.ctx, ActionInput{TeamMember: "Alice Johnson", Action: "x", DueDate: f.today().AddDays(-2)})
	require.NoError(t, err)

	table, err := f.svc.Export("actions", model.Filter{})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Overdue", table.Rows[0][8])

	table, err = f.svc.Export("team_members", model.Filter{})
	require.NoError(t, err)
	assert.Len(t, table.Rows, 4)

	_, err = f.svc.Export("payroll", model.Filter{})
	assert.True(t, apperr.IsNotFound(err))
}

func TestTodayFollowsLocation(t *testing.T) {
	ctx := context.Background()
	// 22:30 UTC on 30 June is already 1 July in UTC+3.
	clock := time.Date(2025, 6, 30, 22, 30, 0, 0, time.UTC)
	east := time.FixedZone("UTC+3", 3*60*60)
	st := NewState(store.NewMemoryGateway(), WithClock(func() time.Time { return clock }), WithLocation(east))
	require.Empty(t, st.Load(ctx))
	svc := New(st)

	assert.Equal(t, model.NewDate(2025, 7, 1), st.Today())

	a, err := svc.Actions.Create(ctx, ActionInput{TeamMember: "Alice Johnson", Action: "file report", DueDate: model.NewDate(2025, 6, 30)})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOverdue, a.Status)

	b, err := svc.Actions.Create(ctx, ActionInput{TeamMember: "Alice Johnson", Action: "plan review"})
	require.NoError(t, err)
	assert.Equal(t, model.NewDate(2025, 7, 8), b.DueDate)
}

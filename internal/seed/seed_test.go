package seed

import (
	"context"
	"testing"
	"time"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/GlitchedDuck/Manager-hub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T, gw store.Gateway) *service.Services {
	t.Helper()
	now := func() time.Time { return time.Date(2025, 6, 30, 9, 30, 0, 0, time.UTC) }
	st := service.NewState(gw, service.WithClock(now), service.WithDefaultMembers([]string{"Alice Johnson"}))
	require.Empty(t, st.Load(context.Background()))
	return service.New(st)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	gw := store.NewMemoryGateway()
	svc := newServices(t, gw)

	sum, err := Run(ctx, svc, false)
	require.NoError(t, err)
	assert.Equal(t, Summary{
		model.KindCheckins:  4,
		model.KindActions:   4,
		model.KindTraining:  4,
		model.KindMatrix:    9,
		model.KindBookings:  4,
		model.KindResources: 4,
	}, sum)

	assert.Equal(t, []string{"Alice Johnson", "Bob Smith", "Carol Williams", "David Brown"}, svc.Roster.Members())

	var pending, completedPlans int
	for _, p := range svc.Training.List(model.Filter{}) {
		if p.ApprovalStatus == model.ApprovalPending {
			pending++
		}
		if p.Status == model.StatusCompleted {
			completedPlans++
		}
	}
	assert.Equal(t, 1, pending)
	assert.Equal(t, 1, completedPlans)

	overdue := svc.Actions.List(model.Filter{Status: string(model.StatusOverdue)})
	require.Len(t, overdue, 1)
	assert.Equal(t, "David Brown", overdue[0].TeamMember)

	done := svc.Bookings.List(model.Filter{Status: string(model.StatusCompleted)})
	require.Len(t, done, 1)
	assert.Equal(t, "Carol Williams", done[0].TeamMember)
	require.NotNil(t, done[0].Attendance)
	assert.Equal(t, model.AttendanceAttended, *done[0].Attendance)

	// Everything went through the gateway.
	reloaded := newServices(t, gw)
	assert.Len(t, reloaded.Matrix.List(model.Filter{}), 9)
	assert.Len(t, reloaded.Roster.Members(), 4)
}

func TestRunRefusesNonEmptyHub(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t, store.NewMemoryGateway())

	_, err := Run(ctx, svc, false)
	require.NoError(t, err)

	_, err = Run(ctx, svc, false)
	assert.ErrorIs(t, err, ErrNotEmpty)

	sum, err := Run(ctx, svc, true)
	require.NoError(t, err)
	assert.Equal(t, 4, sum[model.KindCheckins])
	assert.Len(t, svc.Checkins.List(model.Filter{}), 8)
}

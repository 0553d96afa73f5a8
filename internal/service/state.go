package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/observability"
	"github.com/GlitchedDuck/Manager-hub/internal/store"
)

// State is the in-memory record store shared by every service. It is built
// once at startup and passed to each service; all access goes through mu.
type State struct {
	mu             sync.Mutex
	gw             store.Gateway
	now            func() time.Time
	loc            *time.Location
	defaultMembers []string

	members   []string
	checkins  []model.Checkin
	actions   []model.Action
	training  []model.TrainingPlan
	matrix    []model.MatrixItem
	bookings  []model.Booking
	resources []model.Resource
}

type Option func(*State)

// WithClock replaces time.Now, so date-relative behavior can be tested.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithLocation sets the zone whose calendar decides "today". Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *State) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithDefaultMembers sets the roster used when none has been saved yet.
func WithDefaultMembers(names []string) Option {
	return func(s *State) { s.defaultMembers = slices.Clone(names) }
}

func NewState(gw store.Gateway, opts ...Option) *State {
	s := &State{
		gw:             gw,
		now:            time.Now,
		loc:            time.UTC,
		defaultMembers: []string{"Alice Johnson", "Bob Smith", "Carol Williams", "David Brown"},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.members = slices.Clone(s.defaultMembers)
	return s
}

// Load reads every collection from the gateway. A collection that fails to
// load keeps its current contents and its error is returned as a warning;
// the remaining collections still load.
func (s *State) Load(ctx context.Context) []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var warnings []error
	loadInto(ctx, s.gw, model.KindCheckins, &s.checkins, &warnings)
	loadInto(ctx, s.gw, model.KindActions, &s.actions, &warnings)
	loadInto(ctx, s.gw, model.KindTraining, &s.training, &warnings)
	loadInto(ctx, s.gw, model.KindMatrix, &s.matrix, &warnings)
	loadInto(ctx, s.gw, model.KindBookings, &s.bookings, &warnings)
	loadInto(ctx, s.gw, model.KindResources, &s.resources, &warnings)

	members, found, err := store.LoadCollection[string](ctx, s.gw, string(model.KindTeam))
	switch {
	case err != nil:
		logger.Warn("store.load.failed", "collection", model.KindTeam, "err", err)
		warnings = append(warnings, err)
	case found:
		s.members = members
	default:
		s.members = slices.Clone(s.defaultMembers)
	}

	logger.Info("state.loaded",
		"members", len(s.members), "checkins", len(s.checkins), "actions", len(s.actions),
		"training", len(s.training), "matrix", len(s.matrix), "bookings", len(s.bookings),
		"resources", len(s.resources), "warnings", len(warnings))
	return warnings
}

func loadInto[T any](ctx context.Context, gw store.Gateway, kind model.Kind, dst *[]T, warnings *[]error) {
	items, _, err := store.LoadCollection[T](ctx, gw, string(kind))
	if err != nil {
		logger.Warn("store.load.failed", "collection", kind, "err", err)
		*warnings = append(*warnings, err)
		return
	}
	*dst = items
}

// persist saves one whole collection. The in-memory change stays applied
// when the save fails; the caller gets the error alongside its result.
func persist[T any](ctx context.Context, s *State, kind model.Kind, items []T) error {
	err := store.SaveCollection(ctx, s.gw, string(kind), items)
	if err != nil {
		logger.Error("store.save.failed", "collection", kind, "err", err)
	}
	return err
}

// created records metrics for a new record and passes the save error on.
func created(kind model.Kind, id int, err error) error {
	observability.RecordCreated(string(kind))
	logger.Info(string(kind)+".created", "id", id)
	return err
}

func updated(kind model.Kind, id int, err error) error {
	observability.RecordUpdated(string(kind))
	logger.Info(string(kind)+".updated", "id", id)
	return err
}

// Now is the current instant in the hub's location.
func (s *State) Now() time.Time { return s.now().In(s.loc) }

// Today is the current calendar day in the hub's location.
func (s *State) Today() model.Date { return model.DateOf(s.Now()) }

func (s *State) hasMember(name string) bool {
	return slices.Contains(s.members, name)
}

// requireMember rejects a team_member that is not on the roster right now.
func (s *State) requireMember(name string) error {
	if !s.hasMember(name) {
		return apperr.Validation("team_member", "is not on the team roster")
	}
	return nil
}

// Snapshot returns a detached copy of every collection with action
// statuses derived for today.
func (s *State) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	today := model.DateOf(now)
	snap := model.Snapshot{
		Now:       now,
		Members:   slices.Clone(s.members),
		Checkins:  cloneAll(s.checkins, model.Checkin.Clone),
		Actions:   cloneAll(s.actions, model.Action.Clone),
		Training:  cloneAll(s.training, model.TrainingPlan.Clone),
		Matrix:    cloneAll(s.matrix, model.MatrixItem.Clone),
		Bookings:  cloneAll(s.bookings, model.Booking.Clone),
		Resources: cloneAll(s.resources, model.Resource.Clone),
	}
	for i := range snap.Actions {
		snap.Actions[i].Status = snap.Actions[i].EffectiveStatus(today)
	}
	return snap
}

func cloneAll[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// nextID reproduces the count+1 assignment of the stored collections.
func nextID(count int) int { return count + 1 }

// appendNote adds a dated note unless text is blank.
func appendNote(notes []model.Note, text string, at time.Time) []model.Note {
	text = trim(text)
	if text == "" {
		return notes
	}
	return append(notes, model.Note{Date: model.NewTimestamp(at), Note: text})
}

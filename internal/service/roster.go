package service

import (
	"context"
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

// RosterService manages the team member names. Records that mention a
// removed name are left as they are.
type RosterService struct{ st *State }

func NewRosterService(st *State) *RosterService { return &RosterService{st: st} }

// Members returns the roster in insertion order.
func (s *RosterService) Members() []string {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return slices.Clone(s.st.members)
}

// Add appends name. Adding a name already on the roster changes nothing.
func (s *RosterService) Add(ctx context.Context, name string) ([]string, error) {
	name = trim(name)
	if name == "" {
		return nil, apperr.Validation("name", "is required")
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.hasMember(name) {
		return slices.Clone(st.members), nil
	}
	st.members = append(st.members, name)
	logger.Info("roster.added", "name", name)
	err := persist(ctx, st, model.KindTeam, st.members)
	return slices.Clone(st.members), err
}

func (s *RosterService) Remove(ctx context.Context, name string) ([]string, error) {
	name = trim(name)

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	i := slices.Index(st.members, name)
	if i < 0 {
		return nil, apperr.NotFound("team member", name)
	}
	st.members = slices.Delete(st.members, i, i+1)
	logger.Info("roster.removed", "name", name)
	err := persist(ctx, st, model.KindTeam, st.members)
	return slices.Clone(st.members), err
}

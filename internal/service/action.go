package service

import (
	"context"
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

type ActionInput struct {
	TeamMember string         `json:"team_member" validate:"required"`
	Action     string         `json:"action" validate:"required"`
	Priority   model.Priority `json:"priority" validate:"required,enum=priority"`
	Owner      string         `json:"owner" validate:"required,enum=owner"`
	DueDate    model.Date     `json:"due_date"`
	Category   string         `json:"category" validate:"required,enum=action_category"`
	Notes      string         `json:"notes"`
}

type ActionPatch struct {
	Status *model.Status `json:"status" validate:"omitempty,enum=action_update_status"`
	Note   string        `json:"note"`
}

type ActionService struct{ st *State }

func NewActionService(st *State) *ActionService { return &ActionService{st: st} }

// Create stores a new action. A due date already in the past starts the
// action as Overdue.
func (s *ActionService) Create(ctx context.Context, in ActionInput) (model.Action, error) {
	in.TeamMember = trim(in.TeamMember)
	in.Action = trim(in.Action)
	in.Priority = model.Priority(orDefault(string(in.Priority), model.EnumPriority))
	in.Owner = orDefault(in.Owner, model.EnumOwner)
	in.Category = orDefault(in.Category, model.EnumActionCategory)
	if err := validateStruct(in); err != nil {
		return model.Action{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.requireMember(in.TeamMember); err != nil {
		return model.Action{}, err
	}

	now := st.Now()
	today := model.DateOf(now)
	if in.DueDate.IsZero() {
		in.DueDate = today.AddDays(7)
	}
	a := model.Action{
		ID:         nextID(len(st.actions)),
		TeamMember: in.TeamMember,
		Action:     in.Action,
		Priority:   in.Priority,
		Owner:      in.Owner,
		DueDate:    in.DueDate,
		Category:   in.Category,
		Notes:      trim(in.Notes),
		Status:     model.StatusNotStarted,
		CreatedAt:  model.NewTimestamp(now),
		Updates:    []model.Note{},
	}
	a.Status = a.EffectiveStatus(today)
	st.actions = append(st.actions, a)
	err := persist(ctx, st, model.KindActions, st.actions)
	return a.Clone(), created(model.KindActions, a.ID, err)
}

// Update sets the status and appends an update entry when Note is not blank.
func (s *ActionService) Update(ctx context.Context, id int, patch ActionPatch) (model.Action, error) {
	if err := validateStruct(patch); err != nil {
		return model.Action{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	i := slices.IndexFunc(st.actions, func(a model.Action) bool { return a.ID == id })
	if i < 0 {
		return model.Action{}, apperr.NotFound("action", id)
	}
	now := st.Now()
	a := &st.actions[i]
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	a.Updates = appendNote(a.Updates, patch.Note, now)

	out := a.Clone()
	out.Status = out.EffectiveStatus(model.DateOf(now))
	err := persist(ctx, st, model.KindActions, st.actions)
	return out, updated(model.KindActions, id, err)
}

// List returns matching actions by due date, with Overdue derived for
// today. Status filters apply to the derived status.
func (s *ActionService) List(f model.Filter) []model.Action {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.Now()
	today := model.DateOf(now)
	out := []model.Action{}
	for _, a := range st.actions {
		a = a.Clone()
		a.Status = a.EffectiveStatus(today)
		if model.Match(f.Member, a.TeamMember) && model.Match(f.Status, string(a.Status)) &&
			model.Match(f.Priority, string(a.Priority)) && model.Match(f.Category, a.Category) &&
			model.Window(f.Days).Contains(now, a.DueDate) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Action) int { return byDate(a.DueDate, b.DueDate) })
	return out
}

package service

import (
	"context"
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

type ResourceInput struct {
	TeamMember     string     `json:"team_member" validate:"required"`
	Title          string     `json:"title" validate:"required"`
	Type           string     `json:"type" validate:"required,enum=resource_type"`
	Provider       string     `json:"provider"`
	Cost           float64    `json:"cost"`
	AssignedDate   model.Date `json:"assigned_date"`
	ExpiryDate     model.Date `json:"expiry_date"`
	LinkToExpenses bool       `json:"link_to_expenses"`
	Description    string     `json:"description"`
}

type ResourcePatch struct {
	Status *model.Status `json:"status" validate:"omitempty,enum=resource_status"`
	Note   string        `json:"note"`
}

type ResourceService struct{ st *State }

func NewResourceService(st *State) *ResourceService { return &ResourceService{st: st} }

func (s *ResourceService) Create(ctx context.Context, in ResourceInput) (model.Resource, error) {
	in.TeamMember = trim(in.TeamMember)
	in.Title = trim(in.Title)
	in.Type = orDefault(in.Type, model.EnumResourceType)
	if err := validateStruct(in); err != nil {
		return model.Resource{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.requireMember(in.TeamMember); err != nil {
		return model.Resource{}, err
	}

	now := st.Now()
	today := model.DateOf(now)
	if in.AssignedDate.IsZero() {
		in.AssignedDate = today
	}
	if in.ExpiryDate.IsZero() {
		in.ExpiryDate = today.AddDays(365)
	}
	r := model.Resource{
		ID:             nextID(len(st.resources)),
		TeamMember:     in.TeamMember,
		Title:          in.Title,
		Type:           in.Type,
		Provider:       trim(in.Provider),
		Cost:           in.Cost,
		AssignedDate:   in.AssignedDate,
		ExpiryDate:     in.ExpiryDate,
		LinkToExpenses: in.LinkToExpenses,
		Description:    trim(in.Description),
		Status:         model.StatusNotStarted,
		CreatedAt:      model.NewTimestamp(now),
		Notes:          []model.Note{},
	}
	st.resources = append(st.resources, r)
	err := persist(ctx, st, model.KindResources, st.resources)
	return r.Clone(), created(model.KindResources, r.ID, err)
}

// Update sets the status; completion_date is stamped once, on the first
// move to Completed.
func (s *ResourceService) Update(ctx context.Context, id int, patch ResourcePatch) (model.Resource, error) {
	if err := validateStruct(patch); err != nil {
		return model.Resource{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	i := slices.IndexFunc(st.resources, func(r model.Resource) bool { return r.ID == id })
	if i < 0 {
		return model.Resource{}, apperr.NotFound("resource", id)
	}
	now := st.Now()
	r := &st.resources[i]
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if r.Status == model.StatusCompleted && r.CompletionDate == nil {
		ts := model.NewTimestamp(now)
		r.CompletionDate = &ts
	}
	r.Notes = appendNote(r.Notes, patch.Note, now)

	out := r.Clone()
	err := persist(ctx, st, model.KindResources, st.resources)
	return out, updated(model.KindResources, id, err)
}

// List returns matching resources by assigned date.
func (s *ResourceService) List(f model.Filter) []model.Resource {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.Now()
	out := []model.Resource{}
	for _, r := range st.resources {
		if model.Match(f.Member, r.TeamMember) && model.Match(f.Status, string(r.Status)) &&
			model.Match(f.Type, r.Type) && model.Window(f.Days).Contains(now, r.AssignedDate) {
			out = append(out, r.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b model.Resource) int { return byDate(a.AssignedDate, b.AssignedDate) })
	return out
}

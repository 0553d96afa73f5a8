package service

import (
	"context"
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

type MatrixInput struct {
	TeamMember     string         `json:"team_member" validate:"required"`
	SkillName      string         `json:"skill_name" validate:"required"`
	Category       string         `json:"category" validate:"required,enum=matrix_category"`
	RequiredLevel  model.Level    `json:"required_level" validate:"required,enum=required_level"`
	CurrentLevel   model.Level    `json:"current_level" validate:"required,enum=level"`
	Priority       model.Priority `json:"priority" validate:"required,enum=priority"`
	TargetDate     model.Date     `json:"target_date"`
	TrainingMethod string         `json:"training_method"`
}

type MatrixPatch struct {
	CurrentLevel *model.Level `json:"current_level" validate:"omitempty,enum=level"`
	Completed    *bool        `json:"completed"`
	Note         string       `json:"note"`
}

type MatrixService struct{ st *State }

func NewMatrixService(st *State) *MatrixService { return &MatrixService{st: st} }

// Create adds a skill row. A row whose current level already equals the
// required level starts completed.
func (s *MatrixService) Create(ctx context.Context, in MatrixInput) (model.MatrixItem, error) {
	in.TeamMember = trim(in.TeamMember)
	in.SkillName = trim(in.SkillName)
	in.Category = orDefault(in.Category, model.EnumMatrixCategory)
	in.RequiredLevel = model.Level(orDefault(string(in.RequiredLevel), model.EnumRequiredLevel))
	in.CurrentLevel = model.Level(orDefault(string(in.CurrentLevel), model.EnumLevel))
	in.Priority = model.Priority(orDefault(string(in.Priority), model.EnumPriority))
	if err := validateStruct(in); err != nil {
		return model.MatrixItem{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.requireMember(in.TeamMember); err != nil {
		return model.MatrixItem{}, err
	}

	now := st.Now()
	if in.TargetDate.IsZero() {
		in.TargetDate = model.DateOf(now).AddDays(90)
	}
	m := model.MatrixItem{
		ID:             nextID(len(st.matrix)),
		TeamMember:     in.TeamMember,
		SkillName:      in.SkillName,
		Category:       in.Category,
		RequiredLevel:  in.RequiredLevel,
		CurrentLevel:   in.CurrentLevel,
		Priority:       in.Priority,
		TargetDate:     in.TargetDate,
		TrainingMethod: trim(in.TrainingMethod),
		CreatedAt:      model.NewTimestamp(now),
		Notes:          []model.Note{},
	}
	if m.CurrentLevel == m.RequiredLevel {
		m.Completed = true
		ts := model.NewTimestamp(now)
		m.CompletionDate = &ts
	}
	st.matrix = append(st.matrix, m)
	err := persist(ctx, st, model.KindMatrix, st.matrix)
	return m.Clone(), created(model.KindMatrix, m.ID, err)
}

// Update applies the level and completed flag. completion_date is stamped
// the first time the row becomes completed and kept if it is later
// un-completed.
func (s *MatrixService) Update(ctx context.Context, id int, patch MatrixPatch) (model.MatrixItem, error) {
	if err := validateStruct(patch); err != nil {
		return model.MatrixItem{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	i := slices.IndexFunc(st.matrix, func(m model.MatrixItem) bool { return m.ID == id })
	if i < 0 {
		return model.MatrixItem{}, apperr.NotFound("matrix item", id)
	}
	now := st.Now()
	m := &st.matrix[i]
	if patch.CurrentLevel != nil {
		m.CurrentLevel = *patch.CurrentLevel
	}
	if patch.Completed != nil {
		m.Completed = *patch.Completed
	}
	if m.Completed && m.CompletionDate == nil {
		ts := model.NewTimestamp(now)
		m.CompletionDate = &ts
	}
	m.Notes = appendNote(m.Notes, patch.Note, now)

	out := m.Clone()
	err := persist(ctx, st, model.KindMatrix, st.matrix)
	return out, updated(model.KindMatrix, id, err)
}

// List returns matching rows by target date. Status matches the
// Completed / In Progress pseudo-status.
func (s *MatrixService) List(f model.Filter) []model.MatrixItem {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.Now()
	out := []model.MatrixItem{}
	for _, m := range st.matrix {
		if model.Match(f.Member, m.TeamMember) && model.Match(f.Status, m.MatrixStatus()) &&
			model.Match(f.Priority, string(m.Priority)) && model.Match(f.Category, m.Category) &&
			model.Window(f.Days).Contains(now, m.TargetDate) {
			out = append(out, m.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b model.MatrixItem) int { return byDate(a.TargetDate, b.TargetDate) })
	return out
}

package service

import (
	"context"
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

type TrainingInput struct {
	TeamMember       string         `json:"team_member" validate:"required"`
	CourseName       string         `json:"course_name" validate:"required"`
	Type             string         `json:"type" validate:"required,enum=training_type"`
	StartDate        model.Date     `json:"start_date"`
	EndDate          model.Date     `json:"end_date"`
	Priority         model.Priority `json:"priority" validate:"required,enum=priority"`
	Objectives       string         `json:"objectives"`
	BusinessCase     string         `json:"business_case"`
	Cost             float64        `json:"cost"`
	ApprovalRequired bool           `json:"approval_required"`
}

type TrainingPatch struct {
	Status   *model.Status `json:"status" validate:"omitempty,enum=training_status"`
	Progress *int          `json:"progress" validate:"omitempty,min=0,max=100"`
	Note     string        `json:"note"`
}

type TrainingService struct{ st *State }

func NewTrainingService(st *State) *TrainingService { return &TrainingService{st: st} }

func (s *TrainingService) Create(ctx context.Context, in TrainingInput) (model.TrainingPlan, error) {
	in.TeamMember = trim(in.TeamMember)
	in.CourseName = trim(in.CourseName)
	in.Type = orDefault(in.Type, model.EnumTrainingType)
	in.Priority = model.Priority(orDefault(string(in.Priority), model.EnumPriority))
	if err := validateStruct(in); err != nil {
		return model.TrainingPlan{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.requireMember(in.TeamMember); err != nil {
		return model.TrainingPlan{}, err
	}

	now := st.Now()
	today := model.DateOf(now)
	if in.StartDate.IsZero() {
		in.StartDate = today
	}
	if in.EndDate.IsZero() {
		in.EndDate = today.AddDays(90)
	}
	approval := model.ApprovalApproved
	if in.ApprovalRequired {
		approval = model.ApprovalPending
	}
	t := model.TrainingPlan{
		ID:               nextID(len(st.training)),
		TeamMember:       in.TeamMember,
		CourseName:       in.CourseName,
		Type:             in.Type,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Priority:         in.Priority,
		Objectives:       trim(in.Objectives),
		BusinessCase:     trim(in.BusinessCase),
		Cost:             in.Cost,
		ApprovalRequired: in.ApprovalRequired,
		ApprovalStatus:   approval,
		Status:           model.StatusNotStarted,
		CreatedAt:        model.NewTimestamp(now),
		Notes:            []model.Note{},
	}
	st.training = append(st.training, t)
	err := persist(ctx, st, model.KindTraining, st.training)
	return t.Clone(), created(model.KindTraining, t.ID, err)
}

func (s *TrainingService) Update(ctx context.Context, id int, patch TrainingPatch) (model.TrainingPlan, error) {
	if err := validateStruct(patch); err != nil {
		return model.TrainingPlan{}, err
	}
	return s.mutate(ctx, id, func(t *model.TrainingPlan, st *State) {
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Progress != nil {
			t.Progress = *patch.Progress
		}
		t.Notes = appendNote(t.Notes, patch.Note, st.Now())
	})
}

// Approve sets the approval decision to Approved. Repeated calls re-set it.
func (s *TrainingService) Approve(ctx context.Context, id int) (model.TrainingPlan, error) {
	return s.decide(ctx, id, model.ApprovalApproved)
}

// Reject sets the approval decision to Rejected. Repeated calls re-set it.
func (s *TrainingService) Reject(ctx context.Context, id int) (model.TrainingPlan, error) {
	return s.decide(ctx, id, model.ApprovalRejected)
}

func (s *TrainingService) decide(ctx context.Context, id int, decision model.ApprovalStatus) (model.TrainingPlan, error) {
	return s.mutate(ctx, id, func(t *model.TrainingPlan, _ *State) {
		t.ApprovalStatus = decision
	})
}

func (s *TrainingService) mutate(ctx context.Context, id int, apply func(*model.TrainingPlan, *State)) (model.TrainingPlan, error) {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	i := slices.IndexFunc(st.training, func(t model.TrainingPlan) bool { return t.ID == id })
	if i < 0 {
		return model.TrainingPlan{}, apperr.NotFound("training plan", id)
	}
	apply(&st.training[i], st)
	out := st.training[i].Clone()
	err := persist(ctx, st, model.KindTraining, st.training)
	return out, updated(model.KindTraining, id, err)
}

// List returns matching plans by start date.
func (s *TrainingService) List(f model.Filter) []model.TrainingPlan {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.Now()
	out := []model.TrainingPlan{}
	for _, t := range st.training {
		if model.Match(f.Member, t.TeamMember) && model.Match(f.Status, string(t.Status)) &&
			model.Match(f.Priority, string(t.Priority)) && model.Match(f.Type, t.Type) &&
			model.Window(f.Days).Contains(now, t.StartDate) {
			out = append(out, t.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b model.TrainingPlan) int { return byDate(a.StartDate, b.StartDate) })
	return out
}

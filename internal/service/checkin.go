package service

import (
	"context"
	"slices"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

type CheckinInput struct {
	TeamMember string     `json:"team_member" validate:"required"`
	Date       model.Date `json:"date"`
	Type       string     `json:"type" validate:"required,enum=checkin_type"`
	Notes      string     `json:"notes" validate:"required"`
	Tags       []string   `json:"tags" validate:"dive,enum=checkin_tag"`
	FollowUp   bool       `json:"follow_up"`
}

// CheckinPatch toggles the follow-up flag; check-in notes are the record
// itself and are not edited.
type CheckinPatch struct {
	FollowUp *bool `json:"follow_up"`
}

type CheckinService struct{ st *State }

func NewCheckinService(st *State) *CheckinService { return &CheckinService{st: st} }

func (s *CheckinService) Create(ctx context.Context, in CheckinInput) (model.Checkin, error) {
	in.TeamMember = trim(in.TeamMember)
	in.Notes = trim(in.Notes)
	if in.Type == "" {
		in.Type = model.EnumDefault(model.EnumCheckinType)
	}
	if err := validateStruct(in); err != nil {
		return model.Checkin{}, err
	}

	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.requireMember(in.TeamMember); err != nil {
		return model.Checkin{}, err
	}

	now := st.Now()
	if in.Date.IsZero() {
		in.Date = model.DateOf(now)
	}
	tags := []string{}
	for _, tag := range in.Tags {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	c := model.Checkin{
		ID:         nextID(len(st.checkins)),
		TeamMember: in.TeamMember,
		Date:       in.Date,
		Type:       in.Type,
		Notes:      in.Notes,
		Tags:       tags,
		FollowUp:   in.FollowUp,
		CreatedAt:  model.NewTimestamp(now),
	}
	st.checkins = append(st.checkins, c)
	err := persist(ctx, st, model.KindCheckins, st.checkins)
	return c.Clone(), created(model.KindCheckins, c.ID, err)
}

func (s *CheckinService) Update(ctx context.Context, id int, patch CheckinPatch) (model.Checkin, error) {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	i := slices.IndexFunc(st.checkins, func(c model.Checkin) bool { return c.ID == id })
	if i < 0 {
		return model.Checkin{}, apperr.NotFound("checkin", id)
	}
	c := &st.checkins[i]
	if patch.FollowUp != nil {
		c.FollowUp = *patch.FollowUp
	}
	err := persist(ctx, st, model.KindCheckins, st.checkins)
	return c.Clone(), updated(model.KindCheckins, id, err)
}

// List returns matching check-ins, most recent date first. Filter.Type
// matches the check-in type.
func (s *CheckinService) List(f model.Filter) []model.Checkin {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.Now()
	out := []model.Checkin{}
	for _, c := range st.checkins {
		if model.Match(f.Member, c.TeamMember) && model.Match(f.Type, c.Type) &&
			model.Window(f.Days).Contains(now, c.Date) {
			out = append(out, c.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b model.Checkin) int { return byDate(b.Date, a.Date) })
	return out
}

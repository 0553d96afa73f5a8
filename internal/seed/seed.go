// Package seed writes a representative data set through the entity services,
// so every seeded record passes the same validation and id assignment as one
// entered by hand.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
)

var ErrNotEmpty = errors.New("seed: data already present")

const (
	alice = "Alice Johnson"
	bob   = "Bob Smith"
	carol = "Carol Williams"
	david = "David Brown"
)

// Summary counts the records written per collection.
type Summary map[model.Kind]int

// Run seeds every collection. Unless force is set it refuses to touch a hub
// that already holds records. Members the sample data refers to are added to
// the roster first.
func Run(ctx context.Context, svc *service.Services, force bool) (Summary, error) {
	if !force && !isEmpty(svc.State.Snapshot()) {
		return nil, ErrNotEmpty
	}
	for _, name := range []string{alice, bob, carol, david} {
		if _, err := svc.Roster.Add(ctx, name); err != nil {
			return nil, fmt.Errorf("roster %q: %w", name, err)
		}
	}

	s := &seeder{ctx: ctx, svc: svc, today: svc.State.Today(), sum: Summary{}}
	steps := []struct {
		name string
		run  func() error
	}{
		{"checkins", s.checkins},
		{"actions", s.actions},
		{"training", s.training},
		{"matrix", s.matrix},
		{"bookings", s.bookings},
		{"resources", s.resources},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return s.sum, fmt.Errorf("seed %s: %w", step.name, err)
		}
		logger.Info("seed step done", "step", step.name)
	}
	return s.sum, nil
}

func isEmpty(s model.Snapshot) bool {
	return len(s.Checkins)+len(s.Actions)+len(s.Training)+len(s.Matrix)+len(s.Bookings)+len(s.Resources) == 0
}

type seeder struct {
	ctx   context.Context
	svc   *service.Services
	today model.Date
	sum   Summary
}

func (s *seeder) day(offset int) model.Date { return s.today.AddDays(offset) }

func (s *seeder) checkins() error {
	inputs := []service.CheckinInput{
		{
			TeamMember: alice,
			Date:       s.day(-2),
			Type:       "Training Discussion",
			Notes:      "Discussed progress on the Python certification. Final module left; wants to move on to data visualisation next.",
			Tags:       []string{"Training", "Development"},
			FollowUp:   true,
		},
		{
			TeamMember: bob,
			Date:       s.day(-5),
			Type:       "Wellbeing Check",
			Notes:      "Workload feels heavy this month. Agreed to review priorities together and look at time management training.",
			Tags:       []string{"Wellbeing"},
		},
		{
			TeamMember: carol,
			Date:       s.day(-7),
			Type:       "Progress Update",
			Notes:      "Leadership workshop completed. Already applying the delegation techniques with the new starters.",
			Tags:       []string{"Development", "Recognition"},
		},
		{
			TeamMember: david,
			Date:       s.day(-12),
			Type:       "Quick Catch-up",
			Notes:      "CRM rollout going well. Asked about project management training for next quarter.",
			Tags:       []string{"Project"},
		},
	}
	for _, in := range inputs {
		if _, err := s.svc.Checkins.Create(s.ctx, in); err != nil {
			return err
		}
		s.sum[model.KindCheckins]++
	}
	return nil
}

func (s *seeder) actions() error {
	type row struct {
		in     service.ActionInput
		status model.Status
		note   string
	}
	rows := []row{
		{
			in: service.ActionInput{
				TeamMember: alice,
				Action:     "Complete final module of Python certification",
				Priority:   model.PriorityHigh,
				Owner:      "Team Member",
				DueDate:    s.day(14),
				Category:   "Training",
			},
			status: model.StatusInProgress,
			note:   "Module 4 of 5 done.",
		},
		{
			in: service.ActionInput{
				TeamMember: bob,
				Action:     "Review and prioritize training matrix items with manager",
				Priority:   model.PriorityHigh,
				Owner:      "Both",
				DueDate:    s.day(5),
				Category:   "Development",
			},
		},
		{
			in: service.ActionInput{
				TeamMember: carol,
				Action:     "Submit expenses for leadership training",
				Priority:   model.PriorityMedium,
				Owner:      "Team Member",
				DueDate:    s.day(7),
				Category:   "Admin",
			},
		},
		{
			in: service.ActionInput{
				TeamMember: david,
				Action:     "Share CRM quick reference guide with the team",
				Priority:   model.PriorityLow,
				Owner:      "Team Member",
				DueDate:    s.day(-3),
				Category:   "Project",
			},
		},
	}
	for _, r := range rows {
		a, err := s.svc.Actions.Create(s.ctx, r.in)
		if err != nil {
			return err
		}
		s.sum[model.KindActions]++
		if r.status == "" {
			continue
		}
		status := r.status
		if _, err := s.svc.Actions.Update(s.ctx, a.ID, service.ActionPatch{Status: &status, Note: r.note}); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) training() error {
	type row struct {
		in       service.TrainingInput
		status   model.Status
		progress int
	}
	rows := []row{
		{
			in: service.TrainingInput{
				TeamMember:       alice,
				CourseName:       "Advanced Python for Data Analysis",
				Type:             "Online Course",
				StartDate:        s.day(-45),
				EndDate:          s.day(14),
				Priority:         model.PriorityHigh,
				Objectives:       "Automate the monthly reporting pack",
				BusinessCase:     "Cuts two days of manual spreadsheet work per month",
				Cost:             299,
				ApprovalRequired: true,
			},
			status:   model.StatusInProgress,
			progress: 85,
		},
		{
			in: service.TrainingInput{
				TeamMember: bob,
				CourseName: "Time Management & Productivity",
				Type:       "Self-Study",
				StartDate:  s.day(-10),
				EndDate:    s.day(50),
				Priority:   model.PriorityMedium,
			},
			status:   model.StatusInProgress,
			progress: 15,
		},
		{
			in: service.TrainingInput{
				TeamMember:       carol,
				CourseName:       "Leadership Fundamentals",
				Type:             "In-Person Training",
				StartDate:        s.day(-60),
				EndDate:          s.day(-18),
				Priority:         model.PriorityHigh,
				Cost:             850,
				ApprovalRequired: true,
			},
			status:   model.StatusCompleted,
			progress: 100,
		},
		{
			in: service.TrainingInput{
				TeamMember:       david,
				CourseName:       "PRINCE2 Foundation",
				Type:             "Certification",
				StartDate:        s.day(30),
				EndDate:          s.day(120),
				Priority:         model.PriorityMedium,
				BusinessCase:     "Needed to run the next system rollout",
				Cost:             1200,
				ApprovalRequired: true,
			},
		},
	}
	for _, r := range rows {
		p, err := s.svc.Training.Create(s.ctx, r.in)
		if err != nil {
			return err
		}
		s.sum[model.KindTraining]++
		// Plans awaiting a decision stay pending.
		if r.status == "" {
			continue
		}
		if p.ApprovalStatus == model.ApprovalPending {
			if _, err := s.svc.Training.Approve(s.ctx, p.ID); err != nil {
				return err
			}
		}
		status, progress := r.status, r.progress
		if _, err := s.svc.Training.Update(s.ctx, p.ID, service.TrainingPatch{Status: &status, Progress: &progress}); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) matrix() error {
	inputs := []service.MatrixInput{
		{TeamMember: alice, SkillName: "Python Programming", Category: "Technical", RequiredLevel: model.LevelAdvanced, CurrentLevel: model.LevelIntermediate, Priority: model.PriorityHigh, TargetDate: s.day(30), TrainingMethod: "Online course"},
		{TeamMember: alice, SkillName: "SQL Database Management", Category: "Technical", RequiredLevel: model.LevelIntermediate, CurrentLevel: model.LevelBasic, Priority: model.PriorityMedium, TargetDate: s.day(90)},
		{TeamMember: alice, SkillName: "Data Visualization", Category: "Technical", RequiredLevel: model.LevelIntermediate, CurrentLevel: model.LevelIntermediate, Priority: model.PriorityMedium, TargetDate: s.day(-5)},
		{TeamMember: bob, SkillName: "Sytner Product Range", Category: "Product Knowledge", RequiredLevel: model.LevelAdvanced, CurrentLevel: model.LevelIntermediate, Priority: model.PriorityHigh, TargetDate: s.day(60)},
		{TeamMember: bob, SkillName: "Customer Service Excellence", Category: "Soft Skills", RequiredLevel: model.LevelAdvanced, CurrentLevel: model.LevelAdvanced, Priority: model.PriorityMedium, TargetDate: s.day(-10)},
		{TeamMember: carol, SkillName: "Team Leadership", Category: "Leadership", RequiredLevel: model.LevelIntermediate, CurrentLevel: model.LevelIntermediate, Priority: model.PriorityHigh, TargetDate: s.day(-18)},
		{TeamMember: carol, SkillName: "Conflict Resolution", Category: "Soft Skills", RequiredLevel: model.LevelAdvanced, CurrentLevel: model.LevelBasic, Priority: model.PriorityMedium, TargetDate: s.day(45)},
		{TeamMember: david, SkillName: "CRM System", Category: "Systems/Tools", RequiredLevel: model.LevelExpert, CurrentLevel: model.LevelAdvanced, Priority: model.PriorityHigh, TargetDate: s.day(30)},
		{TeamMember: david, SkillName: "Project Management", Category: "Leadership", RequiredLevel: model.LevelIntermediate, CurrentLevel: model.LevelNone, Priority: model.PriorityLow, TargetDate: s.day(90)},
	}
	for _, in := range inputs {
		if _, err := s.svc.Matrix.Create(s.ctx, in); err != nil {
			return err
		}
		s.sum[model.KindMatrix]++
	}
	return nil
}

func (s *seeder) bookings() error {
	inputs := []service.BookingInput{
		{TeamMember: bob, CourseName: "Sytner Sales Excellence Programme", Location: "Regional Centre", StartDate: s.day(21), EndDate: s.day(23), Cost: 650, TravelRequired: true, ExpensesEstimate: 200, BookingRef: "SYTN-2024-0342"},
		{TeamMember: alice, CourseName: "Digital Marketing Fundamentals", Location: "Virtual", StartDate: s.day(7), EndDate: s.day(7), Cost: 195, BookingRef: "SYTN-2024-0389"},
		{TeamMember: carol, CourseName: "Advanced Leadership Workshop", Location: "Head Office", StartDate: s.day(-21), EndDate: s.day(-18), Cost: 850, TravelRequired: true, ExpensesEstimate: 350, BookingRef: "SYTN-2024-0298"},
		{TeamMember: david, CourseName: "Customer Experience Excellence", Location: "Regional Centre", StartDate: s.day(35), EndDate: s.day(36), Cost: 450, TravelRequired: true, ExpensesEstimate: 180, BookingRef: "SYTN-2024-0401"},
	}
	for _, in := range inputs {
		b, err := s.svc.Bookings.Create(s.ctx, in)
		if err != nil {
			return err
		}
		s.sum[model.KindBookings]++
		if b.EndDate.Before(s.today) {
			status, attendance := model.StatusCompleted, model.AttendanceAttended
			feedback := "Excellent workshop with practical exercises."
			patch := service.BookingPatch{Status: &status, Attendance: &attendance, Feedback: &feedback}
			if _, err := s.svc.Bookings.Update(s.ctx, b.ID, patch); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) resources() error {
	type row struct {
		in     service.ResourceInput
		status model.Status
		note   string
	}
	rows := []row{
		{
			in:     service.ResourceInput{TeamMember: alice, Title: "Python for Data Analysis (O'Reilly)", Type: "Book", Provider: "O'Reilly Media", Cost: 45.99, AssignedDate: s.day(-50), ExpiryDate: s.day(315), LinkToExpenses: true},
			status: model.StatusInProgress,
			note:   "Halfway through, chapter 7.",
		},
		{
			in:     service.ResourceInput{TeamMember: alice, Title: "LinkedIn Learning Premium", Type: "License/Subscription", Provider: "LinkedIn", Cost: 299.99, AssignedDate: s.day(-90), ExpiryDate: s.day(275), LinkToExpenses: true},
			status: model.StatusInProgress,
		},
		{
			in: service.ResourceInput{TeamMember: bob, Title: "Getting Things Done", Type: "Book", Provider: "Penguin", Cost: 12.99, AssignedDate: s.day(-5), ExpiryDate: s.day(360)},
		},
		{
			in:     service.ResourceInput{TeamMember: carol, Title: "The Five Dysfunctions of a Team", Type: "Book", Provider: "Wiley", Cost: 14.5, AssignedDate: s.day(-40), ExpiryDate: s.day(325)},
			status: model.StatusCompleted,
			note:   "Shared key takeaways at the team meeting.",
		},
	}
	for _, r := range rows {
		res, err := s.svc.Resources.Create(s.ctx, r.in)
		if err != nil {
			return err
		}
		s.sum[model.KindResources]++
		if r.status == "" {
			continue
		}
		status := r.status
		if _, err := s.svc.Resources.Update(s.ctx, res.ID, service.ResourcePatch{Status: &status, Note: r.note}); err != nil {
			return err
		}
	}
	return nil
}

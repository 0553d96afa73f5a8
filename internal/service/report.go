package service

import (
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/report"
)

// ReportService runs the rollups in package report over a fresh snapshot.
type ReportService struct{ st *State }

func NewReportService(st *State) *ReportService { return &ReportService{st: st} }

func (s *ReportService) Dashboard() report.Dashboard {
	return report.BuildDashboard(s.st.Snapshot())
}

func (s *ReportService) Report(w model.Window) report.Report {
	return report.Build(s.st.Snapshot(), w)
}

func (s *ReportService) RequiresAttention(limit int) []model.Action {
	return report.RequiresAttention(s.st.Snapshot(), limit)
}

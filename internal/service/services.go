package service

// Services bundles every service over one State.
type Services struct {
	State     *State
	Checkins  *CheckinService
	Actions   *ActionService
	Training  *TrainingService
	Matrix    *MatrixService
	Bookings  *BookingService
	Resources *ResourceService
	Roster    *RosterService
	Reports   *ReportService
}

func New(st *State) *Services {
	return &Services{
		State:     st,
		Checkins:  NewCheckinService(st),
		Actions:   NewActionService(st),
		Training:  NewTrainingService(st),
		Matrix:    NewMatrixService(st),
		Bookings:  NewBookingService(st),
		Resources: NewResourceService(st),
		Roster:    NewRosterService(st),
		Reports:   NewReportService(st),
	}
}

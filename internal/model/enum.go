package model

// Status is the lifecycle state shared by actions, plans, bookings and resources.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusOverdue    Status = "Overdue"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusBooked     Status = "Booked"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// Level is a skill proficiency; the order of Levels is the ranking.
type Level string

const (
	LevelNone         Level = "None"
	LevelBasic        Level = "Basic"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

var Levels = []Level{LevelNone, LevelBasic, LevelIntermediate, LevelAdvanced, LevelExpert}

// Rank returns the position of l in Levels, or -1.
func (l Level) Rank() int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return -1
}

const (
	AttendanceAttended     = "Attended"
	AttendancePartial      = "Partial"
	AttendanceDidNotAttend = "Did Not Attend"
)

// Matrix list filters use these two pseudo-statuses over the completed flag.
const (
	MatrixStatusCompleted  = "Completed"
	MatrixStatusInProgress = "In Progress"
)

// Enum set names, used by the "enum" validation tag.
const (
	EnumCheckinType    = "checkin_type"
	EnumCheckinTag     = "checkin_tag"
	EnumPriority       = "priority"
	EnumOwner          = "owner"
	EnumActionCategory = "action_category"
	EnumActionUpdate   = "action_update_status"
	EnumTrainingType   = "training_type"
	EnumTrainingStatus = "training_status"
	EnumMatrixCategory = "matrix_category"
	EnumLevel          = "level"
	EnumRequiredLevel  = "required_level"
	EnumLocation       = "location"
	EnumBookingStatus  = "booking_status"
	EnumAttendance     = "attendance"
	EnumResourceType   = "resource_type"
	EnumResourceStatus = "resource_status"
)

// Enums lists the allowed values per enum set, in form order. The first
// value is the form default where one applies.
var Enums = map[string][]string{
	EnumCheckinType: {"Quick Catch-up", "Progress Update", "Concern/Issue", "Wellbeing Check", "Training Discussion", "Other"},
	EnumCheckinTag:  {"Performance", "Development", "Wellbeing", "Project", "Training", "Conflict", "Recognition"},
	EnumPriority:    {string(PriorityLow), string(PriorityMedium), string(PriorityHigh)},
	EnumOwner:       {"Manager", "Team Member", "Both"},
	EnumActionCategory: {
		"Development", "Performance", "Project", "Training", "Admin", "Other",
	},
	EnumActionUpdate: {string(StatusNotStarted), string(StatusInProgress), string(StatusCompleted)},
	EnumTrainingType: {
		"Online Course", "In-Person Training", "Certification", "Mentoring",
		"Self-Study", "Sytner Training", "On-the-Job", "Other",
	},
	EnumTrainingStatus: {string(StatusNotStarted), string(StatusInProgress), string(StatusCompleted), string(StatusCancelled)},
	EnumMatrixCategory: {
		"Technical", "Soft Skills", "Leadership", "Product Knowledge",
		"Systems/Tools", "Compliance", "Safety", "Other",
	},
	EnumLevel:         {string(LevelNone), string(LevelBasic), string(LevelIntermediate), string(LevelAdvanced), string(LevelExpert)},
	EnumRequiredLevel: {string(LevelBasic), string(LevelIntermediate), string(LevelAdvanced), string(LevelExpert)},
	EnumLocation:      {"Head Office", "Regional Centre", "Virtual", "On-site", "External Venue", "Other"},
	EnumBookingStatus: {string(StatusBooked), string(StatusInProgress), string(StatusCompleted), string(StatusCancelled)},
	EnumAttendance:    {AttendanceAttended, AttendancePartial, AttendanceDidNotAttend},
	EnumResourceType: {
		"Book", "Online Course", "License/Subscription", "Certification",
		"Conference", "Video Course", "Other",
	},
	EnumResourceStatus: {string(StatusNotStarted), string(StatusInProgress), string(StatusCompleted)},
}

// InEnum reports whether v is a member of the named set.
func InEnum(set, v string) bool {
	for _, allowed := range Enums[set] {
		if allowed == v {
			return true
		}
	}
	return false
}

// EnumDefault returns the first value of the named set.
func EnumDefault(set string) string {
	if vals := Enums[set]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

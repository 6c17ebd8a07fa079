package dashboard

// UserStats is one row of the team overview table.
type UserStats struct {
	UserID    string  `json:"user_id"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	TotalDays int     `json:"total_days"`
	Present   int     `json:"present"`
	Remote    int     `json:"remote"`
	Absent    int     `json:"absent"`
	Leave     int     `json:"leave"`
	WorkHours float64 `json:"work_hours"`
}

// UnmarkedUser identifies a user with no record for today.
type UnmarkedUser struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// TeamStats aggregates every user's records over a date range.
// Percentages are of total records in range, rounded to 2 decimals, and
// all zero when the range holds no records. TotalEmployees is always the
// full user count regardless of filtering. NotMarkedToday is populated
// only when the range is exactly the current calendar day.
type TeamStats struct {
	TotalEmployees    int            `json:"total_employees"`
	PresentPercentage float64        `json:"present_percentage"`
	RemotePercentage  float64        `json:"remote_percentage"`
	AbsentPercentage  float64        `json:"absent_percentage"`
	LeavePercentage   float64        `json:"leave_percentage"`
	AverageWorkHours  float64        `json:"average_work_hours"`
	UserStats         []UserStats    `json:"user_stats"`
	NotMarkedToday    []UnmarkedUser `json:"not_marked_today"`
}

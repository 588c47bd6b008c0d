package analytics

// DepartmentCount is one slice of the department distribution.
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendPoint is one day of the attendance trend.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// AnalyticsResponse is a read-only aggregate over the current store
// state; recomputing it without intervening writes yields identical
// values.
type AnalyticsResponse struct {
	AttendanceRate         float64           `json:"attendance_rate"`
	LeaveRate              float64           `json:"leave_rate"`
	TotalPayroll           float64           `json:"total_payroll"`
	EmployeeCount          int               `json:"employee_count"`
	DepartmentDistribution []DepartmentCount `json:"department_distribution"`
	AttendanceTrend        []TrendPoint      `json:"attendance_trend"`
}

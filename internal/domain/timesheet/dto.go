package timesheet

type SessionResponse struct {
	Shift       string  `json:"shift"`
	TimeIn      int64   `json:"time_in"`             // epoch ms
	TimeOut     *int64  `json:"time_out"`            // epoch ms, nil while open
	PhotoInRef  *string `json:"photo_in,omitempty"`  // opaque, storage is external
	PhotoOutRef *string `json:"photo_out,omitempty"` // opaque, storage is external
	DurationMs  int64   `json:"duration_ms"`
	Duration    string  `json:"duration"` // "3h 0m"
	Validated   bool    `json:"validated"`
	AutoClosed  bool    `json:"auto_closed"`
	IsLate      bool    `json:"is_late"`
	LateMinutes int     `json:"late_minutes"`
}

type DayRecordResponse struct {
	Date        string            `json:"date"` // 2006-01-02
	Sessions    []SessionResponse `json:"sessions"`
	TotalMs     int64             `json:"total_ms"`
	Total       string            `json:"total"`
	ValidatedMs int64             `json:"validated_ms"`
	Validated   string            `json:"validated"`
	PendingMs   int64             `json:"pending_ms"`
	Pending     string            `json:"pending"`
}

type TimesheetResponse struct {
	StudentID     string              `json:"student_id"`
	From          string              `json:"from"`
	To            string              `json:"to"`
	Days          []DayRecordResponse `json:"days"`
	TotalMs       int64               `json:"total_ms"`
	Total         string              `json:"total"`
	ValidatedMs   int64               `json:"validated_ms"`
	Validated     string              `json:"validated"`
	PendingMs     int64               `json:"pending_ms"`
	Pending       string              `json:"pending"`
	RequiredHours float64             `json:"required_hours"`
	ProgressPct   float64             `json:"progress_pct"`
}

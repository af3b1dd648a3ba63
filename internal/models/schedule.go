package models

import "time"

// Weekday names a day column group in the weekly schedule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven days in schedule column order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidWeekday reports whether the day is one of the seven recognized names.
func ValidWeekday(day Weekday) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DayTimes holds the four optional wall-clock values of a single day.
// Nil means the field is not set for that day.
type DayTimes struct {
	Start      *string `json:"start"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	End        *string `json:"end"`
}

// Empty reports whether none of the four fields is set.
func (t DayTimes) Empty() bool {
	return t.Start == nil && t.BreakStart == nil && t.BreakEnd == nil && t.End == nil
}

// WeeklySchedule is the per-employee timetable row. One row per user_id.
type WeeklySchedule struct {
	ID      string `db:"id" json:"id"`
	UserID  string `db:"user_id" json:"user_id"`
	Service string `db:"service" json:"service"`

	MondayStart         *string `db:"monday_start" json:"monday_start"`
	MondayBreakStart    *string `db:"monday_break_start" json:"monday_break_start"`
	MondayBreakEnd      *string `db:"monday_break_end" json:"monday_break_end"`
	MondayEnd           *string `db:"monday_end" json:"monday_end"`
	TuesdayStart        *string `db:"tuesday_start" json:"tuesday_start"`
	TuesdayBreakStart   *string `db:"tuesday_break_start" json:"tuesday_break_start"`
	TuesdayBreakEnd     *string `db:"tuesday_break_end" json:"tuesday_break_end"`
	TuesdayEnd          *string `db:"tuesday_end" json:"tuesday_end"`
	WednesdayStart      *string `db:"wednesday_start" json:"wednesday_start"`
	WednesdayBreakStart *string `db:"wednesday_break_start" json:"wednesday_break_start"`
	WednesdayBreakEnd   *string `db:"wednesday_break_end" json:"wednesday_break_end"`
	WednesdayEnd        *string `db:"wednesday_end" json:"wednesday_end"`
	ThursdayStart       *string `db:"thursday_start" json:"thursday_start"`
	ThursdayBreakStart  *string `db:"thursday_break_start" json:"thursday_break_start"`
	ThursdayBreakEnd    *string `db:"thursday_break_end" json:"thursday_break_end"`
	ThursdayEnd         *string `db:"thursday_end" json:"thursday_end"`
	FridayStart         *string `db:"friday_start" json:"friday_start"`
	FridayBreakStart    *string `db:"friday_break_start" json:"friday_break_start"`
	FridayBreakEnd      *string `db:"friday_break_end" json:"friday_break_end"`
	FridayEnd           *string `db:"friday_end" json:"friday_end"`
	SaturdayStart       *string `db:"saturday_start" json:"saturday_start"`
	SaturdayBreakStart  *string `db:"saturday_break_start" json:"saturday_break_start"`
	SaturdayBreakEnd    *string `db:"saturday_break_end" json:"saturday_break_end"`
	SaturdayEnd         *string `db:"saturday_end" json:"saturday_end"`
	SundayStart         *string `db:"sunday_start" json:"sunday_start"`
	SundayBreakStart    *string `db:"sunday_break_start" json:"sunday_break_start"`
	SundayBreakEnd      *string `db:"sunday_break_end" json:"sunday_break_end"`
	SundayEnd           *string `db:"sunday_end" json:"sunday_end"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Day returns the four time fields of the given day.
func (s *WeeklySchedule) Day(day Weekday) DayTimes {
	switch day {
	case Monday:
		return DayTimes{s.MondayStart, s.MondayBreakStart, s.MondayBreakEnd, s.MondayEnd}
	case Tuesday:
		return DayTimes{s.TuesdayStart, s.TuesdayBreakStart, s.TuesdayBreakEnd, s.TuesdayEnd}
	case Wednesday:
		return DayTimes{s.WednesdayStart, s.WednesdayBreakStart, s.WednesdayBreakEnd, s.WednesdayEnd}
	case Thursday:
		return DayTimes{s.ThursdayStart, s.ThursdayBreakStart, s.ThursdayBreakEnd, s.ThursdayEnd}
	case Friday:
		return DayTimes{s.FridayStart, s.FridayBreakStart, s.FridayBreakEnd, s.FridayEnd}
	case Saturday:
		return DayTimes{s.SaturdayStart, s.SaturdayBreakStart, s.SaturdayBreakEnd, s.SaturdayEnd}
	case Sunday:
		return DayTimes{s.SundayStart, s.SundayBreakStart, s.SundayBreakEnd, s.SundayEnd}
	}
	return DayTimes{}
}

// SetDay replaces the four time fields of the given day.
func (s *WeeklySchedule) SetDay(day Weekday, t DayTimes) {
	switch day {
	case Monday:
		s.MondayStart, s.MondayBreakStart, s.MondayBreakEnd, s.MondayEnd = t.Start, t.BreakStart, t.BreakEnd, t.End
	case Tuesday:
		s.TuesdayStart, s.TuesdayBreakStart, s.TuesdayBreakEnd, s.TuesdayEnd = t.Start, t.BreakStart, t.BreakEnd, t.End
	case Wednesday:
		s.WednesdayStart, s.WednesdayBreakStart, s.WednesdayBreakEnd, s.WednesdayEnd = t.Start, t.BreakStart, t.BreakEnd, t.End
	case Thursday:
		s.ThursdayStart, s.ThursdayBreakStart, s.ThursdayBreakEnd, s.ThursdayEnd = t.Start, t.BreakStart, t.BreakEnd, t.End
	case Friday:
		s.FridayStart, s.FridayBreakStart, s.FridayBreakEnd, s.FridayEnd = t.Start, t.BreakStart, t.BreakEnd, t.End
	case Saturday:
		s.SaturdayStart, s.SaturdayBreakStart, s.SaturdayBreakEnd, s.SaturdayEnd = t.Start, t.BreakStart, t.BreakEnd, t.End
	case Sunday:
		s.SundayStart, s.SundayBreakStart, s.SundayBreakEnd, s.SundayEnd = t.Start, t.BreakStart, t.BreakEnd, t.End
	}
}

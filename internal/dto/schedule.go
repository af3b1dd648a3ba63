package dto

import "github.com/workroster/workroster-api/internal/models"

// UpsertDayRequest replaces the four time fields of a single day.
type UpsertDayRequest struct {
	Start      *string `json:"start"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	End        *string `json:"end"`
}

// Times converts the payload into the domain representation.
func (r UpsertDayRequest) Times() models.DayTimes {
	return models.DayTimes{
		Start:      r.Start,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
		End:        r.End,
	}
}

// UpsertWeekRequest replaces all seven days of an employee's schedule at once.
type UpsertWeekRequest struct {
	Service   string           `json:"service"`
	Monday    UpsertDayRequest `json:"monday"`
	Tuesday   UpsertDayRequest `json:"tuesday"`
	Wednesday UpsertDayRequest `json:"wednesday"`
	Thursday  UpsertDayRequest `json:"thursday"`
	Friday    UpsertDayRequest `json:"friday"`
	Saturday  UpsertDayRequest `json:"saturday"`
	Sunday    UpsertDayRequest `json:"sunday"`
}

// Week maps the payload onto the seven day columns.
func (r UpsertWeekRequest) Week() map[models.Weekday]models.DayTimes {
	return map[models.Weekday]models.DayTimes{
		models.Monday:    r.Monday.Times(),
		models.Tuesday:   r.Tuesday.Times(),
		models.Wednesday: r.Wednesday.Times(),
		models.Thursday:  r.Thursday.Times(),
		models.Friday:    r.Friday.Times(),
		models.Saturday:  r.Saturday.Times(),
		models.Sunday:    r.Sunday.Times(),
	}
}

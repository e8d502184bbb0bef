package services

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
)

// CalendarService exports a provider's due-dated tasks as an iCalendar
// document importable into any calendar app. Tasks without a due date are
// skipped.
type CalendarService struct{}

func NewCalendarService() *CalendarService {
	return &CalendarService{}
}

func (s *CalendarService) TasksICS(tasks []models.Task) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//SoloSuite//Tasks//EN")

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		ev := cal.AddEvent(t.ID.String() + "@solosuite")
		ev.SetCreatedTime(t.CreatedAt)
		ev.SetDtStampTime(time.Now())
		ev.SetStartAt(*t.DueDate)
		ev.SetEndAt(t.DueDate.Add(time.Hour))
		ev.SetSummary(t.Title)
		if t.Description != "" {
			ev.SetDescription(t.Description)
		}
	}
	return cal.Serialize()
}

// Package calendar exports an itinerary as an iCalendar feed of all-day events.
package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/you/go-trip-tracker/internal/dates"
	"github.com/you/go-trip-tracker/internal/domain"
)

const (
	prodID   = "-//go-trip-tracker//itinerary//EN"
	uidHost  = "trips.local"
	calName  = "Trips"
	emptyICS = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + prodID + "\r\nEND:VCALENDAR\r\n"
)

// Encode writes one VEVENT per trip in itinerary order. Trips whose dates do
// not parse, or whose end is before their start, are skipped. DTEND is
// exclusive, so it is the day after the trip's end date.
func Encode(itinerary []domain.Trip, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText("X-WR-CALNAME", calName)

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(now.UTC())

	for _, t := range itinerary {
		start, err := dates.Parse(t.StartDate)
		if err != nil {
			continue
		}
		end, err := dates.Parse(t.EndDate)
		if err != nil || end.Before(start) {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", t.ID, uidHost))
		event.Props.Set(stamp)
		event.Props.SetText(ical.PropSummary, t.Destination)
		event.Props.SetText(ical.PropLocation, t.Destination)
		if t.Description != "" {
			event.Props.SetText(ical.PropDescription, t.Description)
		}

		dtStart := ical.NewProp(ical.PropDateTimeStart)
		dtStart.SetDate(start)
		event.Props.Set(dtStart)

		dtEnd := ical.NewProp(ical.PropDateTimeEnd)
		dtEnd.SetDate(end.AddDate(0, 0, 1))
		event.Props.Set(dtEnd)

		cal.Children = append(cal.Children, event.Component)
	}

	// go-ical refuses to encode a calendar without components
	if len(cal.Children) == 0 {
		return []byte(emptyICS), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("calendar.Encode: %w", err)
	}
	return buf.Bytes(), nil
}

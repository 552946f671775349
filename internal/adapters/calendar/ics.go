package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"eventpoll/internal/domain"
)

const (
	productID      = "-//eventpoll//EN"
	optionDuration = time.Hour
)

var partStat = map[domain.ParticipantStatus]string{
	domain.StatusPending:  "NEEDS-ACTION",
	domain.StatusAccepted: "ACCEPTED",
	domain.StatusDeclined: "DECLINED",
}

type icsExporter struct {
	now func() time.Time
}

// NewICSExporter returns a CalendarExporter producing one VEVENT per date option.
func NewICSExporter() domain.CalendarExporter {
	return &icsExporter{now: time.Now}
}

// Export renders e as a VCALENDAR. Options are TENTATIVE until exactly one of them leads the poll,
// which is then marked CONFIRMED.
func (x *icsExporter) Export(e *domain.Event, poll *domain.Poll) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	confirmed := ""
	if poll != nil && len(poll.Winners) == 1 {
		confirmed = poll.Winners[0]
	}
	stamp := x.now().UTC()
	for _, o := range e.DateOptions {
		cal.Children = append(cal.Children, x.toVEvent(e, o, o.ID == confirmed, stamp))
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode event to iCal format: %w", err)
	}
	return buf.Bytes(), nil
}

func (x *icsExporter) toVEvent(e *domain.Event, o *domain.DateOption, confirmed bool, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@eventpoll", e.ID, o.ID))
	ve.Props.SetText(ical.PropSummary, e.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDateTime(ical.PropDateTimeStart, o.Date.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, o.Date.UTC().Add(optionDuration))
	if e.Description != "" {
		ve.Props.SetText(ical.PropDescription, e.Description)
	}
	status := "TENTATIVE"
	if confirmed {
		status = "CONFIRMED"
	}
	ve.Props.SetText(ical.PropStatus, status)

	if e.Creator.Email != "" {
		p := ical.NewProp(ical.PropOrganizer)
		p.Value = mailto(e.Creator.Email)
		if e.Creator.Username != "" {
			p.Params.Set(ical.ParamCommonName, e.Creator.Username)
		}
		ve.Props.Add(p)
	}
	for _, participant := range e.Participants {
		p := ical.NewProp(ical.PropAttendee)
		p.Value = mailto(participant.Email)
		if ps, ok := partStat[participant.Status]; ok {
			p.Params.Set(ical.ParamParticipationStatus, ps)
		}
		ve.Props.Add(p)
	}
	return ve
}

// mailto builds a CAL-ADDRESS value, the default type of ORGANIZER and ATTENDEE.
func mailto(email string) string {
	return "mailto:" + email
}

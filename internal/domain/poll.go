package domain

import (
	"context"
	"math"
	"time"
)

// OptionLabelLayout renders a date option as e.g. "Monday, January 2, 2006 at 03:04 PM".
const OptionLabelLayout = "Monday, January 2, 2006 at 03:04 PM"

// PollOption is one row of the poll tally.
// swagger:model PollOption
type PollOption struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
	Winning    bool   `json:"winning"`
}

// Poll is the display-ready tally derived from an event's date options. It is never stored.
// swagger:model Poll
type Poll struct {
	Question   string        `json:"question"`
	Options    []*PollOption `json:"options"`
	TotalVotes int           `json:"totalVotes"`
	Winners    []string      `json:"winners"`
}

// BuildPoll derives the poll for e. Labels are rendered in loc (UTC when nil).
func BuildPoll(e *Event, loc *time.Location) *Poll {
	if loc == nil {
		loc = time.UTC
	}
	question := e.PollQuestion
	if question == "" {
		question = DefaultPollQuestion
	}
	p := &Poll{
		Question: question,
		Options:  make([]*PollOption, 0, len(e.DateOptions)),
	}
	for _, o := range e.DateOptions {
		p.Options = append(p.Options, &PollOption{
			ID:    o.ID,
			Label: FormatOptionLabel(o.Date, loc),
			Votes: len(o.Voters),
		})
		p.TotalVotes += len(o.Voters)
	}
	p.Winners = Winners(p.Options)
	winning := make(map[string]struct{}, len(p.Winners))
	for _, id := range p.Winners {
		winning[id] = struct{}{}
	}
	for _, opt := range p.Options {
		opt.Percentage = Percentage(opt.Votes, p.TotalVotes)
		_, opt.Winning = winning[opt.ID]
	}
	return p
}

// Winners returns the ids of the options holding the highest vote count. Nobody wins while
// every count is zero; ties yield several winners in option order.
func Winners(options []*PollOption) []string {
	max := 0
	for _, o := range options {
		if o.Votes > max {
			max = o.Votes
		}
	}
	out := []string{}
	if max == 0 {
		return out
	}
	for _, o := range options {
		if o.Votes == max {
			out = append(out, o.ID)
		}
	}
	return out
}

// Percentage returns votes as a rounded share of total, or 0 when there are no votes.
func Percentage(votes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(votes) / float64(total) * 100))
}

// FormatOptionLabel renders t in loc using OptionLabelLayout.
func FormatOptionLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(OptionLabelLayout)
}

// PollCache stores derived polls keyed by event id.
type PollCache interface {
	Get(ctx context.Context, eventID string) (*Poll, bool, error)
	Set(ctx context.Context, eventID string, poll *Poll) error
	Invalidate(ctx context.Context, eventID string) error
}

// CalendarExporter renders an event and its poll as an iCalendar document.
type CalendarExporter interface {
	Export(e *Event, poll *Poll) ([]byte, error)
}

// PollService exposes the poll aggregator.
type PollService interface {
	GetPoll(ctx context.Context, eventID string) (*Poll, error)
	ExportCalendar(ctx context.Context, eventID string) ([]byte, error)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"eventpoll/internal/domain"
)

const selectEvent = `
	SELECT e.id, e.title, e.description, e.creator_id, u.username, u.email, e.poll_question, e.created_at, e.updated_at
	FROM events e
	INNER JOIN users u ON u.id = e.creator_id
`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// Create inserts the event with its date options and participants in one transaction.
func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO events (id, title, description, creator_id, poll_question, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		if _, err := tx.ExecContext(ctx, query, e.ID, e.Title, e.Description, e.CreatorID, e.PollQuestion, e.CreatedAt, e.UpdatedAt); err != nil {
			return err
		}
		return insertChildren(ctx, tx, e)
	})
	if err != nil {
		switch pqCode(err) {
		case codeForeignKeyViolation, codeInvalidTextRepr:
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, err := scanEvent(r.DB.QueryRowContext(ctx, selectEvent+`WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pqCode(err) == codeInvalidTextRepr {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	query := selectEvent + `
		WHERE e.creator_id = $1
		ORDER BY e.created_at DESC
	`
	return r.list(ctx, query, creatorID)
}

func (r *eventRepository) ListByParticipantEmail(ctx context.Context, email, excludeCreatorID string) ([]*domain.Event, error) {
	query := selectEvent + `
		WHERE e.creator_id <> $2
		  AND EXISTS (SELECT 1 FROM event_participants p WHERE p.event_id = e.id AND p.email = $1)
		ORDER BY e.created_at DESC
	`
	return r.list(ctx, query, domain.NormalizeEmail(email), excludeCreatorID)
}

// Replace overwrites the event row and swaps its date options and participants wholesale.
func (r *eventRepository) Replace(ctx context.Context, e *domain.Event) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			UPDATE events
			SET title = $2, description = $3, poll_question = $4, updated_at = $5
			WHERE id = $1
		`
		result, err := tx.ExecContext(ctx, query, e.ID, e.Title, e.Description, e.PollQuestion, e.UpdatedAt)
		if err != nil {
			return err
		}
		rows, err := rowsAffected(result)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_date_options WHERE event_id = $1`, e.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_participants WHERE event_id = $1`, e.ID); err != nil {
			return err
		}
		return insertChildren(ctx, tx, e)
	})
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		if pqCode(err) == codeInvalidTextRepr {
			return domain.ErrNotFound
		}
		return err
	}
	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateParticipantStatus changes the status only while it still equals from, and touches the event.
func (r *eventRepository) UpdateParticipantStatus(ctx context.Context, eventID, email string, from, to domain.ParticipantStatus, at time.Time) error {
	query := `
		WITH p AS (
			UPDATE event_participants SET status = $4
			WHERE event_id = $1 AND email = $2 AND status = $3
			RETURNING event_id
		)
		UPDATE events SET updated_at = $5
		WHERE id IN (SELECT event_id FROM p)
	`
	result, err := r.DB.ExecContext(ctx, query, eventID, domain.NormalizeEmail(email), string(from), string(to), at)
	if err != nil {
		return err
	}
	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		if pqCode(err) == codeInvalidTextRepr {
			return []*domain.Event{}, nil
		}
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// loadChildren fills date options and participants for events with one query per table.
func (r *eventRepository) loadChildren(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		e.DateOptions = []*domain.DateOption{}
		e.Participants = []*domain.Participant{}
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	optRows, err := r.DB.QueryContext(ctx, `
		SELECT event_id, id, date, voters
		FROM event_date_options
		WHERE event_id = ANY($1)
		ORDER BY event_id, position
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer optRows.Close()
	for optRows.Next() {
		var eventID string
		o := &domain.DateOption{}
		if err := optRows.Scan(&eventID, &o.ID, &o.Date, pq.Array(&o.Voters)); err != nil {
			return err
		}
		if o.Voters == nil {
			o.Voters = []string{}
		}
		if e := byID[eventID]; e != nil {
			e.DateOptions = append(e.DateOptions, o)
		}
	}
	if err := optRows.Err(); err != nil {
		return err
	}

	partRows, err := r.DB.QueryContext(ctx, `
		SELECT event_id, email, status
		FROM event_participants
		WHERE event_id = ANY($1)
		ORDER BY event_id, position
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer partRows.Close()
	for partRows.Next() {
		var eventID, status string
		p := &domain.Participant{}
		if err := partRows.Scan(&eventID, &p.Email, &status); err != nil {
			return err
		}
		p.Status = domain.ParticipantStatus(status)
		if e := byID[eventID]; e != nil {
			e.Participants = append(e.Participants, p)
		}
	}
	return partRows.Err()
}

func insertChildren(ctx context.Context, tx *sql.Tx, e *domain.Event) error {
	for i, o := range e.DateOptions {
		voters := o.Voters
		if voters == nil {
			voters = []string{}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event_date_options (id, event_id, position, date, voters) VALUES ($1, $2, $3, $4, $5)`,
			o.ID, e.ID, i, o.Date, pq.Array(voters),
		); err != nil {
			return err
		}
	}
	for i, p := range e.Participants {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event_participants (event_id, email, status, position) VALUES ($1, $2, $3, $4)`,
			e.ID, p.Email, string(p.Status), i,
		); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.CreatorID,
		&e.Creator.Username, &e.Creator.Email, &e.PollQuestion,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Creator.ID = e.CreatorID
	return e, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventpoll/internal/domain"
)

// voteRepository mutates voter arrays in place. Each mutation locks the event row so a user's
// remove-then-add cannot interleave with their own concurrent request.
type voteRepository struct {
	DB *sql.DB
}

func NewVoteRepository(db *sql.DB) domain.VoteRepository {
	return &voteRepository{DB: db}
}

func (r *voteRepository) Cast(ctx context.Context, eventID, optionID, userID string, at time.Time) error {
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if err := lockEvent(ctx, tx, eventID); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			UPDATE event_date_options
			SET voters = array_append(voters, $3)
			WHERE event_id = $1 AND id = $2 AND NOT ($3 = ANY(voters))
		`, eventID, optionID, userID)
		if err != nil {
			return err
		}
		added, err := rowsAffected(result)
		if err != nil {
			return err
		}
		if added == 0 {
			var exists bool
			err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM event_date_options WHERE event_id = $1 AND id = $2)`,
				eventID, optionID,
			).Scan(&exists)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrNotFound
			}
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE event_date_options
			SET voters = array_remove(voters, $3)
			WHERE event_id = $1 AND id <> $2 AND $3 = ANY(voters)
		`, eventID, optionID, userID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE events SET updated_at = $2 WHERE id = $1`, eventID, at)
		return err
	})
	if pqCode(err) == codeInvalidTextRepr {
		return domain.ErrNotFound
	}
	return err
}

func (r *voteRepository) Retract(ctx context.Context, eventID, userID string, at time.Time) error {
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if err := lockEvent(ctx, tx, eventID); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			UPDATE event_date_options
			SET voters = array_remove(voters, $2)
			WHERE event_id = $1 AND $2 = ANY(voters)
		`, eventID, userID)
		if err != nil {
			return err
		}
		removed, err := rowsAffected(result)
		if err != nil {
			return err
		}
		if removed == 0 {
			return domain.ErrNoVote
		}
		_, err = tx.ExecContext(ctx, `UPDATE events SET updated_at = $2 WHERE id = $1`, eventID, at)
		return err
	})
	if pqCode(err) == codeInvalidTextRepr {
		return domain.ErrNotFound
	}
	return err
}

func (r *voteRepository) Status(ctx context.Context, eventID, userID string) (*domain.VoteStatus, error) {
	query := `
		SELECT e.id, o.id
		FROM events e
		LEFT JOIN event_date_options o ON o.event_id = e.id AND $2 = ANY(o.voters)
		WHERE e.id = $1
		ORDER BY o.position
		LIMIT 1
	`
	var id string
	var optionID sql.NullString
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&id, &optionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) || pqCode(err) == codeInvalidTextRepr {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !optionID.Valid {
		return &domain.VoteStatus{HasVoted: false}, nil
	}
	return &domain.VoteStatus{HasVoted: true, SelectedOption: &optionID.String}, nil
}

func lockEvent(ctx context.Context, tx *sql.Tx, eventID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

const eventCols = "e.id, e.title, e.description, e.starts_at, e.city, e.country, e.venue, e.link, u.username, e.created_at"

func (r *PGRepo) CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	defer tx.Rollback(ctx)

	sqlStr := "INSERT INTO " + r.t("events") +
		" (title, description, starts_at, city, country, venue, link, author_id) " +
		"SELECT $1, $2, $3, $4, $5, $6, $7, id FROM " + r.t("users") + " WHERE username = $8 " +
		"RETURNING id, created_at"
	args := []any{e.Title, e.Description, e.StartsAt, e.City, e.Country, e.Venue, e.Link, e.Author}
	r.logSQL("CreateEvent", sqlStr, args)

	start := time.Now()
	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		r.logger.Printf("CreateEvent scan error after %s: %v", time.Since(start), err)
		return domain.Event{}, mapPgError(err, "Author not found: "+e.Author)
	}

	for _, tid := range e.TagIDs {
		q := r.qb().Insert(r.t("event_tags")).Columns("event_id", "tag_id").Values(e.ID, tid)
		sqlStr, args, _ := q.ToSql()
		if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
			r.logger.Printf("CreateEvent tags error: %v", err)
			return domain.Event{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Event{}, err
	}
	r.logger.Printf("CreateEvent ok in %s id=%s author=%s", time.Since(start), e.ID, e.Author)
	return e, nil
}

func (r *PGRepo) EventByID(ctx context.Context, id domain.EventID) (domain.Event, error) {
	q := r.qb().Select(eventCols).
		From(r.t("events") + " e").
		Join(r.t("users") + " u ON u.id = e.author_id").
		Where(sq.Eq{"e.id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("EventByID", sqlStr, args)

	start := time.Now()
	var e domain.Event
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.City, &e.Country,
		&e.Venue, &e.Link, &e.Author, &e.CreatedAt); err != nil {
		r.logger.Printf("EventByID scan error after %s: %v", time.Since(start), err)
		return domain.Event{}, mapPgError(err, "Event not found")
	}

	tagIDs, err := r.tagIDsFor(ctx, "event_tags", "event_id", id)
	if err != nil {
		return domain.Event{}, err
	}
	e.TagIDs = tagIDs
	return e, nil
}

func (r *PGRepo) EventsAll(ctx context.Context) ([]domain.Event, error) {
	q := r.qb().Select(eventCols).
		From(r.t("events") + " e").
		Join(r.t("users") + " u ON u.id = e.author_id").
		OrderBy("e.starts_at ASC")
	return r.queryEvents(ctx, "EventsAll", q)
}

func (r *PGRepo) EventsByTag(ctx context.Context, tagID domain.TagID) ([]domain.Event, error) {
	q := r.qb().Select(eventCols).
		From(r.t("events") + " e").
		Join(r.t("users") + " u ON u.id = e.author_id").
		Join(r.t("event_tags") + " et ON et.event_id = e.id").
		Where(sq.Eq{"et.tag_id": tagID}).
		OrderBy("e.starts_at ASC")
	return r.queryEvents(ctx, "EventsByTag", q)
}

func (r *PGRepo) EventsUpcoming(ctx context.Context, after time.Time) ([]domain.Event, error) {
	q := r.qb().Select(eventCols).
		From(r.t("events") + " e").
		Join(r.t("users") + " u ON u.id = e.author_id").
		Where(sq.Gt{"e.starts_at": after}).
		OrderBy("e.starts_at ASC")
	return r.queryEvents(ctx, "EventsUpcoming", q)
}

func (r *PGRepo) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	defer tx.Rollback(ctx)

	q := r.qb().Update(r.t("events")).
		Set("title", e.Title).
		Set("description", e.Description).
		Set("starts_at", e.StartsAt).
		Set("city", e.City).
		Set("country", e.Country).
		Set("venue", e.Venue).
		Set("link", e.Link).
		Where(sq.Eq{"id": e.ID})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdateEvent", sqlStr, args)

	tag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		return domain.Event{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.Event{}, domain.E(domain.KindNotFound, "Event not found")
	}

	if e.TagIDs != nil {
		if err := replaceTags(ctx, tx, r.t("event_tags"), "event_id", e.ID, e.TagIDs); err != nil {
			return domain.Event{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Event{}, err
	}
	return r.EventByID(ctx, e.ID)
}

func (r *PGRepo) DeleteEvent(ctx context.Context, id domain.EventID) error {
	q := r.qb().Delete(r.t("events")).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteEvent", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.E(domain.KindNotFound, "Event not found")
	}
	return nil
}

func (r *PGRepo) queryEvents(ctx context.Context, op string, q sq.SelectBuilder) ([]domain.Event, error) {
	sqlStr, args, _ := q.ToSql()
	r.logSQL(op, sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("%s query error after %s: %v", op, time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	out := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.City, &e.Country,
			&e.Venue, &e.Link, &e.Author, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("%s ok in %s count=%d", op, time.Since(start), len(out))
	return out, nil
}

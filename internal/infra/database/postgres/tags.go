package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

func (r *PGRepo) CreateTag(ctx context.Context, name string) (domain.Tag, error) {
	q := r.qb().Insert(r.t("tags")).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateTag", sqlStr, args)

	var t domain.Tag
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&t.ID, &t.Name); err != nil {
		return domain.Tag{}, mapPgError(err, "Tag not found")
	}
	return t, nil
}

func (r *PGRepo) TagByID(ctx context.Context, id domain.TagID) (domain.Tag, error) {
	q := r.qb().Select("id", "name").From(r.t("tags")).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("TagByID", sqlStr, args)

	var t domain.Tag
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&t.ID, &t.Name); err != nil {
		return domain.Tag{}, mapPgError(err, "Tag not found")
	}
	return t, nil
}

func (r *PGRepo) TagsAll(ctx context.Context) ([]domain.Tag, error) {
	q := r.qb().Select("id", "name").From(r.t("tags")).OrderBy("name ASC")
	sqlStr, args, _ := q.ToSql()
	r.logSQL("TagsAll", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("TagsAll ok in %s count=%d", time.Since(start), len(out))
	return out, nil
}

func (r *PGRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	sqlStr := "SELECT 1 FROM " + r.t("tags") + " WHERE lower(name) = lower($1) LIMIT 1"
	args := []any{name}
	r.logSQL("TagExistsByName", sqlStr, args)

	var one int
	err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if domain.IsKind(mapPgError(err, ""), domain.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PGRepo) RenameTag(ctx context.Context, id domain.TagID, name string) (domain.Tag, error) {
	q := r.qb().Update(r.t("tags")).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("RenameTag", sqlStr, args)

	var t domain.Tag
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&t.ID, &t.Name); err != nil {
		return domain.Tag{}, mapPgError(err, "Tag not found")
	}
	return t, nil
}

func (r *PGRepo) DeleteTag(ctx context.Context, id domain.TagID) error {
	q := r.qb().Delete(r.t("tags")).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteTag", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.E(domain.KindNotFound, "Tag not found")
	}
	return nil
}

func (r *PGRepo) TagInUse(ctx context.Context, id domain.TagID) (bool, error) {
	sqlStr := "SELECT EXISTS (SELECT 1 FROM " + r.t("post_tags") + " WHERE tag_id = $1)" +
		" OR EXISTS (SELECT 1 FROM " + r.t("event_tags") + " WHERE tag_id = $1)" +
		" OR EXISTS (SELECT 1 FROM " + r.t("user_tags") + " WHERE tag_id = $1)"
	args := []any{id}
	r.logSQL("TagInUse", sqlStr, args)

	var inUse bool
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

// ---- связи М:М (общие для posts/events) ----

func (r *PGRepo) tagIDsFor(ctx context.Context, table, col string, id domain.TagID) ([]domain.TagID, error) {
	q := r.qb().Select("tag_id").From(r.t(table)).Where(sq.Eq{col: id})
	sqlStr, args, _ := q.ToSql()

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TagID
	for rows.Next() {
		var tid domain.TagID
		if err := rows.Scan(&tid); err != nil {
			return nil, err
		}
		out = append(out, tid)
	}
	return out, rows.Err()
}

func replaceTags(ctx context.Context, tx pgx.Tx, table, col string, id domain.TagID, tagIDs []domain.TagID) error {
	if _, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE "+col+" = $1", id); err != nil {
		return err
	}
	for _, tid := range tagIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO "+table+" ("+col+", tag_id) VALUES ($1, $2)", id, tid); err != nil {
			return err
		}
	}
	return nil
}

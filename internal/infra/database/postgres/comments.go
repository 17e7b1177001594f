package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

const commentCols = "c.id, c.post_id, u.username, c.content, c.created_at"

func (r *PGRepo) CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	sqlStr := "INSERT INTO " + r.t("comments") + " (post_id, author_id, content) " +
		"SELECT $1, id, $2 FROM " + r.t("users") + " WHERE username = $3 " +
		"RETURNING id, created_at"
	args := []any{c.PostID, c.Content, c.Author}
	r.logSQL("CreateComment", sqlStr, args)

	start := time.Now()
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		r.logger.Printf("CreateComment scan error after %s: %v", time.Since(start), err)
		return domain.Comment{}, mapPgError(err, "Author not found: "+c.Author)
	}
	r.logger.Printf("CreateComment ok in %s id=%s post=%s", time.Since(start), c.ID, c.PostID)
	return c, nil
}

func (r *PGRepo) CommentByID(ctx context.Context, id domain.CommentID) (domain.Comment, error) {
	q := r.qb().Select(commentCols).
		From(r.t("comments") + " c").
		Join(r.t("users") + " u ON u.id = c.author_id").
		Where(sq.Eq{"c.id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CommentByID", sqlStr, args)

	var c domain.Comment
	if err := r.pool.QueryRow(ctx, sqlStr, args...).
		Scan(&c.ID, &c.PostID, &c.Author, &c.Content, &c.CreatedAt); err != nil {
		return domain.Comment{}, mapPgError(err, "Comment not found")
	}
	return c, nil
}

func (r *PGRepo) CommentsByPost(ctx context.Context, postID domain.PostID) ([]domain.Comment, error) {
	q := r.qb().Select(commentCols).
		From(r.t("comments") + " c").
		Join(r.t("users") + " u ON u.id = c.author_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.created_at ASC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CommentsByPost", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Author, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("CommentsByPost ok in %s count=%d", time.Since(start), len(out))
	return out, nil
}

func (r *PGRepo) UpdateComment(ctx context.Context, id domain.CommentID, content string) (domain.Comment, error) {
	q := r.qb().Update(r.t("comments")).
		Set("content", content).
		Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdateComment", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return domain.Comment{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.Comment{}, domain.E(domain.KindNotFound, "Comment not found")
	}
	return r.CommentByID(ctx, id)
}

func (r *PGRepo) DeleteComment(ctx context.Context, id domain.CommentID) error {
	q := r.qb().Delete(r.t("comments")).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteComment", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.E(domain.KindNotFound, "Comment not found")
	}
	return nil
}

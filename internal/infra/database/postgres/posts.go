package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// Везде джойним users: наружу пост отдаётся с username автора,
// внутренний author_id за пределы пакета не выходит.

const postCols = "p.id, p.title, p.content, u.username, p.created_at"

func (r *PGRepo) CreatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	defer tx.Rollback(ctx)

	sqlStr := "INSERT INTO " + r.t("posts") + " (title, content, author_id) " +
		"SELECT $1, $2, id FROM " + r.t("users") + " WHERE username = $3 " +
		"RETURNING id, created_at"
	args := []any{p.Title, p.Content, p.Author}
	r.logSQL("CreatePost", sqlStr, args)

	start := time.Now()
	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		r.logger.Printf("CreatePost scan error after %s: %v", time.Since(start), err)
		return domain.Post{}, mapPgError(err, "Author not found: "+p.Author)
	}

	for _, tid := range p.TagIDs {
		q := r.qb().Insert(r.t("post_tags")).Columns("post_id", "tag_id").Values(p.ID, tid)
		sqlStr, args, _ := q.ToSql()
		if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
			r.logger.Printf("CreatePost tags error: %v", err)
			return domain.Post{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Post{}, err
	}
	r.logger.Printf("CreatePost ok in %s id=%s author=%s", time.Since(start), p.ID, p.Author)
	return p, nil
}

func (r *PGRepo) PostByID(ctx context.Context, id domain.PostID) (domain.Post, error) {
	q := r.qb().Select(postCols).
		From(r.t("posts") + " p").
		Join(r.t("users") + " u ON u.id = p.author_id").
		Where(sq.Eq{"p.id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("PostByID", sqlStr, args)

	start := time.Now()
	var p domain.Post
	if err := r.pool.QueryRow(ctx, sqlStr, args...).
		Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt); err != nil {
		r.logger.Printf("PostByID scan error after %s: %v", time.Since(start), err)
		return domain.Post{}, mapPgError(err, "Post not found")
	}

	tagIDs, err := r.tagIDsFor(ctx, "post_tags", "post_id", id)
	if err != nil {
		return domain.Post{}, err
	}
	p.TagIDs = tagIDs
	r.logger.Printf("PostByID ok in %s id=%s", time.Since(start), p.ID)
	return p, nil
}

func (r *PGRepo) PostsAll(ctx context.Context) ([]domain.Post, error) {
	q := r.qb().Select(postCols).
		From(r.t("posts") + " p").
		Join(r.t("users") + " u ON u.id = p.author_id").
		OrderBy("p.created_at DESC")
	return r.queryPosts(ctx, "PostsAll", q)
}

func (r *PGRepo) PostsByTag(ctx context.Context, tagID domain.TagID) ([]domain.Post, error) {
	q := r.qb().Select(postCols).
		From(r.t("posts") + " p").
		Join(r.t("users") + " u ON u.id = p.author_id").
		Join(r.t("post_tags") + " pt ON pt.post_id = p.id").
		Where(sq.Eq{"pt.tag_id": tagID}).
		OrderBy("p.created_at DESC")
	return r.queryPosts(ctx, "PostsByTag", q)
}

func (r *PGRepo) UpdatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	defer tx.Rollback(ctx)

	q := r.qb().Update(r.t("posts")).
		Set("title", p.Title).
		Set("content", p.Content).
		Where(sq.Eq{"id": p.ID})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdatePost", sqlStr, args)

	tag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		return domain.Post{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.Post{}, domain.E(domain.KindNotFound, "Post not found")
	}

	// nil — связи не трогаем; иначе полная замена
	if p.TagIDs != nil {
		if err := replaceTags(ctx, tx, r.t("post_tags"), "post_id", p.ID, p.TagIDs); err != nil {
			return domain.Post{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Post{}, err
	}
	return r.PostByID(ctx, p.ID)
}

func (r *PGRepo) DeletePost(ctx context.Context, id domain.PostID) error {
	q := r.qb().Delete(r.t("posts")).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeletePost", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.E(domain.KindNotFound, "Post not found")
	}
	return nil
}

func (r *PGRepo) queryPosts(ctx context.Context, op string, q sq.SelectBuilder) ([]domain.Post, error) {
	sqlStr, args, _ := q.ToSql()
	r.logSQL(op, sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("%s query error after %s: %v", op, time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	out := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("%s ok in %s count=%d", op, time.Since(start), len(out))
	return out, nil
}

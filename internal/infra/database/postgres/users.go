package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

func (r *PGRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	q := r.qb().Insert(r.t("users")).
		Columns("username", "email", "pass_hash", "bio", "role").
		Values(u.Username, u.Email, u.PassHash, u.Bio, string(u.Role)).
		Suffix("RETURNING id, username, email, pass_hash, bio, role, banned, created_at")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateUser", sqlStr, args)

	start := time.Now()
	out, err := r.scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateUser scan error after %s: %v", time.Since(start), err)
		return domain.User{}, mapPgError(err, "User not found")
	}
	r.logger.Printf("CreateUser ok in %s id=%s username=%s", time.Since(start), out.ID, out.Username)
	return out, nil
}

func (r *PGRepo) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	q := r.qb().Select("id", "username", "email", "pass_hash", "bio", "role", "banned", "created_at").
		From(r.t("users")).
		Where(sq.Eq{"username": username})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByUsername", sqlStr, args)

	start := time.Now()
	out, err := r.scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("UserByUsername scan error after %s: %v", time.Since(start), err)
		return domain.User{}, mapPgError(err, "User not found: "+username)
	}
	r.logger.Printf("UserByUsername ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) UserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	q := r.qb().Select("id", "username", "email", "pass_hash", "bio", "role", "banned", "created_at").
		From(r.t("users")).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByID", sqlStr, args)

	start := time.Now()
	out, err := r.scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("UserByID scan error after %s: %v", time.Since(start), err)
		return domain.User{}, mapPgError(err, "User not found")
	}
	r.logger.Printf("UserByID ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "ExistsByUsername", sq.Eq{"username": username})
}

func (r *PGRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "ExistsByEmail", sq.Eq{"email": email})
}

func (r *PGRepo) DeleteUser(ctx context.Context, id domain.UserID) error {
	q := r.qb().Delete(r.t("users")).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteUser", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.E(domain.KindNotFound, "User not found")
	}
	return nil
}

func (r *PGRepo) SetBanned(ctx context.Context, id domain.UserID, banned bool) error {
	q := r.qb().Update(r.t("users")).Set("banned", banned).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("SetBanned", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.E(domain.KindNotFound, "User not found")
	}
	return nil
}

func (r *PGRepo) AddInterest(ctx context.Context, username string, tagID domain.TagID) error {
	// INSERT ... SELECT с литералом — проще собрать руками, чем через squirrel
	sqlStr := "INSERT INTO " + r.t("user_tags") + " (user_id, tag_id) " +
		"SELECT id, $1 FROM " + r.t("users") + " WHERE username = $2 ON CONFLICT DO NOTHING"
	args := []any{tagID, username}
	r.logSQL("AddInterest", sqlStr, args)

	_, err := r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *PGRepo) RemoveInterest(ctx context.Context, username string, tagID domain.TagID) error {
	sqlStr := "DELETE FROM " + r.t("user_tags") +
		" WHERE tag_id = $1 AND user_id = (SELECT id FROM " + r.t("users") + " WHERE username = $2)"
	args := []any{tagID, username}
	r.logSQL("RemoveInterest", sqlStr, args)

	_, err := r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *PGRepo) exists(ctx context.Context, op string, cond sq.Eq) (bool, error) {
	q := r.qb().Select("1").From(r.t("users")).Where(cond).Limit(1)
	sqlStr, args, _ := q.ToSql()
	r.logSQL(op, sqlStr, args)

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

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PassHash, &u.Bio, &role, &u.Banned, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}

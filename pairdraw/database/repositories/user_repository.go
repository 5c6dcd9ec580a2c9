package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

const maxAvatarURLLen = 500

type UserRepository interface {
	Login(ctx context.Context, name, credential string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	SetAvatar(ctx context.Context, id int64, avatarURL string) (*models.User, error)
	GetUserCount(ctx context.Context) (int, error)
}

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

// Login fetches the user by name, creating it on first sight. A user
// created without a credential adopts the first one supplied; after
// that, mismatches are rejected.
func (r *userRepository) Login(ctx context.Context, name, credential string) (*models.User, error) {
	if name == "" {
		return nil, &InvalidArgumentError{Field: "name", Reason: "must not be empty"}
	}

	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("name = ?", name).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		user = &models.User{
			Name:       name,
			Credential: credential,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
			return nil, r.HandleError("login_create", "user", err)
		}
		slog.Info("Created user on first login",
			slog.String("type", "db"),
			slog.String("name", name),
			slog.Int64("id", user.ID))
		return user, nil
	}
	if err != nil {
		return nil, r.HandleError("login_lookup", "user", err)
	}

	if user.Credential == "" && credential != "" {
		user.Credential = credential
		user.UpdatedAt = time.Now()
		if _, err := r.db.NewUpdate().
			Model(user).
			Column("credential", "updated_at").
			WherePK().
			Exec(ctx); err != nil {
			return nil, r.HandleError("login_adopt_credential", "user", err)
		}
		return user, nil
	}

	if user.Credential != credential {
		return nil, &InvalidCredentialError{Name: name}
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "user", id, err)
	}
	return user, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_by_name", "user", name, err)
	}
	return user, nil
}

func (r *userRepository) SetAvatar(ctx context.Context, id int64, avatarURL string) (*models.User, error) {
	if len(avatarURL) > maxAvatarURLLen {
		return nil, &InvalidArgumentError{Field: "avatarUrl", Reason: "exceeds 500 characters"}
	}

	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("avatar_url = ?", avatarURL).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("set_avatar", "user", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, &NotFoundError{Entity: "user", ID: id}
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) GetUserCount(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Count(ctx)
	return count, r.HandleError("count", "user", err)
}

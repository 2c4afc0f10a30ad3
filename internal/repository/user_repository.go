package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

const UserEmailConstraint = "users_email_key"

const userColumns = "id, name, email, password, role, created_at, updated_at"

var userList = listQuery{
	table:   "users",
	columns: userColumns,
	search:  []string{"name", "email"},
	filter:  "role",
	orderBy: "id ASC",
}

type UserRepository interface {
	FindAll(ctx context.Context, filter model.ListFilter) ([]*model.User, int64, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *model.User) error
	// Update mengganti password hanya jika user.Password tidak kosong.
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context, filter model.ListFilter) ([]*model.User, int64, error) {
	return findPage[model.User](ctx, r.db, userList, filter)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found, bukan error
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return findByID[model.User](ctx, r.db, "users", userColumns, id)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return existsBy(ctx, r.db, "users", "email", email, excludeID)
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (name, email, password, role, created_at, updated_at)
		VALUES (:name, :email, :password, :role, NOW(), NOW())
		RETURNING ` + userColumns
	return namedReturning(ctx, r.db, query, user)
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET name = :name, email = :email, role = :role,
		    password = COALESCE(NULLIF(:password, ''), password), updated_at = NOW()
		WHERE id = :id
		RETURNING ` + userColumns
	return namedReturning(ctx, r.db, query, user)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "users", id)
}

var _ UserRepository = (*userRepository)(nil)

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"advboard/internal/domain/entity"
	"advboard/internal/repository"
)

type UserRepo struct{ q Querier }

func NewUserRepo(q Querier) repository.UserRepository {
	return &UserRepo{q: q}
}

func (repo *UserRepo) GetByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	const query = `
SELECT id, nickname, email, password
FROM users
WHERE nickname = $1
LIMIT 1`
	var user entity.User
	err := repo.q.QueryRowContext(ctx, query, nickname).Scan(
		&user.ID, &user.Nickname, &user.Email, &user.Password,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByNickname: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, nickname, email, password
FROM users
WHERE id = $1
LIMIT 1`
	var user entity.User
	err := repo.q.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Nickname, &user.Email, &user.Password,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"advboard/internal/domain/entity"
	"advboard/internal/repository"
)

type AdvRepo struct{ q Querier }

func NewAdvRepo(q Querier) repository.AdvRepository {
	return &AdvRepo{q: q}
}

func (repo *AdvRepo) Get(ctx context.Context, id int64) (*entity.Adv, error) {
	const query = `
SELECT id, title, descr, owner_id, created_at
FROM advs
WHERE id = $1
LIMIT 1`
	var adv entity.Adv
	var descr sql.NullString
	err := repo.q.QueryRowContext(ctx, query, id).Scan(
		&adv.ID, &adv.Title, &descr, &adv.OwnerID, &adv.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	adv.Desc = descr.String
	return &adv, nil
}

func (repo *AdvRepo) Insert(ctx context.Context, adv *entity.Adv) error {
	// id と created_at はストア側で採番される
	const query = `
INSERT INTO advs (title, descr, owner_id)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.q.QueryRowContext(ctx, query,
		adv.Title, adv.Desc, adv.OwnerID,
	).Scan(&adv.ID, &adv.CreatedAt)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

func (repo *AdvRepo) Update(ctx context.Context, adv *entity.Adv) error {
	// owner_id と created_at は不変
	const query = `
UPDATE advs SET
       title = $1,
       descr = $2
WHERE id = $3`
	res, err := repo.q.ExecContext(ctx, query, adv.Title, adv.Desc, adv.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *AdvRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM advs WHERE id = $1`
	res, err := repo.q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

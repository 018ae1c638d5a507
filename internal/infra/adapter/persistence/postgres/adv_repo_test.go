package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"advboard/internal/domain/entity"
	pg "advboard/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

func advRow(a *entity.Adv) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "descr", "owner_id", "created_at",
	}).AddRow(
		a.ID, a.Title, a.Desc, a.OwnerID, a.CreatedAt,
	)
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestAdvRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Adv{
		ID: 1, Title: "a perfectly fine title", Desc: "d",
		OwnerID: 2, CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, descr")).
		WithArgs(int64(1)).
		WillReturnRows(advRow(want))

	repo := pg.NewAdvRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAdvRepo_Get_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM advs").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "descr", "owner_id", "created_at",
		})) // 空集合 → (nil, nil)

	repo := pg.NewAdvRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("got = %+v, want nil", got)
	}
}

func TestAdvRepo_Get_NullDescr(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM advs").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "descr", "owner_id", "created_at",
		}).AddRow(int64(1), "a perfectly fine title", nil, int64(2), now))

	repo := pg.NewAdvRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Desc != "" {
		t.Fatalf("Desc = %q, want empty", got.Desc)
	}
}

/* ─────────────────────────── 2. Insert ─────────────────────────── */

func TestAdvRepo_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO advs")).
		WithArgs("a perfectly fine title", "d", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(int64(7), now))

	adv := &entity.Adv{Title: "a perfectly fine title", Desc: "d", OwnerID: 2}
	repo := pg.NewAdvRepo(db)
	if err := repo.Insert(context.Background(), adv); err != nil {
		t.Fatalf("Insert err=%v", err)
	}
	// 採番された id と created_at が書き戻される
	if adv.ID != 7 {
		t.Fatalf("ID = %d, want 7", adv.ID)
	}
	if !adv.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt = %v, want %v", adv.CreatedAt, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 3. Update ─────────────────────────── */

func TestAdvRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE advs")).
		WithArgs("a replacement title", "new d", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewAdvRepo(db)
	err := repo.Update(context.Background(), &entity.Adv{
		ID: 1, Title: "a replacement title", Desc: "new d",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAdvRepo_Update_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE advs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewAdvRepo(db)
	err := repo.Update(context.Background(), &entity.Adv{ID: 99, Title: "t"})
	if err == nil {
		t.Fatal("err = nil, want no rows affected")
	}
}

/* ─────────────────────────── 4. Delete ─────────────────────────── */

func TestAdvRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM advs")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewAdvRepo(db)
	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAdvRepo_Delete_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM advs").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewAdvRepo(db)
	if err := repo.Delete(context.Background(), 99); err == nil {
		t.Fatal("err = nil, want no rows affected")
	}
}

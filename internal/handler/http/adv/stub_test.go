package adv_test

import (
	"context"
	"net/http"
	"time"

	"advboard/internal/domain/entity"
	hadv "advboard/internal/handler/http/adv"
	"advboard/internal/repository"
	advUC "advboard/internal/usecase/adv"
)

/* ───────── テスト用スタブ ───────── */

type stubAdvRepo struct {
	data   map[int64]*entity.Adv
	nextID int64
	err    error
}

func (s *stubAdvRepo) Get(_ context.Context, id int64) (*entity.Adv, error) {
	if s.err != nil {
		return nil, s.err
	}
	adv, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *adv
	return &cp, nil
}

func (s *stubAdvRepo) Insert(_ context.Context, adv *entity.Adv) error {
	if s.err != nil {
		return s.err
	}
	adv.ID = s.nextID
	adv.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.nextID++
	cp := *adv
	s.data[adv.ID] = &cp
	return nil
}

func (s *stubAdvRepo) Update(_ context.Context, adv *entity.Adv) error {
	if s.err != nil {
		return s.err
	}
	cp := *adv
	s.data[adv.ID] = &cp
	return nil
}

func (s *stubAdvRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

type stubUserRepo struct {
	byNickname map[string]*entity.User
	byID       map[int64]*entity.User
}

func (s *stubUserRepo) GetByNickname(_ context.Context, nickname string) (*entity.User, error) {
	return s.byNickname[nickname], nil
}

func (s *stubUserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	return s.byID[id], nil
}

type stubStore struct {
	advs  *stubAdvRepo
	users *stubUserRepo
}

type stubTx struct {
	advs  *stubAdvRepo
	users *stubUserRepo
}

func (t stubTx) Advs() repository.AdvRepository   { return t.advs }
func (t stubTx) Users() repository.UserRepository { return t.users }

func (s *stubStore) WithinTx(_ context.Context, fn func(tx repository.Tx) error) error {
	return fn(stubTx{advs: s.advs, users: s.users})
}

// newMux builds a routed handler backed by an in-memory store seeded with
// one user (alice, id 1).
func newMux() (*http.ServeMux, *stubStore) {
	store := &stubStore{
		advs: &stubAdvRepo{data: map[int64]*entity.Adv{}, nextID: 1},
		users: &stubUserRepo{
			byNickname: map[string]*entity.User{
				"alice": {ID: 1, Nickname: "alice", Email: "alice@example.com", Password: "x"},
			},
			byID: map[int64]*entity.User{
				1: {ID: 1, Nickname: "alice"},
			},
		},
	}
	mux := http.NewServeMux()
	hadv.Register(mux, advUC.Service{Store: store})
	return mux, store
}

package service

import (
	"context"
	"testing"

	"github.com/a6w/mapmo/internal/model"
)

type fakeUserRepo struct {
	added     []model.User
	nicknames map[string]string
	deleted   []string
}

func (f *fakeUserRepo) Get(_ context.Context, id string) (*model.User, error) {
	return &model.User{ID: id, Nickname: "alice"}, nil
}

func (f *fakeUserRepo) Add(_ context.Context, user model.User) (string, error) {
	f.added = append(f.added, user)
	return "u-id", nil
}

func (f *fakeUserRepo) UpdateNickname(_ context.Context, id, nickname string) error {
	if f.nicknames == nil {
		f.nicknames = map[string]string{}
	}
	f.nicknames[id] = nickname
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestUserService_Register(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, ""); err == nil {
		t.Fatal("want error for empty nickname")
	}
	id, err := svc.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id != "u-id" {
		t.Fatalf("id = %q", id)
	}
	if len(repo.added) != 1 || repo.added[0].Nickname != "alice" {
		t.Fatalf("repo.added = %+v", repo.added)
	}
}

func TestUserService_UpdateNickname(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	if err := svc.UpdateNickname(ctx, "", "x"); err == nil {
		t.Fatal("want error for empty id")
	}
	if err := svc.UpdateNickname(ctx, "u1", ""); err == nil {
		t.Fatal("want error for empty nickname")
	}
	if err := svc.UpdateNickname(ctx, "u1", "bob"); err != nil {
		t.Fatalf("UpdateNickname: %v", err)
	}
	if repo.nicknames["u1"] != "bob" {
		t.Fatalf("nicknames = %v", repo.nicknames)
	}
}

func TestUserService_GetAndDelete(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, err := svc.Get(ctx, ""); err == nil {
		t.Fatal("want error for empty id")
	}
	u, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.Nickname != "alice" {
		t.Fatalf("nickname = %q", u.Nickname)
	}

	if err := svc.Delete(ctx, ""); err == nil {
		t.Fatal("want error for empty id")
	}
	if err := svc.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("repo.deleted = %v", repo.deleted)
	}
}

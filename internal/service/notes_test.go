package service

import (
	"context"
	"testing"

	"github.com/a6w/mapmo/internal/model"
)

type fakeNoteRepo struct {
	added   []model.Note
	updated []model.Note
	deleted []string
}

func (f *fakeNoteRepo) Get(_ context.Context, id, _ string) (*model.Note, error) {
	return &model.Note{ID: id}, nil
}

func (f *fakeNoteRepo) Add(_ context.Context, _ string, note model.Note) (string, error) {
	f.added = append(f.added, note)
	return "n-id", nil
}

func (f *fakeNoteRepo) Update(_ context.Context, _ string, note model.Note, _ string) error {
	f.updated = append(f.updated, note)
	return nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id, _ string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNoteListRepo struct {
	listed []string
}

func (f *fakeNoteListRepo) List(_ context.Context, ownerID string) (*model.NoteList, error) {
	f.listed = append(f.listed, ownerID)
	return &model.NoteList{Count: 2}, nil
}

func (f *fakeNoteListRepo) Invalidate(string) {}

func TestNoteService_Add(t *testing.T) {
	notes := &fakeNoteRepo{}
	svc := NewNoteService(notes, &fakeNoteListRepo{})
	ctx := context.Background()

	// Empty content and a missing label reference are both allowed.
	id, err := svc.Add(ctx, "u1", model.Note{Location: model.Location{Lat: 1, Lng: 2}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != "n-id" {
		t.Fatalf("id = %q", id)
	}

	if _, err := svc.Add(ctx, "", model.Note{}); err == nil {
		t.Fatal("want error for empty owner")
	}
	if _, err := svc.Add(ctx, "u1", model.Note{Location: model.Location{Lat: 200, Lng: 0}}); err == nil {
		t.Fatal("want error for invalid location")
	}
	if len(notes.added) != 1 {
		t.Fatalf("repo.added = %d", len(notes.added))
	}
}

func TestNoteService_UpdateAndDelete(t *testing.T) {
	notes := &fakeNoteRepo{}
	svc := NewNoteService(notes, &fakeNoteListRepo{})
	ctx := context.Background()

	if err := svc.Update(ctx, "", model.Note{}, "u1"); err == nil {
		t.Fatal("want error for empty id")
	}
	n := model.Note{Content: "x", Location: model.Location{Lat: 1, Lng: 2}}
	if err := svc.Update(ctx, "n1", n, "u1"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := svc.Delete(ctx, "n1", ""); err == nil {
		t.Fatal("want error for empty owner")
	}
	if err := svc.Delete(ctx, "n1", "u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(notes.updated) != 1 || len(notes.deleted) != 1 {
		t.Fatalf("updated=%d deleted=%d", len(notes.updated), len(notes.deleted))
	}
}

func TestNoteService_ListGrouped(t *testing.T) {
	lists := &fakeNoteListRepo{}
	svc := NewNoteService(&fakeNoteRepo{}, lists)
	ctx := context.Background()

	if _, err := svc.ListGrouped(ctx, ""); err == nil {
		t.Fatal("want error for empty owner")
	}
	nl, err := svc.ListGrouped(ctx, "u1")
	if err != nil {
		t.Fatalf("ListGrouped: %v", err)
	}
	if nl.Count != 2 {
		t.Fatalf("count = %d", nl.Count)
	}
	if len(lists.listed) != 1 || lists.listed[0] != "u1" {
		t.Fatalf("listed = %v", lists.listed)
	}
}

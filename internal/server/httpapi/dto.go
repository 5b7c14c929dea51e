package httpapi

import "github.com/a6w/mapmo/internal/model"

// JSON shapes mirror the wire field names of the document store.

type locationDTO struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng" binding:"min=-180,max=180"`
}

type labelDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Color    string      `json:"color"`
	Location locationDTO `json:"location"`
}

type labelRequest struct {
	Name     string      `json:"name" binding:"required"`
	Color    string      `json:"color"`
	Location locationDTO `json:"location"`
}

type noteDTO struct {
	ID            string      `json:"id"`
	Content       string      `json:"content"`
	NotifyEnabled bool        `json:"isNotifyEnabled"`
	LabelID       string      `json:"labelID,omitempty"`
	Location      locationDTO `json:"location"`
	UpdatedAt     int64       `json:"updatedAt"`
}

type noteRequest struct {
	Content       string      `json:"content"`
	NotifyEnabled bool        `json:"isNotifyEnabled"`
	LabelID       string      `json:"labelID"`
	Location      locationDTO `json:"location"`
}

type noteGroupDTO struct {
	Label *labelDTO `json:"label"`
	Notes []noteDTO `json:"notes"`
}

type noteListDTO struct {
	Count  int            `json:"count"`
	Groups []noteGroupDTO `json:"groups"`
}

type userDTO struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	CreatedAt int64  `json:"createdAt"`
}

type registerRequest struct {
	Nickname string `json:"nickname" binding:"required"`
}

type nicknameRequest struct {
	Nickname string `json:"nickname" binding:"required"`
}

func toLabelDTO(l model.Label) labelDTO {
	return labelDTO{
		ID:       l.ID,
		Name:     l.Name,
		Color:    l.Color,
		Location: locationDTO{Lat: l.Location.Lat, Lng: l.Location.Lng},
	}
}

func toNoteDTO(n model.Note) noteDTO {
	return noteDTO{
		ID:            n.ID,
		Content:       n.Content,
		NotifyEnabled: n.NotifyEnabled,
		LabelID:       n.LabelID,
		Location:      locationDTO{Lat: n.Location.Lat, Lng: n.Location.Lng},
		UpdatedAt:     n.UpdatedAt,
	}
}

func toNoteListDTO(nl model.NoteList) noteListDTO {
	groups := make([]noteGroupDTO, 0, len(nl.Groups))
	for _, g := range nl.Groups {
		var label *labelDTO
		if g.Label != nil {
			dto := toLabelDTO(*g.Label)
			label = &dto
		}
		notes := make([]noteDTO, 0, len(g.Notes))
		for _, n := range g.Notes {
			notes = append(notes, toNoteDTO(n))
		}
		groups = append(groups, noteGroupDTO{Label: label, Notes: notes})
	}
	return noteListDTO{Count: nl.Count, Groups: groups}
}

func (r labelRequest) model() model.Label {
	return model.Label{
		Name:     r.Name,
		Color:    r.Color,
		Location: model.Location{Lat: r.Location.Lat, Lng: r.Location.Lng},
	}
}

func (r noteRequest) model() model.Note {
	return model.Note{
		Content:       r.Content,
		NotifyEnabled: r.NotifyEnabled,
		LabelID:       r.LabelID,
		Location:      model.Location{Lat: r.Location.Lat, Lng: r.Location.Lng},
	}
}

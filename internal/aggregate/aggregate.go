// Package aggregate builds the grouped note list view from an owner's raw
// notes and labels.
//
// Grouping policy: notes are partitioned by labelID, including the empty
// (unlabeled) key. A group whose labelID no longer resolves to a live label
// (dangling reference) stays a separate group with a nil Label — it is NOT
// folded into the unlabeled group; the notes keep their labelID so the
// relation survives a later label re-creation.
package aggregate

import "github.com/a6w/mapmo/internal/model"

// Build partitions notes by labelID and joins each partition with its label.
// Labels without notes produce no group. Group order is the first-seen order
// of labelID values among notes; callers get a deterministic result for a
// given input order even though no ordering is promised to users.
func Build(notes []model.Note, labels []model.Label) model.NoteList {
	byLabel := make(map[string]*model.Label, len(labels))
	for i := range labels {
		byLabel[labels[i].ID] = &labels[i]
	}

	groups := make(map[string][]model.Note)
	var order []string
	for _, n := range notes {
		if _, seen := groups[n.LabelID]; !seen {
			order = append(order, n.LabelID)
		}
		groups[n.LabelID] = append(groups[n.LabelID], n)
	}

	items := make([]model.NoteListItem, 0, len(order))
	for _, labelID := range order {
		var label *model.Label
		if labelID != "" {
			if l, ok := byLabel[labelID]; ok {
				copied := *l
				label = &copied
			}
		}
		items = append(items, model.NoteListItem{
			Label: label,
			Notes: groups[labelID],
		})
	}

	return model.NoteList{Count: len(notes), Groups: items}
}

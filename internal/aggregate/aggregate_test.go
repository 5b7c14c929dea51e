package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a6w/mapmo/internal/model"
)

func label(id, name string) model.Label {
	return model.Label{ID: id, Name: name, Color: "#fff", Location: model.Location{Lat: 37.5, Lng: 127.0}}
}

func note(id, labelID string) model.Note {
	return model.Note{ID: id, Content: "c-" + id, LabelID: labelID, Location: model.Location{Lat: 37.5, Lng: 127.0}}
}

func TestBuild_GroupsByLabel(t *testing.T) {
	t.Parallel()

	// One labeled note, one unlabeled note, one label.
	notes := []model.Note{note("n1", "L1"), note("n2", "")}
	labels := []model.Label{label("L1", "Home")}

	nl := Build(notes, labels)

	require.Equal(t, 2, nl.Count)
	require.Len(t, nl.Groups, 2)

	require.NotNil(t, nl.Groups[0].Label)
	require.Equal(t, "L1", nl.Groups[0].Label.ID)
	require.Len(t, nl.Groups[0].Notes, 1)
	require.Equal(t, "n1", nl.Groups[0].Notes[0].ID)

	require.Nil(t, nl.Groups[1].Label)
	require.Len(t, nl.Groups[1].Notes, 1)
	require.Equal(t, "n2", nl.Groups[1].Notes[0].ID)
}

func TestBuild_CountInvariant(t *testing.T) {
	t.Parallel()

	notes := []model.Note{
		note("n1", "L1"), note("n2", "L1"), note("n3", "L2"),
		note("n4", ""), note("n5", "gone"),
	}
	labels := []model.Label{label("L1", "a"), label("L2", "b"), label("L3", "no notes")}

	nl := Build(notes, labels)

	require.Equal(t, len(notes), nl.Count)
	total := 0
	for _, g := range nl.Groups {
		total += len(g.Notes)
	}
	require.Equal(t, len(notes), total)
}

func TestBuild_DanglingLabelStaysSeparate(t *testing.T) {
	t.Parallel()

	// "gone" has no live label; its group must not merge with the unlabeled one.
	notes := []model.Note{note("n1", "gone"), note("n2", "")}
	nl := Build(notes, nil)

	require.Len(t, nl.Groups, 2)
	require.Nil(t, nl.Groups[0].Label)
	require.Nil(t, nl.Groups[1].Label)
	require.Equal(t, "gone", nl.Groups[0].Notes[0].LabelID)
	require.Equal(t, "", nl.Groups[1].Notes[0].LabelID)
}

func TestBuild_LabelsWithoutNotesOmitted(t *testing.T) {
	t.Parallel()

	nl := Build([]model.Note{note("n1", "L1")}, []model.Label{label("L1", "a"), label("L2", "b")})
	require.Len(t, nl.Groups, 1)
	require.Equal(t, "L1", nl.Groups[0].Label.ID)
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	nl := Build(nil, nil)
	require.Equal(t, 0, nl.Count)
	require.Empty(t, nl.Groups)
}

// Unit tests for the store<->wire translation functions, including the
// round-trip law and the nesting/flattening of the person name object.
package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvanote/sylvanote/pkg/types"
)

func strp(s string) *string { return &s }

func TestPersonRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 2, 11, 45, 0, 0, time.UTC)

	person := &types.Person{
		PersonID:   "0195d3a8-5b3c-7e7a-9a51-0242ac120002",
		CreatedAt:  created,
		UpdatedAt:  updated,
		FirstName:  "Ada",
		MiddleName: strp("Augusta"),
		LastName:   "Lovelace",
		MaidenName: strp("Byron"),
		Nickname:   strp("The Enchantress"),
		BirthDate:  strp("1815-12-10"),
		DeathDate:  strp("1852-11-27"),
		Gender:     strp("female"),
		Bio:        strp("First computer programmer."),
		Tags:       []string{"mathematician", "writer"},
		Attributes: map[string]any{"occupation": "mathematician", "languages": []any{"English", "French"}},
	}

	doc := PersonToDoc(person)
	assert.Equal(t, TypePerson, doc.Type)
	assert.Equal(t, "Ada", doc.Name.First)
	assert.Equal(t, "Lovelace", doc.Name.Last)
	require.NotNil(t, doc.Name.Middle)
	assert.Equal(t, "Augusta", *doc.Name.Middle)
	require.NotNil(t, doc.CreatedAt)
	assert.True(t, doc.CreatedAt.Equal(created))

	back := PersonFromDoc(doc)
	assert.Equal(t, person, back)
}

func TestPersonDefaults(t *testing.T) {
	doc := PersonDoc{Name: PersonName{First: "Ada", Last: "Lovelace"}}

	rec := PersonFromDoc(doc)
	assert.NotNil(t, rec.Tags)
	assert.Empty(t, rec.Tags)
	assert.NotNil(t, rec.Attributes)
	assert.Empty(t, rec.Attributes)
	assert.True(t, rec.CreatedAt.IsZero())

	out := PersonToDoc(rec)
	assert.Equal(t, []string{}, out.Tags)
	assert.Equal(t, map[string]any{}, out.Attributes)
	assert.Nil(t, out.CreatedAt, "zero timestamp maps back to null")
}

func TestEventRoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC)

	event := &types.Event{
		EventID:      "0195d3a8-5b3c-7e7a-9a51-0242ac120003",
		CreatedAt:    created,
		UpdatedAt:    created,
		Title:        "Wedding",
		Date:         strp("1835-07-08"),
		Description:  strp("Married at Fordhook."),
		Location:     strp("Ealing"),
		Tags:         []string{"family"},
		Participants: []string{"0195d3a8-5b3c-7e7a-9a51-0242ac120002"},
	}

	doc := EventToDoc(event)
	assert.Equal(t, TypeEvent, doc.Type)
	assert.Equal(t, "Wedding", doc.Title)
	assert.Equal(t, event.Participants, doc.Participants)

	back := EventFromDoc(doc)
	assert.Equal(t, event, back)
}

func TestRelationshipRoundTrip(t *testing.T) {
	edge := &types.RelationshipEdge{
		EdgeID:    "0195d3a8-5b3c-7e7a-9a51-0242ac120004",
		FromID:    "0195d3a8-5b3c-7e7a-9a51-0242ac120002",
		ToID:      "0195d3a8-5b3c-7e7a-9a51-0242ac120003",
		Type:      types.RelSpouseOf,
		StartDate: strp("1835-07-08"),
		Notes:     strp("Divorced later."),
	}

	doc := RelationshipToDoc(edge)
	assert.Equal(t, types.RelSpouseOf, doc.Type)

	back := RelationshipFromDoc(doc)
	assert.Equal(t, edge, back)
}

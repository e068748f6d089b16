package wire

import (
	"time"

	"github.com/sylvanote/sylvanote/pkg/types"
)

// Translation functions between stored entities and wire documents. The
// round trip store->wire->store is lossless for every field defined in both
// schemas.

// PersonToDoc assembles a person document from a stored Person, nesting the
// five flat name columns under the name object.
func PersonToDoc(p *types.Person) PersonDoc {
	return PersonDoc{
		ID:        p.PersonID,
		CreatedAt: timePtr(p.CreatedAt),
		UpdatedAt: timePtr(p.UpdatedAt),
		Tags:      ensureTags(p.Tags),
		Type:      TypePerson,
		Name: PersonName{
			First:    p.FirstName,
			Middle:   p.MiddleName,
			Last:     p.LastName,
			Maiden:   p.MaidenName,
			Nickname: p.Nickname,
		},
		BirthDate:  p.BirthDate,
		DeathDate:  p.DeathDate,
		Gender:     p.Gender,
		Bio:        p.Bio,
		Attributes: ensureAttributes(p.Attributes),
	}
}

// PersonFromDoc decomposes a person document into a stored Person,
// flattening the name object back into separate columns. A client-supplied
// identifier is copied verbatim; when absent the store generates one on Set.
func PersonFromDoc(doc PersonDoc) *types.Person {
	return &types.Person{
		PersonID:   doc.ID,
		CreatedAt:  timeVal(doc.CreatedAt),
		UpdatedAt:  timeVal(doc.UpdatedAt),
		FirstName:  doc.Name.First,
		MiddleName: doc.Name.Middle,
		LastName:   doc.Name.Last,
		MaidenName: doc.Name.Maiden,
		Nickname:   doc.Name.Nickname,
		BirthDate:  doc.BirthDate,
		DeathDate:  doc.DeathDate,
		Gender:     doc.Gender,
		Bio:        doc.Bio,
		Tags:       ensureTags(doc.Tags),
		Attributes: ensureAttributes(doc.Attributes),
	}
}

// EventToDoc builds an event document from a stored Event, copying fields
// verbatim including the participant identifier list.
func EventToDoc(e *types.Event) EventDoc {
	return EventDoc{
		ID:           e.EventID,
		CreatedAt:    timePtr(e.CreatedAt),
		UpdatedAt:    timePtr(e.UpdatedAt),
		Tags:         ensureTags(e.Tags),
		Type:         TypeEvent,
		Title:        e.Title,
		Date:         e.Date,
		Description:  e.Description,
		Location:     e.Location,
		Participants: ensureList(e.Participants),
	}
}

// EventFromDoc is the inverse of EventToDoc.
func EventFromDoc(doc EventDoc) *types.Event {
	return &types.Event{
		EventID:      doc.ID,
		CreatedAt:    timeVal(doc.CreatedAt),
		UpdatedAt:    timeVal(doc.UpdatedAt),
		Title:        doc.Title,
		Date:         doc.Date,
		Description:  doc.Description,
		Location:     doc.Location,
		Tags:         ensureTags(doc.Tags),
		Participants: ensureList(doc.Participants),
	}
}

// RelationshipToDoc builds a relationship document from a stored edge.
func RelationshipToDoc(r *types.RelationshipEdge) RelationshipDoc {
	return RelationshipDoc{
		ID:        r.EdgeID,
		FromID:    r.FromID,
		ToID:      r.ToID,
		Type:      r.Type,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Notes:     r.Notes,
	}
}

// RelationshipFromDoc is the inverse of RelationshipToDoc.
func RelationshipFromDoc(doc RelationshipDoc) *types.RelationshipEdge {
	return &types.RelationshipEdge{
		EdgeID:    doc.ID,
		FromID:    doc.FromID,
		ToID:      doc.ToID,
		Type:      doc.Type,
		StartDate: doc.StartDate,
		EndDate:   doc.EndDate,
		Notes:     doc.Notes,
	}
}

// timePtr converts a stored timestamp to the wire representation. The zero
// time means "unset" and maps to null.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// timeVal is the inverse of timePtr.
func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// ensureTags returns tags, substituting an empty list for nil.
func ensureTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// ensureList returns ids, substituting an empty list for nil.
func ensureList(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// ensureAttributes returns attrs, substituting an empty mapping for nil.
func ensureAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return map[string]any{}
	}
	return attrs
}

// Unit tests for wire schema validation.
package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sylvanote/sylvanote/pkg/types"
)

const validUUID = "0195d3a8-5b3c-7e7a-9a51-0242ac120002"

func TestPersonDocValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     PersonDoc
		wantErr bool
	}{
		{
			name: "valid with only required names",
			doc:  PersonDoc{Name: PersonName{First: "Ada", Last: "Lovelace"}},
		},
		{
			name: "valid with client-supplied id",
			doc:  PersonDoc{ID: validUUID, Name: PersonName{First: "Ada", Last: "Lovelace"}},
		},
		{
			name:    "missing first name",
			doc:     PersonDoc{Name: PersonName{Last: "Lovelace"}},
			wantErr: true,
		},
		{
			name:    "blank last name",
			doc:     PersonDoc{Name: PersonName{First: "Ada", Last: "   "}},
			wantErr: true,
		},
		{
			name:    "malformed id",
			doc:     PersonDoc{ID: "not-a-uuid", Name: PersonName{First: "Ada", Last: "Lovelace"}},
			wantErr: true,
		},
		{
			name: "string attribute",
			doc: PersonDoc{
				Name:       PersonName{First: "Ada", Last: "Lovelace"},
				Attributes: map[string]any{"occupation": "mathematician"},
			},
		},
		{
			name: "string list attribute",
			doc: PersonDoc{
				Name:       PersonName{First: "Ada", Last: "Lovelace"},
				Attributes: map[string]any{"languages": []any{"English", "French"}},
			},
		},
		{
			name: "numeric attribute rejected",
			doc: PersonDoc{
				Name:       PersonName{First: "Ada", Last: "Lovelace"},
				Attributes: map[string]any{"age": 36.0},
			},
			wantErr: true,
		},
		{
			name: "mixed list attribute rejected",
			doc: PersonDoc{
				Name:       PersonName{First: "Ada", Last: "Lovelace"},
				Attributes: map[string]any{"languages": []any{"English", 2.0}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventDocValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     EventDoc
		wantErr bool
	}{
		{
			name: "valid",
			doc:  EventDoc{Title: "Wedding"},
		},
		{
			name:    "missing title",
			doc:     EventDoc{},
			wantErr: true,
		},
		{
			name: "valid participants",
			doc:  EventDoc{Title: "Wedding", Participants: []string{validUUID}},
		},
		{
			name:    "malformed participant",
			doc:     EventDoc{Title: "Wedding", Participants: []string{"nope"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRelationshipDocValidate(t *testing.T) {
	other := "0195d3a8-5b3c-7e7a-9a51-0242ac120003"

	tests := []struct {
		name    string
		doc     RelationshipDoc
		wantErr bool
	}{
		{
			name: "valid",
			doc:  RelationshipDoc{FromID: validUUID, ToID: other, Type: types.RelSpouseOf},
		},
		{
			name: "self-loop permitted",
			doc:  RelationshipDoc{FromID: validUUID, ToID: validUUID, Type: types.RelParentOf},
		},
		{
			name:    "missing fromId",
			doc:     RelationshipDoc{ToID: other, Type: types.RelSpouseOf},
			wantErr: true,
		},
		{
			name:    "malformed toId",
			doc:     RelationshipDoc{FromID: validUUID, ToID: "nope", Type: types.RelSpouseOf},
			wantErr: true,
		},
		{
			name:    "unknown type",
			doc:     RelationshipDoc{FromID: validUUID, ToID: other, Type: "SIBLING_OF"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID(validUUID))
	assert.Error(t, ValidateID(""))
	assert.Error(t, ValidateID("not-a-uuid"))
}

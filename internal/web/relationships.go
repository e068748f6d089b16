// Relationship resource handlers.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sylvanote/sylvanote/pkg/types"
	"github.com/sylvanote/sylvanote/pkg/wire"
)

func (s *Server) handleCreateRelationship(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableRelationships)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	var doc wire.RelationshipDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if err := doc.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec := wire.RelationshipFromDoc(doc)
	id, err := table.Set(r.Context(), rec.EdgeID, rec)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to create relationship")
		return
	}

	stored, err := table.Get(r.Context(), id)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load relationship")
		return
	}
	writeJSON(w, http.StatusOK, wire.RelationshipToDoc(stored.(*types.RelationshipEdge)))
}

func (s *Server) handleGetRelationship(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableRelationships)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := r.PathValue("id")
	if err := wire.ValidateID(id); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec, err := table.Get(r.Context(), id)
	if errors.Is(err, types.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Relationship not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load relationship")
		return
	}
	writeJSON(w, http.StatusOK, wire.RelationshipToDoc(rec.(*types.RelationshipEdge)))
}

func (s *Server) handleListRelationships(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableRelationships)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	records, err := table.Fetch(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to list relationships")
		return
	}

	docs := make([]wire.RelationshipDoc, 0, len(records))
	for _, rec := range records {
		docs = append(docs, wire.RelationshipToDoc(rec.(*types.RelationshipEdge)))
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleReplaceRelationship(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableRelationships)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := r.PathValue("id")
	if err := wire.ValidateID(id); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var doc wire.RelationshipDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if err := doc.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if _, err := table.Get(r.Context(), id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Relationship not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, "Failed to load relationship")
		return
	}

	rec := wire.RelationshipFromDoc(doc)
	rec.EdgeID = id

	if _, err := table.Set(r.Context(), id, rec); err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to replace relationship")
		return
	}

	stored, err := table.Get(r.Context(), id)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load relationship")
		return
	}
	writeJSON(w, http.StatusOK, wire.RelationshipToDoc(stored.(*types.RelationshipEdge)))
}

func (s *Server) handleDeleteRelationship(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableRelationships)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := r.PathValue("id")
	if err := wire.ValidateID(id); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err = table.Delete(r.Context(), id)
	if errors.Is(err, types.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Relationship not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to delete relationship")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

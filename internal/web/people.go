// Person resource handlers.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sylvanote/sylvanote/pkg/types"
	"github.com/sylvanote/sylvanote/pkg/wire"
)

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TablePeople)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	var doc wire.PersonDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if err := doc.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec := wire.PersonFromDoc(doc)
	id, err := table.Set(r.Context(), rec.PersonID, rec)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to create person")
		return
	}

	stored, err := table.Get(r.Context(), id)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load person")
		return
	}
	writeJSON(w, http.StatusOK, wire.PersonToDoc(stored.(*types.Person)))
}

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TablePeople)
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
		writeDetail(w, http.StatusNotFound, "Person not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load person")
		return
	}
	writeJSON(w, http.StatusOK, wire.PersonToDoc(rec.(*types.Person)))
}

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TablePeople)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	records, err := table.Fetch(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to list people")
		return
	}

	docs := make([]wire.PersonDoc, 0, len(records))
	for _, rec := range records {
		docs = append(docs, wire.PersonToDoc(rec.(*types.Person)))
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleReplacePerson(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TablePeople)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := r.PathValue("id")
	if err := wire.ValidateID(id); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var doc wire.PersonDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if err := doc.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	existing, err := table.Get(r.Context(), id)
	if errors.Is(err, types.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Person not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load person")
		return
	}

	// Identifier and creation timestamp are untouched by a replace.
	rec := wire.PersonFromDoc(doc)
	rec.PersonID = id
	rec.CreatedAt = existing.(*types.Person).CreatedAt

	if _, err := table.Set(r.Context(), id, rec); err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to replace person")
		return
	}

	stored, err := table.Get(r.Context(), id)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load person")
		return
	}
	writeJSON(w, http.StatusOK, wire.PersonToDoc(stored.(*types.Person)))
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TablePeople)
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
		writeDetail(w, http.StatusNotFound, "Person not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to delete person")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Event resource handlers.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sylvanote/sylvanote/pkg/types"
	"github.com/sylvanote/sylvanote/pkg/wire"
)

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableEvents)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	var doc wire.EventDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if err := doc.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec := wire.EventFromDoc(doc)
	id, err := table.Set(r.Context(), rec.EventID, rec)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	stored, err := table.Get(r.Context(), id)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load event")
		return
	}
	writeJSON(w, http.StatusOK, wire.EventToDoc(stored.(*types.Event)))
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableEvents)
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
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load event")
		return
	}
	writeJSON(w, http.StatusOK, wire.EventToDoc(rec.(*types.Event)))
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableEvents)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	records, err := table.Fetch(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	docs := make([]wire.EventDoc, 0, len(records))
	for _, rec := range records {
		docs = append(docs, wire.EventToDoc(rec.(*types.Event)))
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleReplaceEvent(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableEvents)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := r.PathValue("id")
	if err := wire.ValidateID(id); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var doc wire.EventDoc
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
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load event")
		return
	}

	// Identifier and creation timestamp are untouched by a replace.
	rec := wire.EventFromDoc(doc)
	rec.EventID = id
	rec.CreatedAt = existing.(*types.Event).CreatedAt

	if _, err := table.Set(r.Context(), id, rec); err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to replace event")
		return
	}

	stored, err := table.Get(r.Context(), id)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load event")
		return
	}
	writeJSON(w, http.StatusOK, wire.EventToDoc(stored.(*types.Event)))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	table, err := s.store.GetTable(types.TableEvents)
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
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

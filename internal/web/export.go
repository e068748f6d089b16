// Export handler: streams the whole store as a zip archive.
package web

import (
	"net/http"
	"strconv"

	"github.com/sylvanote/sylvanote/internal/export"
)

// handleExport scans all three stores and returns the export archive as a
// single download. Either the whole archive is returned or the request
// fails; no partial file is ever exposed.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	people, err := s.fetchPeople(ctx)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load people")
		return
	}
	events, err := s.fetchEvents(ctx)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load events")
		return
	}
	edges, err := s.fetchEdges(ctx)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to load relationships")
		return
	}

	archive, err := export.Generate(people, events, edges)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.ArchiveName)
	w.Header().Set("Content-Length", strconv.Itoa(len(archive)))
	w.WriteHeader(http.StatusOK)
	w.Write(archive)
}

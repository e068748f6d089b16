// Graph aggregate handler and shared full-scan helpers.
package web

import (
	"context"
	"net/http"

	"github.com/sylvanote/sylvanote/pkg/types"
	"github.com/sylvanote/sylvanote/pkg/wire"
)

// handleGraph merges all people and events into one node mapping keyed by
// identifier and attaches all relationship edges as a separate list. No
// filtering or depth limit: always the whole graph.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
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

	// Person and event ids share one namespace here; a collision silently
	// overwrites the person entry.
	nodes := make(map[string]any, len(people)+len(events))
	for _, p := range people {
		nodes[p.PersonID] = wire.PersonToDoc(p)
	}
	for _, e := range events {
		nodes[e.EventID] = wire.EventToDoc(e)
	}

	docs := make([]wire.RelationshipDoc, 0, len(edges))
	for _, edge := range edges {
		docs = append(docs, wire.RelationshipToDoc(edge))
	}

	writeJSON(w, http.StatusOK, wire.GraphDoc{Nodes: nodes, Edges: docs})
}

// fetchPeople scans the people table into typed records.
func (s *Server) fetchPeople(ctx context.Context) ([]*types.Person, error) {
	table, err := s.store.GetTable(types.TablePeople)
	if err != nil {
		return nil, err
	}
	records, err := table.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	people := make([]*types.Person, 0, len(records))
	for _, rec := range records {
		people = append(people, rec.(*types.Person))
	}
	return people, nil
}

// fetchEvents scans the events table into typed records.
func (s *Server) fetchEvents(ctx context.Context) ([]*types.Event, error) {
	table, err := s.store.GetTable(types.TableEvents)
	if err != nil {
		return nil, err
	}
	records, err := table.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]*types.Event, 0, len(records))
	for _, rec := range records {
		events = append(events, rec.(*types.Event))
	}
	return events, nil
}

// fetchEdges scans the relationships table into typed records.
func (s *Server) fetchEdges(ctx context.Context) ([]*types.RelationshipEdge, error) {
	table, err := s.store.GetTable(types.TableRelationships)
	if err != nil {
		return nil, err
	}
	records, err := table.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	edges := make([]*types.RelationshipEdge, 0, len(records))
	for _, rec := range records {
		edges = append(edges, rec.(*types.RelationshipEdge))
	}
	return edges, nil
}

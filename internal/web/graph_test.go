package web

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvanote/sylvanote/pkg/wire"
)

func TestGraphEmpty(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodGet, "/graph/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var graph wire.GraphDoc
	decodeInto(t, rec, &graph)
	assert.Empty(t, graph.Nodes)
	assert.Empty(t, graph.Edges)
}

func TestGraphMergesPeopleAndEvents(t *testing.T) {
	s := setupServer(t)
	ada := createPerson(t, s, "Ada", "Lovelace")
	william := createPerson(t, s, "William", "King")

	rec := doJSON(t, s, http.MethodPost, "/events/", map[string]any{
		"title":        "Marriage",
		"participants": []string{ada.ID, william.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var event wire.EventDoc
	decodeInto(t, rec, &event)

	rec = doJSON(t, s, http.MethodPost, "/relationships/", map[string]any{
		"fromId": william.ID,
		"toId":   ada.ID,
		"type":   "SPOUSE_OF",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/graph/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var graph wire.GraphDoc
	decodeInto(t, rec, &graph)
	require.Len(t, graph.Nodes, 3)
	require.Len(t, graph.Edges, 1)

	adaNode, ok := graph.Nodes[ada.ID].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "person", adaNode["type"])

	eventNode, ok := graph.Nodes[event.ID].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "event", eventNode["type"])
	assert.Equal(t, "Marriage", eventNode["title"])

	assert.Equal(t, william.ID, graph.Edges[0].FromID)
	assert.Equal(t, ada.ID, graph.Edges[0].ToID)
	assert.Equal(t, "SPOUSE_OF", graph.Edges[0].Type)
}

func TestGraphNodeIDCollision(t *testing.T) {
	s := setupServer(t)
	ada := createPerson(t, s, "Ada", "Lovelace")

	// An event sharing a person's id claims the node: people are merged
	// first, events second.
	rec := doJSON(t, s, http.MethodPost, "/events/", map[string]any{
		"id":    ada.ID,
		"title": "Shadowing event",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/graph/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var graph wire.GraphDoc
	decodeInto(t, rec, &graph)
	require.Len(t, graph.Nodes, 1)

	node, ok := graph.Nodes[ada.ID].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "event", node["type"])
	assert.Equal(t, "Shadowing event", node["title"])
}

func TestExportEndpoint(t *testing.T) {
	s := setupServer(t)
	ada := createPerson(t, s, "Ada", "Lovelace")
	william := createPerson(t, s, "William", "King")

	rec := doJSON(t, s, http.MethodPost, "/relationships/", map[string]any{
		"fromId": william.ID,
		"toId":   ada.ID,
		"type":   "SPOUSE_OF",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/export/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=sylvanote_export.zip`, rec.Header().Get("Content-Disposition"))

	raw := rec.Body.Bytes()
	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)

	names := make([]string, 0, len(reader.File))
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"people/" + ada.ID + ".md",
		"people/" + william.ID + ".md",
		"relationships.json",
	}, names)

	manifest, err := reader.Open("relationships.json")
	require.NoError(t, err)
	defer manifest.Close()

	var edges []wire.RelationshipDoc
	require.NoError(t, json.NewDecoder(manifest).Decode(&edges))
	require.Len(t, edges, 1)
	assert.Equal(t, william.ID, edges[0].FromID)
	assert.Equal(t, ada.ID, edges[0].ToID)
	assert.Equal(t, "SPOUSE_OF", edges[0].Type)
}

// Package export builds the downloadable archive of all records: one
// markdown document per person and per event plus a relationships manifest,
// bundled into a zip produced fully in memory.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sylvanote/sylvanote/pkg/types"
	"github.com/sylvanote/sylvanote/pkg/wire"
)

// ArchiveName is the filename offered to downloading clients.
const ArchiveName = "sylvanote_export.zip"

// Generate renders every record into the archive layout:
//
//	people/<id>.md       person document, bio as body
//	events/<id>.md       event document, description as body
//	relationships.json   indent-formatted manifest of every edge
//
// Generation is atomic from the caller's perspective: either the whole
// archive is returned or an error, never a partial file.
func Generate(people []*types.Person, events []*types.Event, edges []*types.RelationshipEdge) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, p := range people {
		doc := wire.PersonToDoc(p)
		md, err := PersonMarkdown(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering person %s: %w", doc.ID, err)
		}
		if err := addFile(zw, "people/"+doc.ID+".md", []byte(md)); err != nil {
			return nil, err
		}
	}

	for _, e := range events {
		doc := wire.EventToDoc(e)
		md, err := EventMarkdown(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering event %s: %w", doc.ID, err)
		}
		if err := addFile(zw, "events/"+doc.ID+".md", []byte(md)); err != nil {
			return nil, err
		}
	}

	docs := make([]wire.RelationshipDoc, 0, len(edges))
	for _, r := range edges {
		docs = append(docs, wire.RelationshipToDoc(r))
	}
	manifest, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering relationships manifest: %w", err)
	}
	if err := addFile(zw, "relationships.json", manifest); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// PersonMarkdown renders a person document with every wire field except bio
// in the header block and the biography text as the body.
func PersonMarkdown(doc wire.PersonDoc) (string, error) {
	body := ""
	if doc.Bio != nil {
		body = *doc.Bio
	}
	return renderDocument(doc, "bio", body)
}

// EventMarkdown renders an event document with every wire field except
// description in the header block and the description text as the body.
func EventMarkdown(doc wire.EventDoc) (string, error) {
	body := ""
	if doc.Description != nil {
		body = *doc.Description
	}
	return renderDocument(doc, "description", body)
}

// addFile writes one file entry into the archive.
func addFile(zw *zip.Writer, name string, contents []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}
	if _, err := w.Write(contents); err != nil {
		return fmt.Errorf("writing archive entry %s: %w", name, err)
	}
	return nil
}

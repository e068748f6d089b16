// YAML header block rendering for exported documents.
package export

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// renderDocument renders a wire document as a markdown file: a YAML header
// block delimited by --- lines holding every field except bodyKey, followed
// by the body text. The document is first encoded to a YAML node tree, which
// canonicalizes identifiers and enum values to plain scalars and preserves
// the wire schema's field order; the body key is then dropped from the
// mapping. Unset optional fields render as null.
func renderDocument(doc any, bodyKey, body string) (string, error) {
	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding header block: %w", err)
	}
	dropKey(&node, bodyKey)

	header, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("rendering header block: %w", err)
	}
	return "---\n" + string(header) + "---\n" + body, nil
}

// dropKey removes a key/value pair from a YAML mapping node. Mapping content
// alternates key and value nodes.
func dropKey(node *yaml.Node, key string) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content = append(node.Content[:i], node.Content[i+2:]...)
			return
		}
	}
}

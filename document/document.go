package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/spectools/specharden/sherrors"
)

// Document wraps a parsed YAML document whose root is a mapping.
//
// The underlying yaml.Node tree is mutated in place by the merger and
// enhancer packages; Document does not copy on access.
type Document struct {
	root *yaml.Node
}

// Parse parses a YAML document from bytes.
//
// The document root must be a mapping (the shape of every OpenAPI
// document). Empty documents and non-mapping roots are rejected with a
// *sherrors.ParseError.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &sherrors.ParseError{Message: "invalid YAML", Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &sherrors.ParseError{Message: "document is empty"}
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return nil, &sherrors.ParseError{Message: "document root is not a mapping"}
	}
	return &Document{root: &root}, nil
}

// ParseFile parses a YAML document from a file path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &sherrors.ParseError{Path: path, Message: "reading file", Cause: err}
	}

	doc, err := Parse(data)
	if err != nil {
		var pe *sherrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, &sherrors.ParseError{Path: path, Cause: err}
	}
	return doc, nil
}

// Root returns the root mapping node of the document.
func (d *Document) Root() *yaml.Node {
	return d.root.Content[0]
}

// Get walks nested mappings by key and returns the node at the end of the
// path, or nil if any segment is absent or an intermediate value is not a
// mapping.
func (d *Document) Get(path ...string) *yaml.Node {
	node := d.Root()
	for _, key := range path {
		if !IsMapping(node) {
			return nil
		}
		node = MapGet(node, key)
		if node == nil {
			return nil
		}
	}
	return node
}

// Marshal serializes the document to YAML in block style with two-space
// indentation. Key order follows the node tree, which preserves the
// source document's insertion order plus any appended keys.
func (d *Document) Marshal() ([]byte, error) {
	blockify(d.root)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("document: failed to marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("document: failed to marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// blockify clears flow style on mappings and sequences so the encoder
// emits block style throughout. Scalar styles (quoting, literal blocks)
// are left as the source had them.
func blockify(node *yaml.Node) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode, yaml.DocumentNode:
		node.Style = 0
		for _, child := range node.Content {
			blockify(child)
		}
	}
}

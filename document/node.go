package document

import "go.yaml.in/yaml/v4"

// Item is a single key/value pair from a mapping node.
type Item struct {
	Key   string
	Value *yaml.Node
}

// IsMapping reports whether node is a non-nil mapping node.
func IsMapping(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.MappingNode
}

// IsNull reports whether node is a YAML null scalar.
func IsNull(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

// MapGet returns the value node for key in a mapping node, or nil if the
// key is absent or m is not a mapping.
func MapGet(m *yaml.Node, key string) *yaml.Node {
	if !IsMapping(m) {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode && m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// MapSet sets key to value in a mapping node. An existing key keeps its
// position and has its value replaced; a new key is appended at the end.
func MapSet(m *yaml.Node, key string, value *yaml.Node) {
	if !IsMapping(m) {
		return
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode && m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, StringNode(key), value)
}

// MapEnsure returns the mapping node stored under key, creating an empty
// mapping if the key is absent or holds a null value. Returns nil if the
// key exists but holds a non-mapping, non-null value.
func MapEnsure(m *yaml.Node, key string) *yaml.Node {
	existing := MapGet(m, key)
	switch {
	case existing == nil, IsNull(existing):
		child := MappingNode()
		MapSet(m, key, child)
		return child
	case IsMapping(existing):
		return existing
	default:
		return nil
	}
}

// MapItems returns the key/value pairs of a mapping node in document
// order. Pairs whose key is not a scalar are skipped.
func MapItems(m *yaml.Node) []Item {
	if !IsMapping(m) {
		return nil
	}
	items := make([]Item, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind != yaml.ScalarNode {
			continue
		}
		items = append(items, Item{Key: m.Content[i].Value, Value: m.Content[i+1]})
	}
	return items
}

// MapLen returns the number of key/value pairs in a mapping node.
func MapLen(m *yaml.Node) int {
	if !IsMapping(m) {
		return 0
	}
	return len(m.Content) / 2
}

// StringNode creates a scalar node holding a string value.
func StringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// MappingNode creates an empty mapping node.
func MappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// RefNode creates a mapping node holding a single $ref entry pointing at
// target.
func RefNode(target string) *yaml.Node {
	m := MappingNode()
	MapSet(m, "$ref", StringNode(target))
	return m
}

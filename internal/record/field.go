package record

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	strTag   = "!!str"
	nullTag  = "!!null"
	mergeTag = "!!merge"
)

// Field is a presence-aware value slot backed by the original YAML node.
type Field struct {
	node *yaml.Node
}

// newField wraps a decoded node slot; a zero node means the key was absent.
func newField(node yaml.Node) Field {
	if node.Kind == 0 {
		return Field{}
	}
	resolved := resolveAlias(&node)
	return Field{node: resolved}
}

// Present reports whether the key existed, even with a null value.
func (f Field) Present() bool {
	return f.node != nil
}

// Text returns the value when it is a string scalar. Unquoted dates,
// numbers and booleans resolve to other tags and are not text.
func (f Field) Text() (string, bool) {
	if f.node == nil || f.node.Kind != yaml.ScalarNode || f.node.ShortTag() != strTag {
		return "", false
	}
	return f.node.Value, true
}

// Display renders the value for use in messages.
func (f Field) Display() string {
	if f.node == nil {
		return ""
	}
	if f.node.Kind == yaml.ScalarNode {
		if f.node.ShortTag() == nullTag {
			return "null"
		}
		return f.node.Value
	}
	var value any
	if err := f.node.Decode(&value); err != nil {
		return fmt.Sprintf("<%s>", kindName(f.node.Kind))
	}
	return fmt.Sprint(value)
}

// Section is a presence-aware nested mapping. A section that is present but
// not a mapping exposes zero subfields.
type Section[T any] struct {
	present bool
	fields  T
}

// Present reports whether the key existed.
func (s Section[T]) Present() bool {
	return s.present
}

// Fields returns the decoded subfields.
func (s Section[T]) Fields() T {
	return s.fields
}

// decodeSection decodes a nested mapping into its slot document and converts it.
func decodeSection[D any, T any](node yaml.Node, convert func(D) T) (Section[T], error) {
	if node.Kind == 0 {
		return Section[T]{}, nil
	}
	resolved := resolveAlias(&node)
	section := Section[T]{present: true}
	if resolved.Kind != yaml.MappingNode {
		return section, nil
	}
	var doc D
	if err := resolved.Decode(&doc); err != nil {
		return Section[T]{}, err
	}
	section.fields = convert(doc)
	return section, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

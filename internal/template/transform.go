package template

import (
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// TransformKind identifies which shape a Transform declaration has.
type TransformKind int

const (
	// TransformAbsent means no usable Transform was declared.
	TransformAbsent TransformKind = iota

	// TransformScalar is a single pipeline id.
	TransformScalar

	// TransformSequence is an ordered list of pipeline ids.
	TransformSequence
)

func (k TransformKind) String() string {
	switch k {
	case TransformAbsent:
		return "absent"
	case TransformScalar:
		return "scalar"
	case TransformSequence:
		return "sequence"
	default:
		return fmt.Sprintf("TransformKind(%d)", int(k))
	}
}

// Transform is the Transform declaration of a template: absent, a single id,
// or a sequence of ids. The zero value is absent.
type Transform struct {
	kind TransformKind
	ids  []string
}

// ScalarTransform returns a single-id transform.
func ScalarTransform(id string) Transform {
	return Transform{kind: TransformScalar, ids: []string{id}}
}

// SequenceTransform returns a sequence transform holding ids in order.
func SequenceTransform(ids ...string) Transform {
	seq := make([]string, len(ids))
	copy(seq, ids)
	return Transform{kind: TransformSequence, ids: seq}
}

// Kind reports the declared shape.
func (t Transform) Kind() TransformKind {
	return t.kind
}

// IDs returns a copy of the declared pipeline ids. Absent transforms have none.
func (t Transform) IDs() []string {
	if t.kind == TransformAbsent {
		return nil
	}
	ids := make([]string, len(t.ids))
	copy(ids, t.ids)
	return ids
}

// Contains reports whether id is declared.
func (t Transform) Contains(id string) bool {
	return t.kind != TransformAbsent && lo.Contains(t.ids, id)
}

// IsZero reports whether the transform is absent. yaml.v3 uses it for omitempty.
func (t Transform) IsZero() bool {
	return t.kind == TransformAbsent
}

// WithDefault returns t reconciled with DefaultTransform:
//   - absent becomes the default id as a scalar
//   - a scalar other than the default becomes [scalar, default]
//   - a sequence gets the default appended when missing, and repeated
//     default ids collapse to the first
func (t Transform) WithDefault() Transform {
	switch t.kind {
	case TransformAbsent:
		return ScalarTransform(DefaultTransform)
	case TransformScalar:
		if t.ids[0] == DefaultTransform {
			return ScalarTransform(DefaultTransform)
		}
		return SequenceTransform(t.ids[0], DefaultTransform)
	case TransformSequence:
		if !lo.Contains(t.ids, DefaultTransform) {
			return SequenceTransform(append(t.IDs(), DefaultTransform)...)
		}
		seen := false
		return SequenceTransform(lo.Filter(t.ids, func(id string, _ int) bool {
			if id != DefaultTransform {
				return true
			}
			if seen {
				return false
			}
			seen = true
			return true
		})...)
	default:
		panic(fmt.Sprintf("template: unknown transform kind %v", t.kind))
	}
}

// UnmarshalYAML decodes a string scalar or a sequence of scalars. Nulls and
// any other shape decode as absent.
func (t *Transform) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!str" {
			*t = Transform{}
			return nil
		}
		*t = ScalarTransform(node.Value)
		return nil
	case yaml.SequenceNode:
		ids := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: transform entries must be scalars", item.Line)
			}
			ids = append(ids, item.Value)
		}
		*t = SequenceTransform(ids...)
		return nil
	case yaml.AliasNode:
		return t.UnmarshalYAML(node.Alias)
	default:
		*t = Transform{}
		return nil
	}
}

// MarshalYAML encodes a scalar as a string and a sequence as a list.
func (t Transform) MarshalYAML() (any, error) {
	switch t.kind {
	case TransformAbsent:
		return nil, nil
	case TransformScalar:
		return t.ids[0], nil
	case TransformSequence:
		return t.IDs(), nil
	default:
		return nil, fmt.Errorf("unknown transform kind %v", t.kind)
	}
}

// Equal reports whether both transforms have the same shape and ids.
func (t Transform) Equal(other Transform) bool {
	if t.kind != other.kind || len(t.ids) != len(other.ids) {
		return false
	}
	for i := range t.ids {
		if t.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

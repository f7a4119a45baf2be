package ir

import "fmt"

const mergeTag = "tag:yaml.org,2002:merge"

// IsMergeKey reports whether y is a "<<" merge key.
func (y *Node) IsMergeKey() bool {
	if y == nil || y.Type != ScalarType || y.String != "<<" || y.Style.IsQuoted() {
		return false
	}
	return y.Tag == "" || y.Tag == "!!merge" || y.Tag == mergeTag
}

// ExpandMergeKeys replaces the "<<" pairs of mapping y with the pairs of the
// mappings they reference. Pairs already present in y win, and among
// several merged mappings the earlier one wins.
func (y *Node) ExpandMergeKeys() error {
	if y.Type != MappingType {
		return nil
	}
	var sources []*Node
	fields := make([]*Node, 0, len(y.Fields))
	values := make([]*Node, 0, len(y.Values))
	for i, f := range y.Fields {
		if !f.IsMergeKey() {
			fields = append(fields, f)
			values = append(values, y.Values[i])
			continue
		}
		v := y.Values[i]
		switch v.Type {
		case MappingType:
			sources = append(sources, v)
		case SequenceType:
			for _, sv := range v.Values {
				if sv.Type != MappingType {
					return fmt.Errorf("%w: %s: merge sequence element is a %s", ErrMerge, y.Path(), sv.Type)
				}
				sources = append(sources, sv)
			}
		default:
			return fmt.Errorf("%w: %s: cannot merge a %s", ErrMerge, y.Path(), v.Type)
		}
	}
	if len(sources) == 0 {
		return nil
	}
	y.Fields, y.Values = nil, nil
	for i := range fields {
		y.AppendPair(fields[i], values[i])
	}
	for _, src := range sources {
		for i, f := range src.Fields {
			if y.hasKey(f) {
				continue
			}
			y.AppendPair(f.Clone(), src.Values[i].Clone())
		}
	}
	return nil
}

func (y *Node) hasKey(k *Node) bool {
	for _, f := range y.Fields {
		if Equal(f, k) {
			return true
		}
	}
	return false
}

package render

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/goliatone/go-fragment/pkg/fragment"
)

const (
	// KeyName holds the text rendered before the list.
	KeyName = "name"
	// KeyList holds the ordered items or groups of items.
	KeyList = "list"
)

// Context is the dynamic render record, typically decoded from JSON or YAML.
type Context map[string]any

// ContextFromList converts typed list data into a Context.
func ContextFromList(data fragment.List) Context {
	items := make([]any, len(data.Items))
	for i, item := range data.Items {
		items[i] = item
	}
	return Context{KeyName: data.Name, KeyList: items}
}

// ContextFromListInList converts typed nested data into a Context.
func ContextFromListInList(data fragment.ListInList) Context {
	groups := make([]any, len(data.Groups))
	for i, group := range data.Groups {
		items := make([]any, len(group))
		for j, item := range group {
			items[j] = item
		}
		groups[i] = items
	}
	return Context{KeyName: data.Name, KeyList: groups}
}

// Name returns the name field. A missing name is the empty string.
func (c Context) Name() (string, error) {
	raw, ok := c[KeyName]
	if !ok || raw == nil {
		return "", nil
	}
	text, ok := scalarText(raw)
	if !ok {
		return "", invalidInput(KeyName, "expected text, got %T", raw)
	}
	return text, nil
}

// Items returns the list field as text leaves.
func (c Context) Items() ([]string, error) {
	seq, err := c.sequence()
	if err != nil {
		return nil, err
	}
	return textLeaves(KeyList, seq)
}

// Groups returns the list field as a sequence of text sequences.
func (c Context) Groups() ([][]string, error) {
	if groups, ok := c[KeyList].([][]string); ok {
		return groups, nil
	}
	seq, err := c.sequence()
	if err != nil {
		return nil, err
	}
	groups := make([][]string, 0, len(seq))
	for i, raw := range seq {
		field := fmt.Sprintf("%s[%d]", KeyList, i)
		inner, ok := asSequence(raw)
		if !ok {
			return nil, invalidInput(field, "expected a list, got %T", raw)
		}
		items, err := textLeaves(field, inner)
		if err != nil {
			return nil, err
		}
		groups = append(groups, items)
	}
	return groups, nil
}

// List decodes the context as list fragment input.
func (c Context) List() (fragment.List, error) {
	name, err := c.Name()
	if err != nil {
		return fragment.List{}, err
	}
	items, err := c.Items()
	if err != nil {
		return fragment.List{}, err
	}
	return fragment.List{Name: name, Items: items}, nil
}

// ListInList decodes the context as nested list fragment input.
func (c Context) ListInList() (fragment.ListInList, error) {
	name, err := c.Name()
	if err != nil {
		return fragment.ListInList{}, err
	}
	groups, err := c.Groups()
	if err != nil {
		return fragment.ListInList{}, err
	}
	return fragment.ListInList{Name: name, Groups: groups}, nil
}

func (c Context) sequence() ([]any, error) {
	raw, ok := c[KeyList]
	if !ok || raw == nil {
		return nil, invalidInput(KeyList, "missing")
	}
	seq, ok := asSequence(raw)
	if !ok {
		return nil, invalidInput(KeyList, "expected a list, got %T", raw)
	}
	return seq, nil
}

func asSequence(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case [][]string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func textLeaves(field string, seq []any) ([]string, error) {
	out := make([]string, 0, len(seq))
	for i, raw := range seq {
		text, ok := scalarText(raw)
		if !ok {
			return nil, invalidInput(fmt.Sprintf("%s[%d]", field, i), "expected text, got %T", raw)
		}
		out = append(out, text)
	}
	return out, nil
}

func scalarText(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}

	// Kinds rather than types, so named scalars and every numeric width
	// decode the same way.
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

package fragment

const (
	// GreetingText is the literal emitted by the greeting fragment.
	GreetingText = "Hello world!"

	// NameSeparator follows the escaped name in a list fragment.
	NameSeparator = ": "
	// ItemSeparator joins list items.
	ItemSeparator = ", "
)

// List is the input of the list fragment.
type List struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"list" yaml:"list"`
}

// ListInList is the input of the list-of-lists fragment. Each group is
// rendered as a List sharing Name.
type ListInList struct {
	Name   string     `json:"name" yaml:"name"`
	Groups [][]string `json:"list" yaml:"list"`
}

// Greeting returns the greeting fragment.
func Greeting() string {
	return GreetingText
}

// GreetingInto appends the greeting fragment to sink.
func GreetingInto(sink Sink) {
	sink.Append(GreetingText)
}

// RenderList renders data as "name: item, item".
func RenderList(data List) string {
	var buf Buffer
	RenderListInto(data, &buf)
	return buf.String()
}

// RenderListInto appends the list fragment for data to sink.
func RenderListInto(data List, sink Sink) {
	sink.Append(EscapeHTML(data.Name), NameSeparator, JoinEscaped(data.Items, ItemSeparator))
}

// RenderListInList renders one list fragment per group, concatenated without
// a separator.
func RenderListInList(data ListInList) string {
	var buf Buffer
	RenderListInListInto(data, &buf)
	return buf.String()
}

// RenderListInListInto appends one list fragment per group to sink.
func RenderListInListInto(data ListInList, sink Sink) {
	for _, group := range data.Groups {
		RenderListInto(List{Name: data.Name, Items: group}, sink)
	}
}

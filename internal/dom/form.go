package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Submit dispatches a submit event at a form.
func (d *Document) Submit(form *html.Node) bool {
	return d.Dispatch(form, &Event{Type: EventSubmit})
}

// Value returns the current value of a form control. Textareas hold their
// value as text, selects in their selected option, other controls in the
// value attribute.
func Value(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Data {
	case "textarea":
		return TextContent(n)
	case "select":
		if option := selectedOption(n); option != nil {
			return optionValue(option)
		}
		return ""
	}
	return GetAttr(n, "value")
}

// SetValue changes the value of a form control, standing in for user input.
// A select picks the first option with that value and keeps its selection
// when none matches.
func SetValue(n *html.Node, value string) {
	switch n.Data {
	case "textarea":
		SetText(n, value)
		return
	case "select":
		options := QueryAll(n, "option")
		for _, option := range options {
			if optionValue(option) != value {
				continue
			}
			for _, other := range options {
				RemoveAttr(other, "selected")
			}
			SetAttr(option, "selected", "")
			return
		}
		return
	}
	SetAttr(n, "value", value)
}

// selectedOption is the last option marked selected, or the first enabled
// option when none is.
func selectedOption(sel *html.Node) *html.Node {
	options := QueryAll(sel, "option")
	var selected *html.Node
	for _, option := range options {
		if _, ok := LookupAttr(option, "selected"); ok {
			selected = option
		}
	}
	if selected != nil {
		return selected
	}
	for _, option := range options {
		if !Disabled(option) {
			return option
		}
	}
	return nil
}

// optionValue is the value attribute, falling back to the option text.
func optionValue(option *html.Node) string {
	if value, ok := LookupAttr(option, "value"); ok {
		return value
	}
	return strings.TrimSpace(TextContent(option))
}

// Field returns the control named name inside form.
func Field(form *html.Node, name string) *html.Node {
	for _, n := range QueryAll(form, "input[name], textarea[name], select[name]") {
		if GetAttr(n, "name") == name {
			return n
		}
	}
	return nil
}

// FieldValue is Value(Field(form, name)).
func FieldValue(form *html.Node, name string) string {
	return Value(Field(form, name))
}

// SetDisabled toggles the disabled attribute.
func SetDisabled(n *html.Node, disabled bool) {
	if disabled {
		SetAttr(n, "disabled", "")
	} else {
		RemoveAttr(n, "disabled")
	}
}

func Disabled(n *html.Node) bool {
	_, ok := LookupAttr(n, "disabled")
	return ok
}

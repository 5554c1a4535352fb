package render

// Attr constructor tags.
const (
	attrVal = iota
	attrMouseEvent
	attrStyle
	attrTooltip
	attrTextChangeEvent
)

// Mouse-event kinds, numbered click/enter/leave.
const (
	mouseClick = iota
	mouseEnter
	mouseLeave
)

var mouseEventNames = map[int]string{
	mouseClick: "onClick",
	mouseEnter: "onMouseEnter",
	mouseLeave: "onMouseLeave",
}

// mergeAttr applies one decoded attribute value into attrs: className
// concatenates with a space, everything else is last-wins. Style pairs do
// not come through here; mergeStyle accumulates them into a nested map.
func mergeAttr(attrs map[string]any, key, value string) {
	if key == "className" {
		if existing, ok := attrs[key].(string); ok && existing != "" {
			attrs[key] = existing + " " + value
			return
		}
	}
	attrs[key] = value
}

func mergeStyle(attrs map[string]any, key, value string) {
	style, ok := attrs["style"].(map[string]string)
	if !ok {
		style = map[string]string{}
		attrs["style"] = style
	}
	style[key] = value
}

package registry

// Registry contains every drill organized by namespace.
var Registry = map[string][]FunctionDef{
	"Numeric":  numericFunctions,
	"Sequence": sequenceFunctions,
	"Text":     textFunctions,
	"Calendar": calendarFunctions,
}

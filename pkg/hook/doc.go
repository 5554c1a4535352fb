// Package hook implements the six hook variants a component's layered
// declaration decodes into: FilterMapAction, MapProps, WithShouldUpdate,
// Stateful, WithTask, and WithMouseCapture. Hooks are held in declaration
// order (outermost first) by a component instance; construction of that
// stack lives in package component, which is the only caller of these
// constructors.
//
// Each variant implements only the Hook methods it needs; Base supplies
// pass-through defaults for the rest.
package hook

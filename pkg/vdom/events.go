package vdom

// OnEvent binds handler to the event named by name, which is capitalized
// the way it appears after "on": OnEvent("Toggle", h) binds onToggle.
func OnEvent(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Shorthands for common DOM events.

func OnClick(handler any) EventHandler       { return OnEvent("Click", handler) }
func OnDoubleClick(handler any) EventHandler { return OnEvent("DoubleClick", handler) }
func OnKeyDown(handler any) EventHandler     { return OnEvent("KeyDown", handler) }
func OnInput(handler any) EventHandler       { return OnEvent("Input", handler) }
func OnChange(handler any) EventHandler      { return OnEvent("Change", handler) }
func OnSubmit(handler any) EventHandler      { return OnEvent("Submit", handler) }
func OnFocus(handler any) EventHandler       { return OnEvent("Focus", handler) }
func OnBlur(handler any) EventHandler        { return OnEvent("Blur", handler) }
func OnPointerDown(handler any) EventHandler { return OnEvent("PointerDown", handler) }

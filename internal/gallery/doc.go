// Package gallery serves rendered fixtures over HTTP with live reload.
//
// Routes:
//
//	/                        fixture index
//	/fixtures/{name}         fixture page: preview and source
//	/fixtures/{name}.html    rendered HTML fragment only
//	/_gallery/reload         reload websocket
//	/metrics                 Prometheus metrics
//
// With gallery.watch enabled, a Watcher re-renders fixtures as their files
// change. The new tree is compared to the previous one and pages are told
// to reload only when the output differs.
//
// # Reload Protocol
//
// Messages are JSON-encoded:
//
//	{"type": "reload", "fixture": "card"}
//	{"type": "error", "fixture": "card", "error": "..."}
//	{"type": "clear"}
package gallery

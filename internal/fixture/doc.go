// Package fixture loads declarative resolver fixtures.
//
// A fixture is a YAML document describing one resolver call: which variant
// to use, the default tag, the state, and the author's and consumer's
// configuration. Rendering a fixture runs the real resolver:
//
//	name: toggle-active
//	variant: stateful
//	tag: button
//	state:
//	  active: true
//	base:
//	  className: 'toggle {{if .active}}toggle-on{{end}}'
//	  stateAttrs:
//	    aria-pressed: '{{.active}}'
//	  children: '{{if .active}}On{{else}}Off{{end}}'
//	  handlers: [onClick]
//	props:
//	  className: wide
//	  render:
//	    tag: a
//	    attrs: {href: /toggle}
//
// className, children, and stateAttrs strings are text/template
// expressions evaluated against the state (container children against the
// item, which also carries "index" and "container"). A missing key is an
// error. handlers names keys that receive a no-op function, which is
// enough to exercise chaining and the data-on-* markers.
//
// props.render is an element ({tag, attrs, children}) or a wrapping
// function ({wrap: tag}) that renders the resolved attributes on the
// default tag inside another element. Any other value is passed through
// as a malformed override.
package fixture

package fixture

import (
	"strings"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/container"
	"github.com/vango-dev/renderprop/pkg/merge"
	"github.com/vango-dev/renderprop/pkg/render"
	"github.com/vango-dev/renderprop/pkg/slot"
	"github.com/vango-dev/renderprop/pkg/stateful"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// State is the state type fixtures resolve with.
type State = map[string]any

// Render runs the fixture's resolver and returns the resolved tree.
func (f *Fixture) Render(opts ...slot.Option) (*vdom.VNode, error) {
	if f.Strict {
		opts = append([]slot.Option{slot.WithStrict(true)}, opts...)
	}

	ev := &evaluator{f: f}
	var node *vdom.VNode
	switch f.Variant {
	case VariantSlot:
		node = f.renderSlot(ev, opts)
	case VariantStateful:
		node = f.renderStateful(ev, opts)
	case VariantContainer:
		node = f.renderContainer(ev, opts)
	default:
		return nil, errors.New("E031").WithDetailf("variant %q", f.Variant)
	}
	if ev.err != nil {
		return nil, ev.err
	}
	return node, nil
}

// HTML renders the fixture to an HTML string.
func (f *Fixture) HTML(config render.RendererConfig, opts ...slot.Option) (string, error) {
	node, err := f.Render(opts...)
	if err != nil {
		return "", err
	}
	return render.NewRenderer(config).RenderToString(node)
}

// Check renders the fixture twice and verifies both trees are equal and
// the HTML meets the fixture's expectations.
func (f *Fixture) Check(opts ...slot.Option) error {
	first, err := f.Render(opts...)
	if err != nil {
		return err
	}
	second, err := f.Render(opts...)
	if err != nil {
		return err
	}
	if patches := vdom.Diff(first, second); len(patches) > 0 {
		return errors.New("E041").
			WithDetailf("%s: %d patch(es), first %s at %q", f.Name, len(patches), patches[0].Op, patches[0].Path)
	}

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(first)
	if err != nil {
		return errors.New("E034").WithDetail(f.Name).Wrap(err)
	}
	if f.Expect.HTML != "" && html != strings.TrimSpace(f.Expect.HTML) {
		return errors.New("E034").
			WithDetailf("%s: got %s, want %s", f.Name, html, strings.TrimSpace(f.Expect.HTML))
	}
	for _, want := range f.Expect.Contains {
		if !strings.Contains(html, want) {
			return errors.New("E034").WithDetailf("%s: output %s does not contain %s", f.Name, html, want)
		}
	}
	return nil
}

func (f *Fixture) renderSlot(ev *evaluator, opts []slot.Option) *vdom.VNode {
	state := f.State
	baseAttrs := f.attrs(f.Base)
	for k, v := range ev.stateAttrs(f.Base.StateAttrs, state) {
		baseAttrs[k] = v
	}

	base := &slot.BaseProps{
		ClassName: ev.text(f.Base.ClassName, state),
		Style:     vdom.Style(f.Base.Style),
		Children:  ev.children(f.Base.Children, state),
		Attrs:     baseAttrs,
	}
	props := &slot.Props{
		ClassName: ev.text(f.Props.ClassName, state),
		Style:     vdom.Style(f.Props.Style),
		Children:  ev.children(f.Props.Children, state),
		Attrs:     f.consumerAttrs(ev, state),
		Render:    f.slotRender(ev, state),
	}
	return slot.Resolve(f.Tag, base, props, opts...)
}

func (f *Fixture) renderStateful(ev *evaluator, opts []slot.Option) *vdom.VNode {
	base := &stateful.BaseProps[State]{
		ClassName:       className(ev, f.Base.ClassName),
		Style:           style(f.Base.Style),
		Children:        childrenOf(ev, f.Base.Children),
		Attrs:           f.attrs(f.Base),
		StateAttributes: stateAttributes(ev, f.Base.StateAttrs),
	}
	props := &stateful.Props[State]{
		ClassName: className(ev, f.Props.ClassName),
		Style:     style(f.Props.Style),
		Children:  childrenOf(ev, f.Props.Children),
		Attrs:     f.consumerAttrs(ev, f.State),
		Render:    f.statefulRender(ev),
	}
	return stateful.Resolve(f.Tag, f.State, base, props, opts...)
}

func (f *Fixture) renderContainer(ev *evaluator, opts []slot.Option) *vdom.VNode {
	base := &container.BaseProps[State, State]{
		ClassName:       className(ev, f.Base.ClassName),
		Style:           style(f.Base.Style),
		Children:        childrenOf(ev, f.Base.Children),
		Attrs:           f.attrs(f.Base),
		StateAttributes: stateAttributes(ev, f.Base.StateAttrs),
	}
	props := &container.Props[State, State]{
		ClassName: className(ev, f.Props.ClassName),
		Style:     style(f.Props.Style),
		Children:  childrenOf(ev, f.Props.Children),
		Attrs:     f.consumerAttrs(ev, f.State),
		Render:    f.statefulRender(ev),
	}

	r := container.New(f.Tag, f.State, base, props, opts...)
	items := container.Map(r, f.Items, func(item map[string]any, i int) State {
		return itemState(item, i, f.State)
	})
	return r.RenderContainer(items)
}

// itemState is the item's own fields plus "index" and "container".
func itemState(item map[string]any, index int, containerState State) State {
	out := make(State, len(item)+2)
	for k, v := range item {
		out[k] = v
	}
	out["index"] = index
	out["container"] = containerState
	return out
}

// attrs copies a side's attributes and adds its no-op handlers.
func (f *Fixture) attrs(side PropsSpec) vdom.Props {
	out := vdom.Props(side.Attrs).Clone()
	for _, key := range side.Handlers {
		out[key] = func(any) {}
	}
	return out
}

// consumerAttrs folds the consumer's evaluated stateAttrs into its attrs.
func (f *Fixture) consumerAttrs(ev *evaluator, state State) vdom.Props {
	out := f.attrs(f.Props)
	for k, v := range ev.stateAttrs(f.Props.StateAttrs, state) {
		out[k] = v
	}
	return out
}

func (ev *evaluator) stateAttrs(attrs map[string]any, state State) vdom.Props {
	if len(attrs) == 0 {
		return nil
	}
	out := make(vdom.Props, len(attrs))
	for k, v := range attrs {
		if s, ok := v.(string); ok {
			out[k] = ev.text(s, state)
			continue
		}
		out[k] = v
	}
	return out
}

func stateAttributes(ev *evaluator, attrs map[string]any) func(State) vdom.Props {
	if len(attrs) == 0 {
		return nil
	}
	return func(s State) vdom.Props { return ev.stateAttrs(attrs, s) }
}

func className(ev *evaluator, src string) merge.ClassName[State] {
	switch {
	case src == "":
		return merge.ClassName[State]{}
	case strings.Contains(src, "{{"):
		return merge.ClassFromState(func(s State) string { return strings.TrimSpace(ev.text(src, s)) })
	}
	return merge.Class[State](src)
}

func style(attrs map[string]any) merge.Style[State] {
	if len(attrs) == 0 {
		return merge.Style[State]{}
	}
	return merge.StyleOf[State](vdom.Style(attrs))
}

func childrenOf(ev *evaluator, src any) stateful.Children[State] {
	if src == nil {
		return stateful.Children[State]{}
	}
	return stateful.ChildrenFunc(func(s State) any { return ev.children(src, s) })
}

// children builds a children value from its fixture form: strings are
// templates, maps are elements, and lists hold either.
func (ev *evaluator) children(src any, data any) any {
	switch c := src.(type) {
	case nil:
		return nil
	case string:
		return ev.text(c, data)
	case []any:
		out := make([]any, 0, len(c))
		for _, item := range c {
			out = append(out, ev.children(item, data))
		}
		return out
	case map[string]any:
		var el ElementSpec
		if err := decode(c, &el); err != nil {
			ev.fail(errors.New("E030").WithDetail("invalid child element").Wrap(err))
			return nil
		}
		return ev.element(el, data)
	}
	return src
}

func (ev *evaluator) element(def ElementSpec, data any) *vdom.VNode {
	return vdom.CreateElement(def.Tag, vdom.Props(def.Attrs), ev.children(def.Children, data))
}

// renderSpec interprets props.render. A nil definition means no override; a
// value that does not describe an element or wrapper is returned as
// invalid.
func (ev *evaluator) renderSpec(v any) (def *ElementSpec, invalid any) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, v
	}
	var el ElementSpec
	if err := decode(m, &el); err != nil || (el.Tag == "" && el.Wrap == "") {
		return nil, v
	}
	return &el, nil
}

// wrap renders the default tag with the resolved props inside a wrapper.
func (f *Fixture) wrap(def *ElementSpec, props vdom.Props) *vdom.VNode {
	inner := vdom.CreateElement(f.Tag, props, props[vdom.PropChildren])
	return vdom.CreateElement(def.Wrap, vdom.Props(def.Attrs), inner)
}

func (f *Fixture) slotRender(ev *evaluator, state State) slot.Render {
	def, invalid := ev.renderSpec(f.Props.Render)
	switch {
	case invalid != nil:
		return slot.RenderValue(invalid)
	case def == nil:
		return slot.Render{}
	case def.Wrap != "":
		return slot.RenderFunc(func(p vdom.Props) *vdom.VNode { return f.wrap(def, p) })
	}
	return slot.RenderElement(ev.element(*def, state))
}

func (f *Fixture) statefulRender(ev *evaluator) stateful.Render[State] {
	def, invalid := ev.renderSpec(f.Props.Render)
	switch {
	case invalid != nil:
		return stateful.RenderValue[State](invalid)
	case def == nil:
		return stateful.Render[State]{}
	case def.Wrap != "":
		return stateful.RenderFunc(func(_ State, p vdom.Props) *vdom.VNode { return f.wrap(def, p) })
	}
	return stateful.RenderElement[State](ev.element(*def, f.State))
}

package blockkit

import "github.com/imryche/blockkit-sub000/pkg/validator"

// Button and confirm dialog styles.
const (
	StylePrimary = "primary"
	StyleDanger  = "danger"
)

// Confirm is a confirmation dialog shown before an interactive element acts.
type Confirm struct{ component }

func NewConfirm() *Confirm {
	c := &Confirm{}
	c.init(c)
	c.plainTextField("title", 1, 100, true)
	c.plainTextField("text", 1, 300, true)
	c.plainTextField("confirm", 1, 30, true)
	c.plainTextField("deny", 1, 30, true)
	c.field("style", validator.Strings(StylePrimary, StyleDanger))
	return c
}

func (c *Confirm) Title(title any) *Confirm {
	c.set("title", plainText(title))
	return c
}

func (c *Confirm) Text(text any) *Confirm {
	c.set("text", plainText(text))
	return c
}

func (c *Confirm) Confirm(confirm any) *Confirm {
	c.set("confirm", plainText(confirm))
	return c
}

func (c *Confirm) Deny(deny any) *Confirm {
	c.set("deny", plainText(deny))
	return c
}

func (c *Confirm) Style(style string) *Confirm {
	c.set("style", style)
	return c
}

// ConversationFilter narrows the conversations offered by conversation selects.
type ConversationFilter struct{ component }

func NewConversationFilter() *ConversationFilter {
	f := &ConversationFilter{}
	f.init(f)
	f.field("include",
		validator.Typed(validator.TypeOf[string]()),
		validator.Strings("im", "mpim", "private", "public"),
	)
	f.field("exclude_external_shared_channels")
	f.field("exclude_bot_users")
	f.validate(validator.AtLeastOne("include", "exclude_bot_users", "exclude_external_shared_channels"))
	return f
}

func (f *ConversationFilter) Include(include ...string) *ConversationFilter {
	f.set("include", list(include))
	return f
}

func (f *ConversationFilter) ExcludeExternalSharedChannels(exclude bool) *ConversationFilter {
	f.set("exclude_external_shared_channels", exclude)
	return f
}

func (f *ConversationFilter) ExcludeBotUsers(exclude bool) *ConversationFilter {
	f.set("exclude_bot_users", exclude)
	return f
}

// DispatchActionConfig decides when a text input dispatches block actions.
type DispatchActionConfig struct{ component }

func NewDispatchActionConfig() *DispatchActionConfig {
	d := &DispatchActionConfig{}
	d.init(d)
	d.field("trigger_actions_on",
		validator.Typed(validator.TypeOf[string]()),
		validator.Strings("on_enter_pressed", "on_character_entered"),
	)
	return d
}

func (d *DispatchActionConfig) TriggerActionsOn(triggers ...string) *DispatchActionConfig {
	d.set("trigger_actions_on", list(triggers))
	return d
}

// Option is a single selectable item.
type Option struct{ component }

func NewOption() *Option {
	o := &Option{}
	o.init(o)
	o.textField("text", 1, 75, true)
	o.field("value", validator.Required(), validator.Length(1, 150))
	o.textField("description", 1, 75, false)
	o.field("url", validator.Length(1, 3000))
	return o
}

func (o *Option) Text(text any) *Option {
	o.set("text", anyText(text))
	return o
}

func (o *Option) Value(value string) *Option {
	o.set("value", value)
	return o
}

func (o *Option) Description(description any) *Option {
	o.set("description", anyText(description))
	return o
}

func (o *Option) URL(url string) *Option {
	o.set("url", url)
	return o
}

// OptionGroup groups options under a label in select menus.
type OptionGroup struct{ component }

var optionType = validator.TypeOf[*Option]()

func NewOptionGroup() *OptionGroup {
	g := &OptionGroup{}
	g.init(g)
	g.plainTextField("label", 1, 75, true)
	g.listField("options", true, 1, 100, optionType)
	return g
}

func (g *OptionGroup) Label(label any) *OptionGroup {
	g.set("label", plainText(label))
	return g
}

func (g *OptionGroup) Options(options ...*Option) *OptionGroup {
	g.set("options", list(options))
	return g
}

func (g *OptionGroup) AddOption(option *Option) *OptionGroup {
	g.appendTo("options", option)
	return g
}

// InputParameter is a name/value pair passed to a workflow trigger.
type InputParameter struct{ component }

func NewInputParameter() *InputParameter {
	p := &InputParameter{}
	p.init(p)
	p.field("name", validator.Required())
	p.field("value", validator.Required())
	return p
}

func (p *InputParameter) Name(name string) *InputParameter {
	p.set("name", name)
	return p
}

func (p *InputParameter) Value(value string) *InputParameter {
	p.set("value", value)
	return p
}

// Trigger is the link trigger of a workflow.
type Trigger struct{ component }

func NewTrigger() *Trigger {
	t := &Trigger{}
	t.init(t)
	t.field("url", validator.Required(), validator.Length(1, 3000))
	t.listField("customizable_input_parameters", false, 0, validator.DefaultMaxLength,
		validator.TypeOf[*InputParameter]())
	return t
}

func (t *Trigger) URL(url string) *Trigger {
	t.set("url", url)
	return t
}

func (t *Trigger) CustomizableInputParameters(params ...*InputParameter) *Trigger {
	t.set("customizable_input_parameters", list(params))
	return t
}

func (t *Trigger) AddInputParameter(param *InputParameter) *Trigger {
	t.appendTo("customizable_input_parameters", param)
	return t
}

// Workflow wraps the trigger started by a workflow button.
type Workflow struct{ component }

func NewWorkflow() *Workflow {
	w := &Workflow{}
	w.init(w)
	w.field("trigger", validator.Required(), validator.Typed(validator.TypeOf[*Trigger]()))
	return w
}

func (w *Workflow) Trigger(trigger *Trigger) *Workflow {
	w.set("trigger", trigger)
	return w
}

// SlackFile references an uploaded file by URL or by ID, never both.
type SlackFile struct{ component }

func NewSlackFile() *SlackFile {
	f := &SlackFile{}
	f.init(f)
	f.field("url")
	f.field("id")
	f.validate(validator.OnlyOne("url", "id"))
	return f
}

func (f *SlackFile) URL(url string) *SlackFile {
	f.set("url", url)
	return f
}

func (f *SlackFile) ID(id string) *SlackFile {
	f.set("id", id)
	return f
}

// RichStyle holds the formatting flags of rich text elements.
type RichStyle struct{ component }

func NewRichStyle() *RichStyle {
	s := &RichStyle{}
	s.init(s)
	for _, name := range []string{"bold", "italic", "strike", "code", "highlight", "client_highlight", "unlink"} {
		s.field(name)
	}
	return s
}

func (s *RichStyle) Bold(bold bool) *RichStyle {
	s.set("bold", bold)
	return s
}

func (s *RichStyle) Italic(italic bool) *RichStyle {
	s.set("italic", italic)
	return s
}

func (s *RichStyle) Strike(strike bool) *RichStyle {
	s.set("strike", strike)
	return s
}

func (s *RichStyle) Code(code bool) *RichStyle {
	s.set("code", code)
	return s
}

func (s *RichStyle) Highlight(highlight bool) *RichStyle {
	s.set("highlight", highlight)
	return s
}

func (s *RichStyle) ClientHighlight(highlight bool) *RichStyle {
	s.set("client_highlight", highlight)
	return s
}

func (s *RichStyle) Unlink(unlink bool) *RichStyle {
	s.set("unlink", unlink)
	return s
}

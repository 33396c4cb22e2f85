package blockkit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Entry describes a registered component type.
type Entry struct {
	// Type is the "type" discriminant. Composition objects without one, and
	// types sharing a discriminant with another entry, leave it empty and are
	// found by Name.
	Type string
	// Name is the Go type name, e.g. "Button".
	Name string
	// Constructor is the exported constructor name, e.g. "NewButton".
	Constructor string
	// New returns a fresh instance.
	New func() Buildable
}

// Registry maps type discriminants and Go type names to constructors. It is
// safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byType map[string]Entry
	byName map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[string]Entry),
		byName: make(map[string]Entry),
	}
}

// Register adds an entry. Reusing a type discriminant or a name returns
// ErrDuplicateType.
func (r *Registry) Register(e Entry) error {
	name := strings.TrimSpace(e.Name)
	if name == "" || e.New == nil {
		return fmt.Errorf("blockkit: register %q: name and constructor are required", e.Name)
	}
	if e.Constructor == "" {
		e.Constructor = "New" + name
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	if e.Type != "" {
		if existing, ok := r.byType[e.Type]; ok {
			return fmt.Errorf("%w: %q is taken by %s", ErrDuplicateType, e.Type, existing.Name)
		}
		r.byType[e.Type] = e
	}
	r.byName[name] = e
	return nil
}

// Lookup finds an entry by its "type" discriminant.
func (r *Registry) Lookup(typ string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byType[typ]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	return e, nil
}

// LookupName finds an entry by Go type name.
func (r *Registry) LookupName(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return e, nil
}

// Entries returns all entries sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.byName))
	for _, e := range r.byName {
		entries = append(entries, e)
	}
	r.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, e := range builtins() {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
})

// DefaultRegistry returns the registry of built-in component types.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

func entry[T Buildable](typ, name string, constructor func() T) Entry {
	return Entry{
		Type:        typ,
		Name:        name,
		Constructor: "New" + name,
		New:         func() Buildable { return constructor() },
	}
}

func builtins() []Entry {
	return []Entry{
		// composition objects
		entry("", "Text", NewText),
		entry("", "Confirm", NewConfirm),
		entry("", "ConversationFilter", NewConversationFilter),
		entry("", "DispatchActionConfig", NewDispatchActionConfig),
		entry("", "Option", NewOption),
		entry("", "OptionGroup", NewOptionGroup),
		entry("", "InputParameter", NewInputParameter),
		entry("", "Trigger", NewTrigger),
		entry("", "Workflow", NewWorkflow),
		entry("", "SlackFile", NewSlackFile),
		entry("", "RichStyle", NewRichStyle),

		// elements
		entry("button", "Button", NewButton),
		entry("checkboxes", "Checkboxes", NewCheckboxes),
		entry("datepicker", "DatePicker", NewDatePicker),
		entry("datetimepicker", "DatetimePicker", NewDatetimePicker),
		entry("email_text_input", "EmailInput", NewEmailInput),
		entry("file_input", "FileInput", NewFileInput),
		entry("", "ImageEl", NewImageEl),
		entry("static_select", "StaticSelect", NewStaticSelect),
		entry("multi_static_select", "MultiStaticSelect", NewMultiStaticSelect),
		entry("external_select", "ExternalSelect", NewExternalSelect),
		entry("multi_external_select", "MultiExternalSelect", NewMultiExternalSelect),
		entry("users_select", "UsersSelect", NewUsersSelect),
		entry("multi_users_select", "MultiUsersSelect", NewMultiUsersSelect),
		entry("conversations_select", "ConversationsSelect", NewConversationsSelect),
		entry("multi_conversations_select", "MultiConversationsSelect", NewMultiConversationsSelect),
		entry("channels_select", "ChannelsSelect", NewChannelsSelect),
		entry("multi_channels_select", "MultiChannelsSelect", NewMultiChannelsSelect),
		entry("number_input", "NumberInput", NewNumberInput),
		entry("overflow", "Overflow", NewOverflow),
		entry("plain_text_input", "PlainTextInput", NewPlainTextInput),
		entry("radio_buttons", "RadioButtons", NewRadioButtons),
		entry("rich_text_input", "RichTextInput", NewRichTextInput),
		entry("timepicker", "TimePicker", NewTimePicker),
		entry("url_text_input", "URLInput", NewURLInput),
		entry("workflow_button", "WorkflowButton", NewWorkflowButton),

		// rich text
		entry("broadcast", "RichBroadcastEl", NewRichBroadcastEl),
		entry("color", "RichColorEl", NewRichColorEl),
		entry("channel", "RichChannelEl", NewRichChannelEl),
		entry("date", "RichDateEl", NewRichDateEl),
		entry("emoji", "RichEmojiEl", NewRichEmojiEl),
		entry("link", "RichLinkEl", NewRichLinkEl),
		entry("text", "RichTextEl", NewRichTextEl),
		entry("user", "RichUserEl", NewRichUserEl),
		entry("usergroup", "RichUserGroupEl", NewRichUserGroupEl),
		entry("rich_text_section", "RichTextSection", NewRichTextSection),
		entry("rich_text_list", "RichTextList", NewRichTextList),
		entry("rich_text_preformatted", "RichTextPreformatted", NewRichTextPreformatted),
		entry("rich_text_quote", "RichTextQuote", NewRichTextQuote),

		// blocks
		entry("actions", "Actions", NewActions),
		entry("context", "Context", NewContext),
		entry("divider", "Divider", NewDivider),
		entry("file", "File", NewFile),
		entry("header", "Header", NewHeader),
		entry("image", "Image", NewImage),
		entry("input", "Input", NewInput),
		entry("markdown", "Markdown", NewMarkdown),
		entry("rich_text", "RichText", NewRichText),
		entry("section", "Section", NewSection),
		entry("video", "Video", NewVideo),

		// surfaces
		entry("", "Message", NewMessage),
		entry("modal", "Modal", NewModal),
		entry("home", "Home", NewHome),
	}
}

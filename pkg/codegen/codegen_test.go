package codegen_test

import (
	"encoding/json"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imryche/blockkit-sub000"
	"github.com/imryche/blockkit-sub000/pkg/codegen"
	"github.com/imryche/blockkit-sub000/pkg/payload"
)

func parse(t *testing.T, src string) *blockkit.Payload {
	t.Helper()
	p, err := payload.JSON.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return p
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "plain text section",
			payload: `{"blocks": [{"type": "section", "text": {"type": "plain_text", "text": "This is a plain text section block.", "emoji": true}}]}`,
			want:    `blockkit.NewMessage().Blocks(blockkit.NewSection().Text(blockkit.PlainText("This is a plain text section block.").Emoji(true)))`,
		},
		{
			name:    "section fields",
			payload: `{"blocks": [{"type": "section", "fields": [{"type": "plain_text", "text": "*this is plain_text text*", "emoji": true}, {"type": "mrkdwn", "text": "*bold*"}]}]}`,
			want:    `blockkit.NewMessage().Blocks(blockkit.NewSection().Fields(blockkit.PlainText("*this is plain_text text*").Emoji(true), blockkit.MarkdownText("*bold*")))`,
		},
		{
			name: "static select",
			payload: `{"blocks": [{
				"type": "section",
				"text": {"type": "mrkdwn", "text": "Pick an item from the dropdown list"},
				"accessory": {
					"type": "static_select",
					"placeholder": {"type": "plain_text", "text": "Select an item", "emoji": true},
					"options": [{"text": {"type": "plain_text", "text": "*this is plain_text text*", "emoji": true}, "value": "value-0"}],
					"action_id": "static_select-action"
				}
			}]}`,
			want: `blockkit.NewMessage().Blocks(blockkit.NewSection().Text(blockkit.MarkdownText("Pick an item from the dropdown list")).Accessory(blockkit.NewStaticSelect().Placeholder(blockkit.PlainText("Select an item").Emoji(true)).Options(blockkit.NewOption().Text(blockkit.PlainText("*this is plain_text text*").Emoji(true)).Value("value-0")).ActionID("static_select-action")))`,
		},
		{
			name: "option groups",
			payload: `{"type": "static_select", "option_groups": [
				{"label": {"type": "plain_text", "text": "Group 1"}, "options": [{"text": {"type": "plain_text", "text": "One"}, "value": "1"}]}
			], "initial_option": {"label": {"type": "plain_text", "text": "Group 1"}, "options": [{"text": {"type": "plain_text", "text": "One"}, "value": "1"}]}}`,
			want: `blockkit.NewStaticSelect().OptionGroups(blockkit.NewOptionGroup().Label(blockkit.PlainText("Group 1")).Options(blockkit.NewOption().Text(blockkit.PlainText("One")).Value("1"))).InitialOption(blockkit.NewOptionGroup().Label(blockkit.PlainText("Group 1")).Options(blockkit.NewOption().Text(blockkit.PlainText("One")).Value("1")))`,
		},
		{
			name:    "image accessory is an element",
			payload: `{"type": "section", "text": {"type": "mrkdwn", "text": "hi"}, "accessory": {"type": "image", "image_url": "https://example.com/a.png", "alt_text": "a"}}`,
			want:    `blockkit.NewSection().Text(blockkit.MarkdownText("hi")).Accessory(blockkit.NewImageEl().ImageURL("https://example.com/a.png").AltText("a"))`,
		},
		{
			name:    "image in blocks is a block",
			payload: `{"blocks": [{"type": "image", "image_url": "https://example.com/a.png", "alt_text": "a", "block_id": "img"}]}`,
			want:    `blockkit.NewMessage().Blocks(blockkit.NewImage().ImageURL("https://example.com/a.png").AltText("a").BlockID("img"))`,
		},
		{
			name:    "context elements",
			payload: `{"type": "context", "elements": [{"type": "image", "image_url": "u", "alt_text": "a"}, {"type": "mrkdwn", "text": "*hi*"}]}`,
			want:    `blockkit.NewContext().Elements(blockkit.NewImageEl().ImageURL("u").AltText("a"), blockkit.MarkdownText("*hi*"))`,
		},
		{
			name: "confirm and filter",
			payload: `{"type": "conversations_select", "filter": {"include": ["public", "mpim"], "exclude_bot_users": true}, "confirm": {
				"title": {"type": "plain_text", "text": "Sure?"},
				"text": {"type": "plain_text", "text": "Really?"},
				"confirm": {"type": "plain_text", "text": "Yes"},
				"deny": {"type": "plain_text", "text": "No"}
			}}`,
			want: `blockkit.NewConversationsSelect().Filter(blockkit.NewConversationFilter().Include("public", "mpim").ExcludeBotUsers(true)).Confirm(blockkit.NewConfirm().Title(blockkit.PlainText("Sure?")).Text(blockkit.PlainText("Really?")).Confirm(blockkit.PlainText("Yes")).Deny(blockkit.PlainText("No")))`,
		},
		{
			name:    "numbers and initialisms",
			payload: `{"type": "file_input", "action_id": "upload", "filetypes": ["jpg"], "max_files": 5}`,
			want:    `blockkit.NewFileInput().ActionID("upload").Filetypes("jpg").MaxFiles(5)`,
		},
		{
			name:    "modal",
			payload: `{"type": "modal", "title": {"type": "plain_text", "text": "My App"}, "blocks": [{"type": "divider"}], "private_metadata": "{\"a\":1}"}`,
			want:    `blockkit.NewModal().Title(blockkit.PlainText("My App")).Blocks(blockkit.NewDivider()).PrivateMetadata("{\"a\":1}")`,
		},
		{
			name:    "rich text",
			payload: `{"type": "rich_text", "elements": [{"type": "rich_text_section", "elements": [{"type": "text", "text": "hi", "style": {"bold": true}}, {"type": "user", "user_id": "U1"}]}]}`,
			want:    `blockkit.NewRichText().Elements(blockkit.NewRichTextSection().Elements(blockkit.NewRichTextEl().Text("hi").Style(blockkit.NewRichStyle().Bold(true)), blockkit.NewRichUserEl().UserID("U1")))`,
		},
		{
			name:    "workflow button",
			payload: `{"type": "workflow_button", "text": {"type": "plain_text", "text": "Run"}, "workflow": {"trigger": {"url": "https://slack.com/shortcuts/Ft1/abc", "customizable_input_parameters": [{"name": "a", "value": "b"}]}}}`,
			want:    `blockkit.NewWorkflowButton().Text(blockkit.PlainText("Run")).Workflow(blockkit.NewWorkflow().Trigger(blockkit.NewTrigger().URL("https://slack.com/shortcuts/Ft1/abc").CustomizableInputParameters(blockkit.NewInputParameter().Name("a").Value("b"))))`,
		},
		{
			name:    "escapes strings",
			payload: `{"blocks": [{"type": "section", "text": {"type": "mrkdwn", "text": "line \"one\"\nline\ttwo"}}]}`,
			want:    `blockkit.NewMessage().Blocks(blockkit.NewSection().Text(blockkit.MarkdownText("line \"one\"\nline\ttwo")))`,
		},
		{
			name:    "skips nulls",
			payload: `{"type": "actions", "elements": [{"type": "button", "text": {"type": "plain_text", "text": "Go"}, "url": null}], "block_id": "a"}`,
			want:    `blockkit.NewActions().Elements(blockkit.NewButton().Text(blockkit.PlainText("Go"))).BlockID("a")`,
		},
		{
			name:    "skips empty lists",
			payload: `{"type": "checkboxes", "options": [], "action_id": "c"}`,
			want:    `blockkit.NewCheckboxes().ActionID("c")`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := codegen.Generate(parse(t, tt.payload))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		msg     string
	}{
		{"unknown type", `{"type": "carousel"}`, `"carousel"`},
		{"typeless root", `{"title": "x"}`, `can't generate component of type ""`},
		{"unknown key", `{"type": "divider", "color": "red"}`, `Divider has no setter for "color"`},
		{"non setter method", `{"type": "divider", "build": true}`, `Divider has no setter for "build"`},
		{"list for scalar setter", `{"type": "button", "text": [{"type": "plain_text", "text": "x"}]}`, "Button.Text does not take a list"},
		{"nested list", `{"type": "actions", "elements": [[{"type": "divider"}]]}`, `nested list under "elements"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := codegen.Generate(parse(t, tt.payload))
			require.ErrorIs(t, err, codegen.ErrCodeGeneration)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("unknown type wraps the registry error", func(t *testing.T) {
		t.Parallel()
		_, err := codegen.Generate(parse(t, `{"type": "carousel"}`))
		assert.ErrorIs(t, err, blockkit.ErrUnknownType)
	})

	t.Run("nil payload", func(t *testing.T) {
		t.Parallel()
		_, err := codegen.Generate(nil)
		assert.ErrorIs(t, err, codegen.ErrCodeGeneration)
	})
}

func TestGenerate_FromBuiltComponents(t *testing.T) {
	t.Parallel()

	msg := blockkit.NewMessage().Blocks(
		blockkit.NewHeader().Text("Release"),
		blockkit.NewActions().Elements(
			blockkit.NewButton().Text("Ship").ActionID("ship").Style(blockkit.StylePrimary),
		),
	)
	built, err := msg.Build()
	require.NoError(t, err)
	data, err := json.Marshal(built)
	require.NoError(t, err)

	got, err := codegen.Generate(parse(t, string(data)))
	require.NoError(t, err)

	want := `blockkit.NewMessage().Blocks(blockkit.NewHeader().Text(blockkit.PlainText("Release")), ` +
		`blockkit.NewActions().Elements(blockkit.NewButton().Text(blockkit.PlainText("Ship")).ActionID("ship").Style("primary")))`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFile(t *testing.T) {
	t.Parallel()

	p := parse(t, `{"blocks": [{"type": "section", "text": {"type": "mrkdwn", "text": "*hi*"}}, {"type": "divider"}]}`)

	t.Run("emits a formatted file", func(t *testing.T) {
		t.Parallel()
		src, err := codegen.GenerateFile(p, "views", "Welcome")
		require.NoError(t, err)

		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, "views.go", src, 0)
		require.NoError(t, err)
		assert.Equal(t, "views", file.Name.Name)
		require.Len(t, file.Imports, 1)
		assert.Equal(t, `"github.com/imryche/blockkit-sub000"`, file.Imports[0].Path.Value)

		var names []string
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}
			for _, spec := range gen.Specs {
				for _, name := range spec.(*ast.ValueSpec).Names {
					names = append(names, name.Name)
				}
			}
		}
		assert.Equal(t, []string{"Welcome"}, names)
		assert.Contains(t, string(src), "blockkit.NewMessage().\n")
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		src, err := codegen.GenerateFile(p, "", "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), "package main\n"))
		assert.Contains(t, string(src), "var Payload = ")
	})

	t.Run("custom qualifier", func(t *testing.T) {
		t.Parallel()
		src, err := codegen.New(codegen.WithQualifier("bk")).GenerateFile(p, "views", "Welcome")
		require.NoError(t, err)
		assert.Contains(t, string(src), `import bk "github.com/imryche/blockkit-sub000"`)
		assert.Contains(t, string(src), "bk.NewMessage()")
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		t.Parallel()
		_, err := codegen.GenerateFile(p, "my-views", "Welcome")
		assert.ErrorIs(t, err, codegen.ErrCodeGeneration)
	})
}

func TestSetterName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"action_id":                        "ActionID",
		"response_url_enabled":             "ResponseURLEnabled",
		"thread_ts":                        "ThreadTS",
		"image_url":                        "ImageURL",
		"is_decimal_allowed":               "IsDecimalAllowed",
		"usergroup_id":                     "UsergroupID",
		"mrkdwn":                           "Mrkdwn",
		"exclude_external_shared_channels": "ExcludeExternalSharedChannels",
	}
	for key, want := range tests {
		assert.Equal(t, want, codegen.SetterName(key), key)
	}
}

func TestGenerate_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := blockkit.NewRegistry()
	require.NoError(t, reg.Register(blockkit.Entry{
		Type: "divider",
		Name: "Divider",
		New:  func() blockkit.Buildable { return blockkit.NewDivider() },
	}))
	gen := codegen.New(codegen.WithRegistry(reg), codegen.WithQualifier(""))

	got, err := gen.Generate(parse(t, `{"type": "divider", "block_id": "d"}`))
	require.NoError(t, err)
	assert.Equal(t, `NewDivider().BlockID("d")`, got)

	_, err = gen.Generate(parse(t, `{"type": "header"}`))
	assert.ErrorIs(t, err, blockkit.ErrUnknownType)
}

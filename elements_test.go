package blockkit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imryche/blockkit-sub000"
)

func option(text, value string) *blockkit.Option {
	return blockkit.NewOption().Text(text).Value(value)
}

func confirmDialog() *blockkit.Confirm {
	return blockkit.NewConfirm().Title("Sure?").Text("Really?").Confirm("Yes").Deny("No")
}

const confirmJSON = `{
	"title": {"type": "plain_text", "text": "Sure?"},
	"text": {"type": "plain_text", "text": "Really?"},
	"confirm": {"type": "plain_text", "text": "Yes"},
	"deny": {"type": "plain_text", "text": "No"}
}`

func TestButton(t *testing.T) {
	t.Parallel()

	button := blockkit.NewButton().
		Text("Click me").
		ActionID("click").
		URL("https://example.com").
		Value("1").
		Style(blockkit.StylePrimary).
		Confirm(confirmDialog()).
		AccessibilityLabel("Click to continue")

	assert.JSONEq(t, `{
		"type": "button",
		"text": {"type": "plain_text", "text": "Click me"},
		"action_id": "click",
		"url": "https://example.com",
		"value": "1",
		"style": "primary",
		"confirm": `+confirmJSON+`,
		"accessibility_label": "Click to continue"
	}`, buildJSON(t, button))

	t.Run("text is plain even with markers", func(t *testing.T) {
		t.Parallel()
		assert.JSONEq(t,
			`{"type": "button", "text": {"type": "plain_text", "text": "*Go*"}}`,
			buildJSON(t, blockkit.NewButton().Text("*Go*")),
		)
	})

	t.Run("text length is bounded", func(t *testing.T) {
		t.Parallel()
		long := make([]byte, 76)
		for i := range long {
			long[i] = 'a'
		}
		_, err := blockkit.NewButton().Text(string(long)).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Length must be between 1 and 75")
	})
}

func TestCheckboxes(t *testing.T) {
	t.Parallel()

	t.Run("builds", func(t *testing.T) {
		t.Parallel()
		checkboxes := blockkit.NewCheckboxes().
			ActionID("choices").
			Options(option("One", "1"), option("Two", "2")).
			InitialOptions(option("Two", "2")).
			FocusOnLoad(true)

		assert.JSONEq(t, `{
			"type": "checkboxes",
			"action_id": "choices",
			"options": [
				{"text": {"type": "plain_text", "text": "One"}, "value": "1"},
				{"text": {"type": "plain_text", "text": "Two"}, "value": "2"}
			],
			"initial_options": [
				{"text": {"type": "plain_text", "text": "Two"}, "value": "2"}
			],
			"focus_on_load": true
		}`, buildJSON(t, checkboxes))
	})

	t.Run("initial options must be offered", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewCheckboxes().
			Options(option("One", "1")).
			InitialOptions(option("Three", "3")).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'initial_options' has items that aren't present in the 'options'")
	})

	t.Run("at most ten options", func(t *testing.T) {
		t.Parallel()
		c := blockkit.NewCheckboxes()
		for i := 0; i < 11; i++ {
			c.AddOption(option("x", "x"))
		}
		_, err := c.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Length must be between 1 and 10 (got 11)")
	})
}

func TestDatePicker(t *testing.T) {
	t.Parallel()

	picker := blockkit.NewDatePicker().
		ActionID("date").
		InitialDate("2024-03-05").
		Confirm(confirmDialog()).
		Placeholder("Pick a date")

	assert.JSONEq(t, `{
		"type": "datepicker",
		"action_id": "date",
		"initial_date": "2024-03-05",
		"confirm": `+confirmJSON+`,
		"placeholder": {"type": "plain_text", "text": "Pick a date"}
	}`, buildJSON(t, picker))

	_, err := blockkit.NewDatePicker().InitialDate("05/03/2024").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected ISO date format 'YYYY-MM-DD', got '05/03/2024'")
}

func TestDatetimePicker(t *testing.T) {
	t.Parallel()

	picker := blockkit.NewDatetimePicker().ActionID("when").InitialDateTime(1628633820)
	assert.JSONEq(t, `{
		"type": "datetimepicker",
		"action_id": "when",
		"initial_date_time": 1628633820
	}`, buildJSON(t, picker))

	_, err := blockkit.NewDatetimePicker().InitialDateTime(1.5).Build()
	assert.Error(t, err)
}

func TestFileInput(t *testing.T) {
	t.Parallel()

	input := blockkit.NewFileInput().ActionID("upload").Filetypes("jpg", "png").MaxFiles(5)
	assert.JSONEq(t, `{
		"type": "file_input",
		"action_id": "upload",
		"filetypes": ["jpg", "png"],
		"max_files": 5
	}`, buildJSON(t, input))

	_, err := blockkit.NewFileInput().MaxFiles(11).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Value must be between 1 and 10 (got 11)")
}

func TestImageEl(t *testing.T) {
	t.Parallel()

	image := blockkit.NewImageEl().AltText("A cat").ImageURL("https://example.com/cat.png")
	assert.JSONEq(t, `{
		"type": "image",
		"alt_text": "A cat",
		"image_url": "https://example.com/cat.png"
	}`, buildJSON(t, image))

	_, err := blockkit.NewImageEl().AltText("A cat").Build()
	assert.ErrorIs(t, err, blockkit.ErrComponentValidation)
}

func TestStaticSelect(t *testing.T) {
	t.Parallel()

	t.Run("builds options", func(t *testing.T) {
		t.Parallel()
		sel := blockkit.NewStaticSelect().
			ActionID("pick").
			Options(option("One", "1"), option("Two", "2")).
			InitialOption(option("One", "1")).
			Placeholder("Choose")

		assert.JSONEq(t, `{
			"type": "static_select",
			"action_id": "pick",
			"options": [
				{"text": {"type": "plain_text", "text": "One"}, "value": "1"},
				{"text": {"type": "plain_text", "text": "Two"}, "value": "2"}
			],
			"initial_option": {"text": {"type": "plain_text", "text": "One"}, "value": "1"},
			"placeholder": {"type": "plain_text", "text": "Choose"}
		}`, buildJSON(t, sel))
	})

	t.Run("builds option groups", func(t *testing.T) {
		t.Parallel()
		sel := blockkit.NewStaticSelect().
			AddOptionGroup(blockkit.NewOptionGroup().Label("Group").Options(option("One", "1")))

		assert.JSONEq(t, `{
			"type": "static_select",
			"option_groups": [{
				"label": {"type": "plain_text", "text": "Group"},
				"options": [{"text": {"type": "plain_text", "text": "One"}, "value": "1"}]
			}]
		}`, buildJSON(t, sel))
	})

	t.Run("options and groups are exclusive", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewStaticSelect().
			Options(option("One", "1")).
			OptionGroups(blockkit.NewOptionGroup().Label("Group").Options(option("Two", "2"))).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Only one of the following fields is required 'options', 'option_groups'")
	})

	t.Run("initial option must be offered", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewStaticSelect().
			Options(option("One", "1")).
			InitialOption(option("Two", "2")).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'initial_option' has items that aren't present in the 'options'")
	})
}

func TestMultiStaticSelect(t *testing.T) {
	t.Parallel()

	sel := blockkit.NewMultiStaticSelect().
		ActionID("pick").
		Options(option("One", "1"), option("Two", "2")).
		InitialOptions(option("One", "1"), option("Two", "2")).
		MaxSelectedItems(2)

	assert.JSONEq(t, `{
		"type": "multi_static_select",
		"action_id": "pick",
		"options": [
			{"text": {"type": "plain_text", "text": "One"}, "value": "1"},
			{"text": {"type": "plain_text", "text": "Two"}, "value": "2"}
		],
		"initial_options": [
			{"text": {"type": "plain_text", "text": "One"}, "value": "1"},
			{"text": {"type": "plain_text", "text": "Two"}, "value": "2"}
		],
		"max_selected_items": 2
	}`, buildJSON(t, sel))

	_, err := blockkit.NewMultiStaticSelect().Options(option("One", "1")).MaxSelectedItems(0).Build()
	assert.Error(t, err)
}

func TestConversationsSelect(t *testing.T) {
	t.Parallel()

	sel := blockkit.NewConversationsSelect().
		ActionID("conv").
		InitialConversation("C123").
		DefaultToCurrentConversation(true).
		ResponseURLEnabled(true).
		Filter(blockkit.NewConversationFilter().Include("private"))

	assert.JSONEq(t, `{
		"type": "conversations_select",
		"action_id": "conv",
		"initial_conversation": "C123",
		"default_to_current_conversation": true,
		"response_url_enabled": true,
		"filter": {"include": ["private"]}
	}`, buildJSON(t, sel))
}

func TestMultiUsersSelect(t *testing.T) {
	t.Parallel()

	sel := blockkit.NewMultiUsersSelect().InitialUsers("U1").AddInitialUser("U2")
	assert.JSONEq(t, `{"type": "multi_users_select", "initial_users": ["U1", "U2"]}`, buildJSON(t, sel))
}

func TestNumberInput(t *testing.T) {
	t.Parallel()

	t.Run("emits numbers as strings", func(t *testing.T) {
		t.Parallel()
		input := blockkit.NewNumberInput().
			IsDecimalAllowed(true).
			ActionID("amount").
			InitialValue(7.5).
			MinValue("1").
			MaxValue(10)

		assert.JSONEq(t, `{
			"type": "number_input",
			"is_decimal_allowed": true,
			"action_id": "amount",
			"initial_value": "7.5",
			"min_value": "1",
			"max_value": "10"
		}`, buildJSON(t, input))
	})

	t.Run("builds twice", func(t *testing.T) {
		t.Parallel()
		input := blockkit.NewNumberInput().IsDecimalAllowed(false).InitialValue("5").MaxValue(10)
		first := buildJSON(t, input)
		assert.Equal(t, first, buildJSON(t, input))
	})

	t.Run("initial value within range", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewNumberInput().IsDecimalAllowed(false).InitialValue(11).MaxValue(10).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'initial_value' value must be less than or equal to '10', got '11'")

		_, err = blockkit.NewNumberInput().IsDecimalAllowed(false).InitialValue("0").MinValue(1).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'initial_value' value must be greater than or equal to '1', got '0'")
	})

	t.Run("decimals need the flag", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewNumberInput().IsDecimalAllowed(false).InitialValue(1.5).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'initial_value' decimal values are not allowed, got '1.5'")

		_, err = blockkit.NewNumberInput().IsDecimalAllowed(false).MinValue(3.0).Build()
		assert.NoError(t, err)
	})

	t.Run("rejects non numeric values", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewNumberInput().IsDecimalAllowed(true).InitialValue("abc").Build()
		require.ErrorIs(t, err, blockkit.ErrFieldValidation)
		assert.Equal(t, "Field 'initial_value': Expected a number, got 'abc'", err.Error())

		_, err = blockkit.NewNumberInput().IsDecimalAllowed(true).InitialValue(5).MinValue("low").Build()
		require.Error(t, err)
		assert.Equal(t, "Field 'min_value': Expected a number, got 'low'", err.Error())

		_, err = blockkit.NewNumberInput().IsDecimalAllowed(true).MaxValue(true).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Field 'max_value': Expected a number, got 'bool'")
	})

	t.Run("decimal flag is required", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewNumberInput().Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Field 'is_decimal_allowed': Value is required")
	})
}

func TestOverflow(t *testing.T) {
	t.Parallel()

	o := blockkit.NewOverflow()
	for i := 0; i < 6; i++ {
		o.AddOption(option("x", "x"))
	}
	_, err := o.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Length must be between 1 and 5 (got 6)")
}

func TestPlainTextInput(t *testing.T) {
	t.Parallel()

	input := blockkit.NewPlainTextInput().
		ActionID("comment").
		InitialValue("hello").
		Multiline(true).
		MinLength(1).
		MaxLength(100).
		DispatchActionConfig(blockkit.NewDispatchActionConfig().TriggerActionsOn("on_enter_pressed"))

	assert.JSONEq(t, `{
		"type": "plain_text_input",
		"action_id": "comment",
		"initial_value": "hello",
		"multiline": true,
		"min_length": 1,
		"max_length": 100,
		"dispatch_action_config": {"trigger_actions_on": ["on_enter_pressed"]}
	}`, buildJSON(t, input))

	_, err := blockkit.NewPlainTextInput().InitialValue("hello").MaxLength(3).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'initial_value' length must be less than or equal to '3', got '5'")
}

func TestRadioButtons(t *testing.T) {
	t.Parallel()

	radio := blockkit.NewRadioButtons().
		Options(option("One", "1"), option("Two", "2")).
		InitialOption(option("Two", "2"))

	assert.JSONEq(t, `{
		"type": "radio_buttons",
		"options": [
			{"text": {"type": "plain_text", "text": "One"}, "value": "1"},
			{"text": {"type": "plain_text", "text": "Two"}, "value": "2"}
		],
		"initial_option": {"text": {"type": "plain_text", "text": "Two"}, "value": "2"}
	}`, buildJSON(t, radio))
}

func TestTimePicker(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("timezone database unavailable")
	}

	picker := blockkit.NewTimePicker().ActionID("time").InitialTime("09:30").Timezone(loc)
	assert.JSONEq(t, `{
		"type": "timepicker",
		"action_id": "time",
		"initial_time": "09:30",
		"timezone": "America/Los_Angeles"
	}`, buildJSON(t, picker))

	_, err = blockkit.NewTimePicker().InitialTime("9am").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected time format 'HH:MM', got '9am'")
}

func TestWorkflowButton(t *testing.T) {
	t.Parallel()

	button := blockkit.NewWorkflowButton().
		Text("Run").
		Workflow(blockkit.NewWorkflow().Trigger(blockkit.NewTrigger().URL("https://slack.com/shortcuts/Ft1/abc"))).
		ActionID("run").
		Style(blockkit.StylePrimary)

	assert.JSONEq(t, `{
		"type": "workflow_button",
		"text": {"type": "plain_text", "text": "Run"},
		"workflow": {"trigger": {"url": "https://slack.com/shortcuts/Ft1/abc"}},
		"action_id": "run",
		"style": "primary"
	}`, buildJSON(t, button))
}

func TestInputElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		element blockkit.Buildable
		want    string
	}{
		{
			"email",
			blockkit.NewEmailInput().ActionID("email").InitialValue("alice@example.com"),
			`{"type": "email_text_input", "action_id": "email", "initial_value": "alice@example.com"}`,
		},
		{
			"url",
			blockkit.NewURLInput().ActionID("url").InitialValue("https://example.com"),
			`{"type": "url_text_input", "action_id": "url", "initial_value": "https://example.com"}`,
		},
		{
			"external select",
			blockkit.NewExternalSelect().ActionID("ext").MinQueryLength(3),
			`{"type": "external_select", "action_id": "ext", "min_query_length": 3}`,
		},
		{
			"channels select",
			blockkit.NewChannelsSelect().InitialChannel("C1").ResponseURLEnabled(true),
			`{"type": "channels_select", "initial_channel": "C1", "response_url_enabled": true}`,
		},
		{
			"multi channels select",
			blockkit.NewMultiChannelsSelect().InitialChannels("C1", "C2"),
			`{"type": "multi_channels_select", "initial_channels": ["C1", "C2"]}`,
		},
		{
			"users select",
			blockkit.NewUsersSelect().InitialUser("U1"),
			`{"type": "users_select", "initial_user": "U1"}`,
		},
		{
			"multi conversations select",
			blockkit.NewMultiConversationsSelect().InitialConversations("C1").MaxSelectedItems(3),
			`{"type": "multi_conversations_select", "initial_conversations": ["C1"], "max_selected_items": 3}`,
		},
		{
			"multi external select",
			blockkit.NewMultiExternalSelect().InitialOptions(option("One", "1")),
			`{"type": "multi_external_select", "initial_options": [{"text": {"type": "plain_text", "text": "One"}, "value": "1"}]}`,
		},
		{
			"rich text input",
			blockkit.NewRichTextInput().ActionID("rich").InitialValue(
				blockkit.NewRichText().Elements(
					blockkit.NewRichTextSection().Elements(blockkit.NewRichTextEl().Text("hi")),
				),
			),
			`{"type": "rich_text_input", "action_id": "rich", "initial_value": {
				"type": "rich_text",
				"elements": [{"type": "rich_text_section", "elements": [{"type": "text", "text": "hi"}]}]
			}}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.JSONEq(t, tt.want, buildJSON(t, tt.element))
		})
	}
}

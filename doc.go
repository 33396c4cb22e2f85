// Package blockkit builds and validates Slack Block Kit payloads.
//
// Every surface, block, element and composition object is a Go type embedding
// a shared component core. Constructors declare the fields of a type in output
// order together with the rules each field must satisfy, and fluent setters
// assign them. Build validates the whole tree and lowers it into an
// order-preserving Payload that marshals to the JSON Slack expects.
//
// # Architecture
//
// The package is organised by catalog family:
//   - component.go – field table, Validate, Build, Fingerprint, Equal, Hash
//   - text.go      – Text objects and markdown detection
//   - objects.go   – composition objects (Confirm, Option, OptionGroup, ...)
//   - elements.go  – interactive elements (Button, StaticSelect, ...)
//   - rich.go      – rich text elements
//   - blocks.go    – layout blocks
//   - surfaces.go  – Message, Modal and Home
//   - registry.go  – lookup of constructors by type discriminant or name
//
// Field and component rules live in pkg/validator and are plain values, so a
// type's constraints read as a list next to its field declarations.
//
// # Usage
//
//	msg := blockkit.NewMessage().Blocks(
//	    blockkit.NewSection().
//	        Text("*Deploy* finished").
//	        Accessory(blockkit.NewButton().Text("Open").URL("https://example.com")),
//	)
//
//	payload, err := msg.Build()
//	if err != nil {
//	    return err
//	}
//	data, err := json.Marshal(payload)
//
// Strings passed where a text object is expected are wrapped automatically.
// Titles, labels and button captions become plain_text; section text, option
// text and context elements become mrkdwn when they carry formatting markers
// (see IsMarkdown) and plain_text otherwise. Use PlainText or MarkdownText to
// pin the variant.
//
// # Dates and Times
//
// Fields declare what kind of moment they hold. A time.Time assigned to a date
// field is emitted as "2006-01-02", to a time field as "15:04", to a datetime
// field as a Unix timestamp. A *time.Location assigned to a timezone field is
// emitted by name. The normalized form replaces the stored value once a build
// succeeds.
//
// # Error Handling
//
// Validation stops at the first violation. Field failures are
// *FieldValidationError values and cross-field failures are
// *ComponentValidationError values; both match ErrFieldValidation and
// ErrComponentValidation through errors.Is:
//
//	if _, err := modal.Build(); err != nil {
//	    var fieldErr *blockkit.FieldValidationError
//	    if errors.As(err, &fieldErr) {
//	        log.Printf("%s: %s", fieldErr.Field, fieldErr.Message)
//	    }
//	}
//
// Setting a field a type never declared is a programming error and panics.
//
// # Concurrency
//
// Components are mutable builders and are not safe for concurrent mutation.
// The registry returned by DefaultRegistry is safe for concurrent use.
package blockkit

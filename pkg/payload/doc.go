// Package payload decodes raw Block Kit payloads written as JSON or YAML into
// an order-preserving tree.
//
// Objects decode to *blockkit.Payload so the key order of the source survives,
// arrays to []any, numbers to json.Number and the remaining scalars to string,
// bool or nil. The same tree shape is produced by both formats, which lets the
// code generator and the preview helper treat them alike.
//
// # Usage
//
//	p, err := payload.Decode(file, payload.FormatFromPath(name))
//	if err != nil {
//		if errors.Is(err, payload.ErrInvalidPayload) {
//			// malformed input or a root that is not an object
//		}
//		return err
//	}
//
// # Error Handling
//
//   - ErrUnsupportedFormat – the format is neither JSON nor YAML.
//   - ErrInvalidPayload    – the input could not be decoded or its root is not an object.
package payload

package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil err yields an empty Attr, which
// handlers skip.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records a component name such as "Section" under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// BlockType records a wire type discriminant under "block_type".
func BlockType(typ string) slog.Attr {
	return slog.String("block_type", typ)
}

// Field records a field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Source records an input path under "source". Standard input is "-".
func Source(path string) slog.Attr {
	if path == "" {
		path = "-"
	}
	return slog.String("source", path)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

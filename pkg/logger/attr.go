package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Window records a verification window offset under the key "window".
func Window(w int) slog.Attr {
	return slog.Int("window", w)
}

// Algorithm records the HMAC algorithm under the key "algorithm".
func Algorithm(name string) slog.Attr {
	return slog.String("algorithm", name)
}

// Issuer records the account issuer under the key "issuer".
// If issuer is empty, it returns an empty Attr.
func Issuer(issuer string) slog.Attr {
	if issuer == "" {
		return slog.Attr{}
	}
	return slog.String("issuer", issuer)
}

// Account records the account name under the key "account".
// If name is empty, it returns an empty Attr.
func Account(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("account", name)
}

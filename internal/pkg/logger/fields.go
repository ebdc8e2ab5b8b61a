package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Field is a structured log field; call sites never import zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Email logs an address with all but the first two characters of the local part masked.
// Values that are not addresses (opaque token subjects) are logged as they are.
func Email(key, email string) Field {
	return zap.String(key, maskEmail(email))
}

func maskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return email
	}
	if len(local) > 2 {
		local = local[:2] + strings.Repeat("*", len(local)-2)
	}
	return local + "@" + domain
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// MsgTokenMissing is shown when an authenticated call is attempted without a token
	MsgTokenMissing = "Token JWT ausente. Faça o login novamente."
	// MsgUnreachable is shown for every transport failure, whatever the cause
	MsgUnreachable = "Erro de rede ao comunicar com o servidor Kaviar API."
	// MsgUnknown is the last resort message when nothing better is known
	MsgUnknown = "Erro desconhecido."
)

// ErrTokenMissing is returned before any I/O when the session carries no bearer token
var ErrTokenMissing = errors.New(MsgTokenMissing)

// DetailKind tags the shape of the "detail" field of an error body
type DetailKind int

const (
	// DetailAbsent means the body had no usable detail
	DetailAbsent DetailKind = iota
	// DetailSimple is a plain string detail
	DetailSimple
	// DetailStructured is an object or array detail (validation errors)
	DetailStructured
)

// Detail is the normalized "detail" of a Kaviar API error response
type Detail struct {
	Kind    DetailKind
	Message string
	Fields  json.RawMessage
}

// APIError is a non-2xx response of the Kaviar API
type APIError struct {
	StatusCode int
	Detail     Detail
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// UnreachableError is a request that never got a response
type UnreachableError struct {
	Op  string
	Err error
}

func (e *UnreachableError) Error() string {
	return MsgUnreachable
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// ParseDetail extracts the "detail" field of an error body.
// Strings are kept verbatim, objects and arrays are re-serialized as indented JSON.
func ParseDetail(body []byte) Detail {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return Detail{Kind: DetailAbsent}
	}

	raw := bytes.TrimSpace(envelope.Detail)
	switch raw[0] {
	case '"':
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil || msg == "" {
			return Detail{Kind: DetailAbsent}
		}
		return Detail{Kind: DetailSimple, Message: msg}
	case '{', '[':
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, raw, "", "  "); err != nil {
			return Detail{Kind: DetailAbsent}
		}
		return Detail{Kind: DetailStructured, Message: pretty.String(), Fields: json.RawMessage(raw)}
	default:
		return Detail{Kind: DetailAbsent}
	}
}

// NormalizeError builds the APIError of a non-2xx response, using fallback when the
// body carries no usable detail
func NormalizeError(statusCode int, body []byte, fallback string) *APIError {
	detail := ParseDetail(body)
	msg := detail.Message
	if detail.Kind == DetailAbsent {
		msg = fallback
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP error: %d", statusCode)
	}
	return &APIError{StatusCode: statusCode, Detail: detail, Message: msg}
}

// UserMessage resolves the text shown to the admin for err
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	var netErr *UnreachableError
	switch {
	case errors.Is(err, ErrTokenMissing):
		return MsgTokenMissing
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &netErr):
		return MsgUnreachable
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnknown
}

package models

// ListStatus is the render branch of a list page
type ListStatus string

const (
	ListLoading ListStatus = "loading"
	ListFailed  ListStatus = "failed"
	ListReady   ListStatus = "ready"
)

// Flash is a one-shot message shown above a form or list
type Flash struct {
	Type    string // "success" or "error"
	Message string
}

// SuccessFlash builds a success message
func SuccessFlash(msg string) *Flash {
	return &Flash{Type: "success", Message: msg}
}

// ErrorFlash builds an error message
func ErrorFlash(msg string) *Flash {
	return &Flash{Type: "error", Message: msg}
}

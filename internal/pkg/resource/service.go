package resource

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strings"

	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

// Doer performs one API request; *kaviarhttp.Client satisfies it
type Doer interface {
	Do(ctx context.Context, r kaviarhttp.Request, result interface{}) error
}

// Identifiable is any record addressed by a numeric id
type Identifiable interface {
	GetID() int64
}

// Messages are the per-operation fallbacks used when the server gives no detail
type Messages struct {
	Create string
	List   string
	Update string
	Delete string
}

// Service is the typed CRUD client of one API collection
type Service[R Identifiable, P any] struct {
	client Doer
	path   string
	msgs   Messages
}

// NewService creates a service for the collection at path (e.g. "/combos/")
func NewService[R Identifiable, P any](client Doer, path string, msgs Messages) *Service[R, P] {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return &Service[R, P]{client: client, path: path, msgs: msgs}
}

// Path returns the collection path
func (s *Service[R, P]) Path() string {
	return s.path
}

func (s *Service[R, P]) itemPath(id int64) string {
	return fmt.Sprintf("%s%d", s.path, id)
}

// Create posts a new record and returns the server's echo of it
func (s *Service[R, P]) Create(ctx context.Context, sess *session.Session, payload P) (R, error) {
	var created R
	err := s.do(ctx, sess, nethttp.MethodPost, s.path, payload, s.msgs.Create, &created)
	return created, err
}

// List fetches every record of the collection
func (s *Service[R, P]) List(ctx context.Context, sess *session.Session) ([]R, error) {
	var items []R
	if err := s.do(ctx, sess, nethttp.MethodGet, s.path, nil, s.msgs.List, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []R{}
	}
	return items, nil
}

// Update replaces the record id with payload
func (s *Service[R, P]) Update(ctx context.Context, sess *session.Session, id int64, payload P) (R, error) {
	var updated R
	err := s.do(ctx, sess, nethttp.MethodPut, s.itemPath(id), payload, s.msgs.Update, &updated)
	return updated, err
}

// Delete removes the record id
func (s *Service[R, P]) Delete(ctx context.Context, sess *session.Session, id int64) error {
	return s.do(ctx, sess, nethttp.MethodDelete, s.itemPath(id), nil, s.msgs.Delete, nil)
}

// Patch calls the action sub-resource of id (e.g. ".../7/aprovar") with an empty body
func (s *Service[R, P]) Patch(ctx context.Context, sess *session.Session, id int64, action, fallback string) (R, error) {
	var patched R
	endpoint := s.itemPath(id) + "/" + strings.TrimPrefix(action, "/")
	err := s.do(ctx, sess, nethttp.MethodPatch, endpoint, nil, fallback, &patched)
	return patched, err
}

func (s *Service[R, P]) do(ctx context.Context, sess *session.Session, method, endpoint string, body interface{}, fallback string, result interface{}) error {
	token, err := sess.BearerToken()
	if err != nil {
		return err
	}

	return s.client.Do(ctx, kaviarhttp.Request{
		Method:   method,
		Endpoint: endpoint,
		Token:    token,
		Body:     body,
		Fallback: fallback,
	}, result)
}

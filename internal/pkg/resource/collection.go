package resource

import "github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"

// Collection is the held client copy of a list, patched after mutations
// instead of being re-fetched
type Collection[R Identifiable] struct {
	Items  []R               `json:"items"`
	Status models.ListStatus `json:"status"`
	Error  string            `json:"error,omitempty"`
}

// NewCollection returns an empty collection in the loading state
func NewCollection[R Identifiable]() *Collection[R] {
	return &Collection[R]{Items: []R{}, Status: models.ListLoading}
}

// Replace swaps in a freshly fetched list
func (c *Collection[R]) Replace(items []R) {
	if items == nil {
		items = []R{}
	}
	c.Items = items
	c.Status = models.ListReady
	c.Error = ""
}

// Fail records a fetch failure; held items are kept
func (c *Collection[R]) Fail(message string) {
	c.Status = models.ListFailed
	c.Error = message
}

// Append adds a created record at the end
func (c *Collection[R]) Append(item R) {
	c.Items = append(c.Items, item)
	if c.Status == models.ListLoading {
		c.Status = models.ListReady
	}
}

// Update replaces the record with the same id; it reports whether one was found
func (c *Collection[R]) Update(item R) bool {
	for i := range c.Items {
		if c.Items[i].GetID() == item.GetID() {
			c.Items[i] = item
			return true
		}
	}
	return false
}

// Remove drops the record id; it reports whether one was found
func (c *Collection[R]) Remove(id int64) bool {
	for i := range c.Items {
		if c.Items[i].GetID() == id {
			c.Items = append(c.Items[:i:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the record id
func (c *Collection[R]) Find(id int64) (R, bool) {
	for _, item := range c.Items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero R
	return zero, false
}

// Len returns the number of held records
func (c *Collection[R]) Len() int {
	return len(c.Items)
}

// Empty reports a successfully fetched list with no records
func (c *Collection[R]) Empty() bool {
	return c.Status == models.ListReady && len(c.Items) == 0
}

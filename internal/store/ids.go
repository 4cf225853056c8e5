package store

import (
	"github.com/google/uuid"
)

const itemIDPrefix = "item"

// NewItemID returns item-<uuid v4>. Ids carry no ordering.
func NewItemID() string {
	return itemIDPrefix + "-" + uuid.NewString()
}

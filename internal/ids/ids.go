package ids

import "github.com/segmentio/ksuid"

// New returns a sortable unique identifier, used for object keys in storage.
func New() string {
	return ksuid.New().String()
}

package content

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a point-in-time load of every required section. Sections
// that failed to load carry their error instead of a document so that
// consumers can degrade per section rather than fail outright.
type Snapshot struct {
	docs map[string]json.RawMessage
	errs map[string]error
}

// Section returns the raw document for name, or the load error recorded
// for it.
func (sn *Snapshot) Section(name string) (json.RawMessage, error) {
	if err, ok := sn.errs[name]; ok {
		return nil, err
	}
	raw, ok := sn.docs[name]
	if !ok {
		return nil, fmt.Errorf("content: section %s not in snapshot", name)
	}
	return raw, nil
}

// Decode unmarshals the named section into v. A load failure or malformed
// document yields an error scoped to that section only.
func (sn *Snapshot) Decode(name string, v any) error {
	raw, err := sn.Section(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("content: decode %s: %w", name, err)
	}
	return nil
}

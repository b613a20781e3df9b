package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the schema as YAML for review.
func MarshalYAML(s *RecordSchema) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("schema is nil")
	}

	return yaml.Marshal(s)
}

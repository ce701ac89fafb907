package external

import (
	"encoding/json"

	"shopapi.app/pkg/errors"
)

// JSONSerializer implements CacheSerializer port with encoding/json
type JSONSerializer struct{}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Serialize(data interface{}) ([]byte, error) {
	out, err := json.Marshal(data)
	if err != nil {
		return nil, errors.NewCacheError("failed to serialize cache value", err)
	}
	return out, nil
}

func (s *JSONSerializer) Deserialize(data []byte, target interface{}) error {
	if len(data) == 0 {
		return errors.NewCacheError("cannot deserialize empty cache value", nil)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.NewCacheError("failed to deserialize cache value", err)
	}
	return nil
}

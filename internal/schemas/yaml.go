package schemas

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// yamlToJSON re-encodes a YAML document as JSON so it can be schema-checked.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

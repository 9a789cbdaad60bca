package point

import (
	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// JSON renders the Dict mapping of c as a JSON document. Keys are emitted
// in sorted order, so output is deterministic.
func JSON(c Coords, twoD bool) ([]byte, error) {
	return json.Marshal(Dict(c, twoD))
}

// YAML renders the Dict mapping of c as a YAML document.
func YAML(c Coords, twoD bool) ([]byte, error) {
	return yaml.Marshal(Dict(c, twoD))
}

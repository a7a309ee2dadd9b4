package main

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// render serializes records in the requested format. Output always ends
// with a newline.
func render(v interface{}, format OutputFormat, compact bool) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		var (
			data []byte
			err  error
		)
		if compact {
			data, err = json.Marshal(v)
		} else {
			data, err = json.MarshalIndent(v, "", "  ")
		}
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

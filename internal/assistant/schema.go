package assistant

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

func compileSchema(mode Mode) (*jsonschema.Schema, error) {
	name := fmt.Sprintf("schemas/%s.json", mode)
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("assistant: no schema for mode %q", mode)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return compiler.Compile(name)
}

// validatePayload checks body against schema and reports the failing
// locations.
func validatePayload(schema *jsonschema.Schema, body []byte) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrAssistantResponseInvalid, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrAssistantResponseInvalid, describe(err))
	}
	return nil
}

func describe(err error) string {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var issues []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "/"
			}
			issues = append(issues, location+": "+strings.TrimSpace(node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return strings.Join(issues, "; ")
}

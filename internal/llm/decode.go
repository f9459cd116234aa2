package llm

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed schemas/evaluation.json
	EvaluationSchema string

	//go:embed schemas/insight.json
	InsightSchema string
)

// ErrNoJSON is returned when a reply holds no JSON object
var ErrNoJSON = errors.New("no json object in model output")

// SchemaError lists the schema violations of a model reply
type SchemaError struct {
	Errors []string
}

func (e *SchemaError) Error() string {
	return "model output does not match schema: " + strings.Join(e.Errors, "; ")
}

// DecodeJSON extracts the JSON object from raw, repairs it if needed,
// checks it against schema and unmarshals it into out
func DecodeJSON(raw, schema string, out any) error {
	doc, err := extractObject(raw)
	if err != nil {
		return err
	}

	if !json.Valid([]byte(doc)) {
		repaired, repairErr := jsonrepair.JSONRepair(doc)
		if repairErr != nil {
			return fmt.Errorf("repair model output: %w", repairErr)
		}
		doc = repaired
	}

	if schema != "" {
		result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewStringLoader(doc))
		if err != nil {
			return fmt.Errorf("validate model output: %w", err)
		}
		if !result.Valid() {
			se := &SchemaError{}
			for _, desc := range result.Errors() {
				se.Errors = append(se.Errors, desc.String())
			}
			return se
		}
	}

	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

// extractObject strips code fences and surrounding prose
func extractObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	if start < 0 {
		return "", ErrNoJSON
	}
	end := strings.LastIndex(s, "}")
	if end < start {
		// Truncated reply, let the repair step close it
		return s[start:], nil
	}
	return s[start : end+1], nil
}

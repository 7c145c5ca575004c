// internal/workers/fulfillment/process-job/schema.go
package processjob

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Jobs missing email or cuisine can never become well-formed, so schema
// violations drain the message instead of retrying it.
const jobSchema = `{
	"type": "object",
	"required": ["email", "cuisine"],
	"properties": {
		"location":       {"type": "string"},
		"cuisine":        {"type": "string"},
		"numberOfPeople": {"type": "string"},
		"time":           {"type": "string"},
		"email":          {"type": "string"}
	}
}`

var jobSchemaLoader = gojsonschema.NewStringLoader(jobSchema)

// validateJobBody checks a raw message body against the job schema. The
// returned error describes every violation; a non-JSON body is also a
// violation, not a transport failure.
func validateJobBody(body string) error {
	result, err := gojsonschema.Validate(jobSchemaLoader, gojsonschema.NewStringLoader(body))
	if err != nil {
		return fmt.Errorf("body is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return fmt.Errorf("job schema violations: %s", strings.Join(violations, "; "))
}

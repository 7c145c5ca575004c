// internal/workers/fulfillment/process-job/schema_test.go
package processjob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJobBody(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{
			name:  "complete job",
			body:  `{"location":"manhattan","cuisine":"french","numberOfPeople":"2","time":"19","email":"x@y.com"}`,
			valid: true,
		},
		{
			name:  "only required fields",
			body:  `{"cuisine":"french","email":"x@y.com"}`,
			valid: true,
		},
		{
			name:  "missing email",
			body:  `{"cuisine":"french"}`,
			valid: false,
		},
		{
			name:  "missing cuisine",
			body:  `{"email":"x@y.com"}`,
			valid: false,
		},
		{
			name:  "non-string cuisine",
			body:  `{"cuisine":42,"email":"x@y.com"}`,
			valid: false,
		},
		{
			name:  "not json",
			body:  "hello",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateJobBody(tt.body)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

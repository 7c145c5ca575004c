// internal/workers/fulfillment/process-job/render_test.go
package processjob

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dining-concierge/internal/models"
)

func TestAssembleAddress(t *testing.T) {
	tests := []struct {
		name string
		loc  models.RestaurantLocation
		want string
	}{
		{
			name: "all lines present",
			loc: models.RestaurantLocation{
				Address1: "80 Spring St",
				Address2: "Floor 2",
				Address3: "Suite 201",
				City:     "New York",
				State:    "NY",
				ZipCode:  "10012",
			},
			want: "80 Spring St Floor 2 Suite 201 New York, NY 10012",
		},
		{
			name: "None placeholders skipped",
			loc: models.RestaurantLocation{
				Address1: "80 Spring St",
				Address2: "None",
				Address3: "None",
				City:     "New York",
				State:    "NY",
				ZipCode:  "10012",
			},
			want: "80 Spring St New York, NY 10012",
		},
		{
			name: "empty lines skipped",
			loc: models.RestaurantLocation{
				Address1: "",
				Address2: "",
				Address3: "",
				City:     "Brooklyn",
				State:    "NY",
				ZipCode:  "11201",
			},
			want: "Brooklyn, NY 11201",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assembleAddress(tt.loc))
		})
	}
}

func TestRenderBody(t *testing.T) {
	results := []models.RestaurantDetails{
		{Name: "Le Bernardin", Address: "155 W 51st St New York, NY 10019"},
		{Name: "Balthazar", Address: "80 Spring St New York, NY 10012"},
	}

	body := renderBody(results)
	assert.Equal(t,
		"Hello! Here are all the suggestions:\n"+
			"1. Le Bernardin, 155 W 51st St New York, NY 10019\n"+
			"2. Balthazar, 80 Spring St New York, NY 10012\n",
		body,
	)
}

func TestRenderBody_Empty(t *testing.T) {
	assert.Equal(t, "Hello! Here are all the suggestions:\n", renderBody(nil))
}

func TestRenderSubject(t *testing.T) {
	assert.Equal(t, "French restaurants recommendations", renderSubject("french"))
	assert.Equal(t, "Italian restaurants recommendations", renderSubject("ITALIAN"))
	assert.Equal(t, " restaurants recommendations", renderSubject(""))
}

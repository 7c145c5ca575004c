// internal/workers/fulfillment/process-job/render.go
package processjob

import (
	"fmt"
	"strings"
	"unicode"

	"dining-concierge/internal/models"
)

const notificationGreeting = "Hello! Here are all the suggestions:\n"

// assembleAddress builds the display address from whatever address lines
// exist. The listings importer stores the literal string "None" for lines it
// scraped as null; those are skipped, never rendered.
func assembleAddress(loc models.RestaurantLocation) string {
	var lines []string
	for _, line := range []string{loc.Address1, loc.Address2, loc.Address3} {
		if line != "" && line != "None" {
			lines = append(lines, line)
		}
	}

	cityLine := loc.City + ", " + loc.State + " " + loc.ZipCode
	lines = append(lines, cityLine)
	return strings.Join(lines, " ")
}

// renderBody produces the plain-text notification: a greeting, then one
// numbered line per result in search order. Zero results still render the
// greeting alone.
func renderBody(results []models.RestaurantDetails) string {
	var b strings.Builder
	b.WriteString(notificationGreeting)
	for i, result := range results {
		b.WriteString(fmt.Sprintf("%d. %s, %s\n", i+1, result.Name, result.Address))
	}
	return b.String()
}

// renderSubject embellishes the cuisine term, e.g. "french" becomes
// "French restaurants recommendations".
func renderSubject(cuisine string) string {
	return capitalize(cuisine) + " restaurants recommendations"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	runes := []rune(lower)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

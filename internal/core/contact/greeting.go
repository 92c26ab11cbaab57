package contact

import (
	"fmt"

	"github.com/jarospm/folio/pkg/tmpl"
)

// DefaultGreeting is the success notification shown after an accepted
// submission. Templates receive GreetingData.
const DefaultGreeting = "Thanks, {{.FirstName}}! Your message has been sent."

// GreetingData defines the fields available to greeting templates.
type GreetingData struct {
	FirstName string
}

// Greeting renders the greeting template for the given first name. The name
// is trimmed before interpolation.
func Greeting(template, firstName string) (string, error) {
	if template == "" {
		template = DefaultGreeting
	}

	out, err := tmpl.Render(template, GreetingData{FirstName: Trim(firstName)})
	if err != nil {
		return "", fmt.Errorf("render greeting: %w", err)
	}
	return out, nil
}

package itinerary

import (
	"fmt"
	"strings"
)

const plannerInstructions = `You are an expert travel planner. Generate a comprehensive, personalized itinerary.
FORMAT:
- Markdown headings
- High-Level Overview
- Day-by-Day Itinerary
- Cost Breakdown
- Practical Tips`

// BuildPrompt renders the fixed planner instructions followed by the trip inputs.
func BuildPrompt(req TripRequest) string {
	var b strings.Builder
	b.WriteString(plannerInstructions)
	b.WriteString("\n\nUser Inputs:\n")
	fmt.Fprintf(&b, "Source: %s\n", req.Source)
	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "People: %s\n", req.People)
	fmt.Fprintf(&b, "Duration: %d days\n", req.Duration)
	fmt.Fprintf(&b, "Interests: %s\n", orNotApplicable(req.Interests))
	fmt.Fprintf(&b, "Budget: %s\n", req.Budget)
	fmt.Fprintf(&b, "Extras: %s\n", orNotApplicable(req.Extras))
	return b.String()
}

func orNotApplicable(v string) string {
	if v == "" {
		return notApplicable
	}
	return v
}

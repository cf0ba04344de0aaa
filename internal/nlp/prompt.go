package nlp

import "fmt"

const parserSystemPrompt = `You are an AI assistant helping parse user requests for finding workspaces.
Your task is to extract key information from the user's query and return it as a JSON object.
Focus on extracting the following fields if present:
- desk_type: (e.g., "standing", "regular")
- location_proximity: (e.g., "marketing team", "window", "quiet area") - specify the target of proximity.
- floor: (e.g., "3rd", "2nd", number)
- time_request: (e.g., "tomorrow afternoon", "now", "next Monday morning")
- specific_features: (e.g., ["dual-monitor", "ergonomic-chair"]) - list any specific equipment mentioned.

If a field is not mentioned, omit it from the JSON output.
Respond ONLY with the JSON object, nothing else before or after.

User Query: %q
JSON Output:
`

func buildParserPrompt(query string) string {
	return fmt.Sprintf(parserSystemPrompt, query)
}

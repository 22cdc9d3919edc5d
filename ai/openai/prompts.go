package openai

import (
	"fmt"
	"strings"

	"github.com/sievelabs/assessrec/ai"
)

const intentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "explicit_keywords": {
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "behavioral": {
      "type": "boolean"
    },
    "duration_max": {
      "type": ["integer", "null"],
      "minimum": 1
    },
    "is_entry_level": {
      "type": "boolean"
    }
  },
  "required": ["categories", "explicit_keywords", "behavioral", "duration_max", "is_entry_level"],
  "additionalProperties": false
}`

const intentPromptTemplate = `You are an expert intent classifier for a job assessment recommendation system.
Analyze the user query and return a strictly formatted JSON object.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "categories" must only contain values from: %s. Use [] when none apply.
- "explicit_keywords" lists specific hard skills (e.g. Java, Excel, Accounting) or soft skills found in the query.
- "behavioral" is true if the user asks for soft skills, collaboration, personality, or culture fit.
- "duration_max" is the maximum duration in minutes. Convert hours to minutes (e.g. 1 hour = 60). Use null when the query gives no time limit.
- "is_entry_level" is true if the query mentions graduate, fresher, entry level, or 0-2 years.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "I need a Java developer test under 40 minutes"
Output:
{
  "categories": ["tech"],
  "explicit_keywords": ["Java"],
  "behavioral": false,
  "duration_max": 40,
  "is_entry_level": false
}

Example (behavioral signal):
Input: "hiring sales graduates, want to check culture fit and teamwork"
Output:
{
  "categories": ["sales"],
  "explicit_keywords": ["teamwork"],
  "behavioral": true,
  "duration_max": null,
  "is_entry_level": true
}

Example (nothing extractable):
Input: "recommend something"
Output:
{
  "categories": [],
  "explicit_keywords": [],
  "behavioral": false,
  "duration_max": null,
  "is_entry_level": false
}`

// buildIntentPrompt creates the system prompt with the category vocabulary embedded.
func buildIntentPrompt() string {
	return fmt.Sprintf(intentPromptTemplate,
		intentResponseSchema,
		strings.Join(ai.IntentCategories, ", "))
}

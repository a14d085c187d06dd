package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// Marshal escapes <, > and & so the result is safe inside a script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// EducationalOrganization returns a minimal schema.org organisation payload.
func EducationalOrganization(name, url, logoURL string, sameAs []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "EducationalOrganization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// QA is one question and its accepted answer.
type QA struct {
	Question string
	Answer   string
}

// FAQPage builds a schema.org FAQPage. It returns nil when there are no entries.
func FAQPage(entries []QA) map[string]any {
	if len(entries) == 0 {
		return nil
	}
	questions := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, map[string]any{
			"@type": "Question",
			"name":  e.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  e.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": questions,
	}
}

// Course returns a schema.org Course offered by provider.
func Course(name, description, url, provider string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Course",
		"name":        name,
		"description": description,
		"provider": map[string]any{
			"@type": "Organization",
			"name":  provider,
		},
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

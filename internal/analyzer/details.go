package analyzer

import "strings"

// extractAdditionalDetails collects open-schema extraction facts:
// salary, remote-work flag, company size, education flag and the source
// URL echo. Absent facts are simply omitted from the map.
func extractAdditionalDetails(content, sourceURL string) map[string]any {
	details := make(map[string]any)
	lower := strings.ToLower(content)

	if salary := salaryPattern.FindString(content); salary != "" {
		details["salary_range"] = salary
	}

	details["remote_work"] = containsAny(lower, remoteKeywords)

	for _, pattern := range companySizePatterns {
		if m := pattern.FindString(content); m != "" {
			details["company_size"] = m
			break
		}
	}

	details["education_required"] = containsAny(lower, educationKeywords)

	if sourceURL != "" {
		details["source_url"] = sourceURL
	}

	return details
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

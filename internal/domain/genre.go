package domain

import "strings"

// ExtractGenres flattens a book's subjects into a deduplicated,
// comma-joined label string.
//
// Each subject is split on commas and on "--"; tokens are trimmed and
// collapsed on exact match. Case is preserved. Callers must
// not depend on label order.
func ExtractGenres(subjects []string) string {
	return strings.Join(GenreLabels(subjects), ", ")
}

// GenreLabels returns the deduplicated labels in first-seen order
func GenreLabels(subjects []string) []string {
	seen := make(map[string]struct{})
	var labels []string

	for _, subject := range subjects {
		// "--" separates labels just like a comma
		cleaned := strings.ReplaceAll(subject, "--", ",")
		for _, part := range strings.Split(cleaned, ",") {
			label := strings.TrimSpace(part)
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	return labels
}

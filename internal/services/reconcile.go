package services

// DedupeNames collapses duplicate genre names, keeping first-seen
// order. Comparison is case-sensitive.
func DedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// DiffGenres computes the association changes needed to move an
// entity's genre set from current to submitted: toAdd is submitted
// minus current, toRemove is current minus submitted. Both inputs are
// treated as sets; callers dedupe submitted names first.
func DiffGenres(current, submitted []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, name := range current {
		currentSet[name] = struct{}{}
	}
	submittedSet := make(map[string]struct{}, len(submitted))
	for _, name := range submitted {
		submittedSet[name] = struct{}{}
	}

	for _, name := range submitted {
		if _, ok := currentSet[name]; !ok {
			toAdd = append(toAdd, name)
		}
	}
	for _, name := range current {
		if _, ok := submittedSet[name]; !ok {
			toRemove = append(toRemove, name)
		}
	}
	return toAdd, toRemove
}

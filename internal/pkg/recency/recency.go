// Package recency keeps the bounded "recently viewed" lists shown on the
// lookup pages.
package recency

// Keyed is implemented by every record that can be stored in a recent list.
type Keyed interface {
	RecencyKey() string
}

// Push returns a new list with item first, any earlier entry sharing its key
// removed, and at most capacity entries. The input list is not modified.
func Push[T Keyed](list []T, item T, capacity int) []T {
	if capacity <= 0 {
		return []T{}
	}

	key := item.RecencyKey()
	result := make([]T, 0, min(len(list)+1, capacity))
	result = append(result, item)
	for _, existing := range list {
		if len(result) == capacity {
			break
		}
		if existing.RecencyKey() == key {
			continue
		}
		result = append(result, existing)
	}
	return result
}

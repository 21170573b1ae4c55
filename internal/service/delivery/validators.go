package delivery

import "sort"

func isValidID(id int64) bool {
	return id > 0
}

func isValidRating(rating int16) bool {
	return rating >= 1 && rating <= 5
}

// uniqueSortedIDs validates a batch request and returns the ids sorted
// ascending. Stable lock ordering prevents deadlocks between competing
// batch-accept calls.
func uniqueSortedIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyBatch
	}

	seen := make(map[int64]struct{}, len(ids))
	sorted := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !isValidID(id) {
			return nil, ErrInvalidDeliveryID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		sorted = append(sorted, id)
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted, nil
}

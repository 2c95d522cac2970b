package engine

// NotFound is returned by FindIndex when the target falls outside the table.
const NotFound = -1

// FindIndex locates the bucket of target in a sorted boundary table:
// it returns i such that bounds[i] <= target < bounds[i+1], or NotFound.
// The last element of bounds is a closing sentinel and never starts a bucket.
//
// A non-negative hint seeds the first window to [hint, hint+1], which is where
// callers usually expect the answer (the zodiac table uses month-1). When the
// target is not inside that window the whole table is searched, so the result
// never depends on the hint. A negative hint searches the whole table at once.
func FindIndex(target int, bounds []int, hint int) int {
	last := len(bounds) - 2
	if last < 0 {
		return NotFound
	}
	if hint >= 0 {
		left := min(hint, last)
		if i := searchBuckets(target, bounds, left, min(left+1, last)); i != NotFound {
			return i
		}
	}
	return searchBuckets(target, bounds, 0, last)
}

func searchBuckets(target int, bounds []int, left, right int) int {
	for left <= right {
		mid := (left + right) / 2
		if target >= bounds[mid] && target < bounds[mid+1] {
			return mid
		}
		if bounds[mid] < target {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return NotFound
}

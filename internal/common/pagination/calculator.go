package pagination

// CalculateOffset calculates the slice/database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 6 -> Offset 0
//   - Page 2, Limit 6 -> Offset 6
//   - Page 3, Limit 6 -> Offset 12
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 0 (an empty collection has no pages; any
//     requested page yields an empty slice without error)
//   - If total < limit, returns 1
//   - Otherwise, returns ceil(total / limit)
//
// Examples:
//   - Total 0, Limit 6 -> 0 pages
//   - Total 5, Limit 6 -> 1 page
//   - Total 6, Limit 6 -> 1 page
//   - Total 13, Limit 6 -> 3 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	// Ceiling division: (total + limit - 1) / limit
	return int((total + int64(limit) - 1) / int64(limit))
}

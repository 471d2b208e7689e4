package pagination

// Normalize clamps a requested page size to the configured default and maximum.
func Normalize(size, defaultSize, maxSize int) int {
	if size <= 0 {
		return defaultSize
	}
	if size > maxSize {
		return maxSize
	}
	return size
}

// Prefix truncates an ordered result set to its first pageSize entries. The
// storefront paginates by simple prefix slicing only.
func Prefix[T any](items []T, pageSize int) []T {
	if pageSize <= 0 || pageSize >= len(items) {
		return items
	}
	return items[:pageSize]
}

package db

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIfZero stores optional foreign keys as NULL instead of 0.
func NullIfZero(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}

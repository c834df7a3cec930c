package dice

// Shuffle permutes n elements in place with a Fisher-Yates walk. Every
// permutation is equally likely provided the roller is uniform.
func Shuffle(r Roller, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		swap(i, j)
	}
}

// ShuffledCopy returns a permuted copy of items, leaving items untouched
func ShuffledCopy[T any](r Roller, items []T) []T {
	out := append([]T(nil), items...)
	Shuffle(r, len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample draws k distinct elements uniformly without replacement using a
// partial Fisher-Yates pass. k larger than len(items) is clamped.
func Sample[T any](r Roller, items []T, k int) []T {
	pool := append([]T(nil), items...)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Pick returns one uniformly chosen element. items must not be empty.
func Pick[T any](r Roller, items []T) T {
	return items[r.IntN(len(items))]
}

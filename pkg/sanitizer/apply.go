package sanitizer

// Apply runs s through transforms in order.
func Apply[T any](s T, transforms ...func(T) T) T {
	result := s
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from transforms.
// Preferred over repeated Apply calls when the same chain is used for every value.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(s T) T {
		return Apply(s, transforms...)
	}
}

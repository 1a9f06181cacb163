// Package ptr содержит хелперы для работы с указателями.
package ptr

// Ptr возвращает указатель на переданное значение
func Ptr[T any](v T) *T {
	return &v
}

package toolbox

import (
	"github.com/sirkon/dstoolbox/internal/argerr"
	"github.com/sirkon/errors"
)

// RemoveElementInPlace удаление элемента с индексом index со сдвигом хвоста
// влево на одну позицию. Длина не меняется, последний слот получает нулевое
// значение T, которое считается пустым.
func RemoveElementInPlace[T any](array []T, index int) error {
	if err := checkIndex(len(array), index); err != nil {
		return errors.Wrap(err, "remove element in place")
	}

	copy(array[index:], array[index+1:])
	var empty T
	array[len(array)-1] = empty

	return nil
}

// AddElementInPlace запись value на позицию index со сдвигом хвоста вправо.
// Длина не меняется, последний элемент вытесняется.
func AddElementInPlace[T any](array []T, index int, value T) error {
	if err := checkIndex(len(array), index); err != nil {
		return errors.Wrap(err, "add element in place")
	}

	copy(array[index+1:], array[index:len(array)-1])
	array[index] = value

	return nil
}

func checkIndex(length, index int) error {
	switch {
	case length == 0:
		return argerr.NewInvalidArgument("array must not be empty")
	case index < 0 || index >= length:
		return errors.Wrap(argerr.NewInvalidArgument("index out of bounds"), "check index").
			Int("invalid-index", index).
			Int("array-length", length)
	default:
		return nil
	}
}

package toolbox

import (
	"reflect"

	"github.com/sirkon/dstoolbox/internal/argerr"
	"github.com/sirkon/dstoolbox/internal/logging"
	"github.com/sirkon/errors"
)

// Queue очередь FIFO, над которой работает RotateQueueLeft.
// *dllist.DLList[T] удовлетворяет этому интерфейсу.
type Queue[T any] interface {
	// Len число элементов в очереди.
	Len() int
	// Poll извлечение первого элемента, false для пустой очереди.
	Poll() (T, bool)
	// Offer добавление элемента в конец.
	Offer(v T)
}

// RotateQueueLeft переносит первые k mod n элементов очереди длины n в её
// конец с сохранением их относительного порядка.
// Поворот пустой очереди ничего не делает.
func RotateQueueLeft[T any](queue Queue[T], k int, opts ...RotateOpt) error {
	if isNilQueue(queue) {
		return argerr.NewInvalidArgument("queue must not be nil")
	}
	if k < 0 {
		return errors.Wrap(argerr.NewInvalidArgument("shift must not be negative"), "rotate queue left").
			Int("invalid-shift", k)
	}

	o := rotateOptions{
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(&o, rotateOptRestriction{})
	}

	n := queue.Len()
	if n == 0 {
		o.logger.WarningRotateEmptyQueue(k)
		return nil
	}

	shift := k % n
	o.logger.DebugRotate(k, n, shift)
	for i := 0; i < shift; i++ {
		v, ok := queue.Poll()
		if !ok {
			// Очередь изменилась не по нашей вине.
			return errors.Newf("queue turned out to be shorter than reported").
				Int("reported-length", n).
				Int("polled", i)
		}
		queue.Offer(v)
	}

	return nil
}

// isNilQueue отлавливает и пустой интерфейс, и интерфейс с nil-указателем внутри.
func isNilQueue[T any](queue Queue[T]) bool {
	if queue == nil {
		return true
	}

	v := reflect.ValueOf(queue)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

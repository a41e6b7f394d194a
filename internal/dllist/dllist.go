package dllist

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// From конструктор списка заполненного данными значениями в их порядке.
func From[T any](values ...T) *DLList[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}

	return l
}

// DLList двусвязный список. Используется и как очередь (Offer/Poll),
// и как стек (Push/PopLast).
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	first *Node[T]
	last  *Node[T]
	len   int
}

// Len количество элементов в списке.
func (l *DLList[T]) Len() int {
	return l.len
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) Push(v T) *Node[T] {
	n := &Node[T]{
		next:  nil,
		prev:  l.last,
		value: v,
	}
	l.len++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// Offer добавление значения в конец списка, когда узел не нужен.
func (l *DLList[T]) Offer(v T) {
	l.Push(v)
}

// Poll извлечение значения из начала списка. Возвращает false для пустого списка.
func (l *DLList[T]) Poll() (v T, ok bool) {
	if l.first == nil {
		return v, false
	}

	v = l.first.value
	l.DeleteFirst()
	return v, true
}

// PopLast извлечение значения из конца списка. Возвращает false для пустого списка.
func (l *DLList[T]) PopLast() (v T, ok bool) {
	if l.last == nil {
		return v, false
	}

	v = l.last.value
	l.Delete(l.last)
	return v, true
}

// DeleteFirst удаление первого элемента списка.
func (l *DLList[T]) DeleteFirst() {
	if l.first == nil {
		return
	}

	f := l.first
	l.first = f.next
	if f.next == nil {
		// в списке был только один элемент
		l.last = nil
	} else {
		f.next.prev = nil
	}
	l.len--

	f.next = nil // для упрощения работы GC
}

// First получение первого элемента списка.
func (l *DLList[T]) First() *Node[T] {
	return l.first
}

// Last получение последнего элемента списка.
func (l *DLList[T]) Last() *Node[T] {
	return l.last
}

// Delete удаление данного узла из списка.
// Узел обязан принадлежать этому списку.
func (l *DLList[T]) Delete(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	if l.first == n {
		l.first = n.next
	}

	if l.last == n {
		l.last = n.prev
	}
	l.len--

	n.cleanup()
}

// Values значения списка от начала к концу.
func (l *DLList[T]) Values() []T {
	res := make([]T, 0, l.len)
	for n := l.first; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}

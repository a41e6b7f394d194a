package dllist

// Node узел содержащий данное значение в связанном списке.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// Next следующий узел или nil для последнего.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev предыдущий узел или nil для первого.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}

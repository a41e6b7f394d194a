package toolbox

import (
	"github.com/sirkon/dstoolbox/internal/argerr"
	"github.com/sirkon/dstoolbox/internal/dnode"
	"github.com/sirkon/dstoolbox/internal/snode"
	"github.com/sirkon/errors"
)

// FindTail последний узел односвязного списка. Для списка из одного
// узла возвращается сама голова.
func FindTail(head *snode.Node) (*snode.Node, error) {
	if head == nil {
		return nil, argerr.NewInvalidArgument("head must not be nil")
	}

	cur := head
	for cur.Next != nil {
		cur = cur.Next
	}

	return cur, nil
}

// FindDoubleTail то же самое, что и FindTail, но для двусвязного списка.
func FindDoubleTail(head *dnode.Node) (*dnode.Node, error) {
	if head == nil {
		return nil, argerr.NewInvalidArgument("head must not be nil")
	}

	cur := head
	for cur.Next != nil {
		cur = cur.Next
	}

	return cur, nil
}

// FindHead первый узел двусвязного списка, поиск идёт по обратным ссылкам.
func FindHead(tail *dnode.Node) (*dnode.Node, error) {
	if tail == nil {
		return nil, argerr.NewInvalidArgument("tail must not be nil")
	}

	cur := tail
	for cur.Prev != nil {
		cur = cur.Prev
	}

	return cur, nil
}

// CountOccurrences число вхождений каждого значения в список.
func CountOccurrences(head *snode.Node) (map[int]int, error) {
	if head == nil {
		return nil, argerr.NewInvalidArgument("head must not be nil")
	}

	res := map[int]int{}
	for cur := head; cur != nil; cur = cur.Next {
		res[cur.Data]++
	}

	return res, nil
}

// RemoveNode исключение узла из двусвязного списка связыванием его соседей.
// Собственные ссылки узла не меняются. Если удаляется голова или хвост,
// вызывающий сам отвечает за обновление своих ссылок на них.
func RemoveNode(node *dnode.Node) error {
	if node == nil {
		return argerr.NewInvalidArgument("node must not be nil")
	}

	if node.Prev != nil {
		node.Prev.Next = node.Next
	}

	if node.Next != nil {
		node.Next.Prev = node.Prev
	}

	return nil
}

// FindNthElement узел с индексом n, считая от нуля. Если список короче,
// возвращается nil без ошибки.
func FindNthElement(head *snode.Node, n int) (*snode.Node, error) {
	if head == nil {
		return nil, argerr.NewInvalidArgument("head must not be nil")
	}
	if n < 0 {
		return nil, errors.Wrap(argerr.NewInvalidArgument("position must not be negative"), "find nth element").
			Int("invalid-position", n)
	}

	cur := head
	for i := 0; cur != nil; i++ {
		if i == n {
			return cur, nil
		}
		cur = cur.Next
	}

	return nil, nil
}

// InsertNode вставка newNode сразу после node.
func InsertNode(node, newNode *snode.Node) error {
	if node == nil || newNode == nil {
		return errors.Wrap(argerr.NewInvalidArgument("nodes must not be nil"), "insert node").
			Bool("node-is-nil", node == nil).
			Bool("new-node-is-nil", newNode == nil)
	}

	newNode.Next = node.Next
	node.Next = newNode

	return nil
}

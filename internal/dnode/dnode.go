package dnode

import (
	"fmt"

	"github.com/sirkon/dstoolbox/internal/argerr"
	"github.com/sirkon/errors"
)

// Node узел двусвязного списка целых чисел.
// Для соседних узлов A и B справедливо A.Next == B и B.Prev == A.
// У головы Prev == nil, у хвоста Next == nil.
type Node struct {
	Data int
	Next *Node
	Prev *Node
}

// New конструктор узла с данным значением и ссылкой на следующий узел.
// Prev всегда пуст, обратная ссылка у next не выставляется.
func New(data int, next *Node) *Node {
	return &Node{
		Data: data,
		Next: next,
	}
}

// FromSlice строит двусвязный список из values слева направо,
// проставляя каждому новому узлу ссылку на предыдущий.
func FromSlice(values []int) (*Node, error) {
	if len(values) == 0 {
		return nil, errors.Wrap(argerr.NewInvalidArgument("values must not be empty"), "build double linked list")
	}

	head := New(values[0], nil)
	cur := head
	for _, v := range values[1:] {
		cur.Next = New(v, nil)
		cur.Next.Prev = cur
		cur = cur.Next
	}

	return head, nil
}

// Slice значения списка начиная с данного узла, обход только по Next.
func (n *Node) Slice() []int {
	var res []int
	for cur := n; cur != nil; cur = cur.Next {
		res = append(res, cur.Data)
	}

	return res
}

func (n *Node) String() string {
	return fmt.Sprint(n.Slice())
}

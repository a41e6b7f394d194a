package snode

import (
	"fmt"

	"github.com/sirkon/dstoolbox/internal/argerr"
	"github.com/sirkon/errors"
)

// Node узел односвязного списка целых чисел.
// Отсутствие следующего узла обозначается nil.
type Node struct {
	Data int
	Next *Node
}

// New конструктор узла с данным значением и ссылкой на следующий узел.
func New(data int, next *Node) *Node {
	return &Node{
		Data: data,
		Next: next,
	}
}

// FromSlice строит список из values, первый элемент становится головой.
func FromSlice(values []int) (*Node, error) {
	if len(values) == 0 {
		return nil, errors.Wrap(argerr.NewInvalidArgument("values must not be empty"), "build single linked list")
	}

	head := New(values[0], nil)
	cur := head
	for _, v := range values[1:] {
		cur.Next = New(v, nil)
		cur = cur.Next
	}

	return head, nil
}

// Slice значения списка начиная с данного узла в порядке обхода.
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

// QueueMock is maintained by hand in the mockgen layout: mockgen v1.6.0
// does not support generic interfaces.

package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// QueueMock is a mock of Queue interface.
type QueueMock[T any] struct {
	ctrl     *gomock.Controller
	recorder *QueueMockMockRecorder[T]
}

// QueueMockMockRecorder is the mock recorder for QueueMock.
type QueueMockMockRecorder[T any] struct {
	mock *QueueMock[T]
}

// NewQueueMock creates a new mock instance.
func NewQueueMock[T any](ctrl *gomock.Controller) *QueueMock[T] {
	mock := &QueueMock[T]{ctrl: ctrl}
	mock.recorder = &QueueMockMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *QueueMock[T]) EXPECT() *QueueMockMockRecorder[T] {
	return m.recorder
}

// Len mocks base method.
func (m *QueueMock[T]) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *QueueMockMockRecorder[T]) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*QueueMock[T])(nil).Len))
}

// Offer mocks base method.
func (m *QueueMock[T]) Offer(v T) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Offer", v)
}

// Offer indicates an expected call of Offer.
func (mr *QueueMockMockRecorder[T]) Offer(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Offer", reflect.TypeOf((*QueueMock[T])(nil).Offer), v)
}

// Poll mocks base method.
func (m *QueueMock[T]) Poll() (T, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Poll")
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Poll indicates an expected call of Poll.
func (mr *QueueMockMockRecorder[T]) Poll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Poll", reflect.TypeOf((*QueueMock[T])(nil).Poll))
}

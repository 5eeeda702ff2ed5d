// Package linkedlist provides a singly linked list implementation.
//
// # What is a Linked List?
//
// A linked list is a sequence of nodes where each node holds data and a
// pointer to the next node. Unlike arrays, linked list elements are scattered
// in memory and connected through these pointers.
//
// The key insight is that insertion and deletion become O(1) operations when
// you have a reference to the target location. You just rewire the pointers,
// no shifting needed. However, you lose the ability to jump to any position
// directly since you must traverse from the head.
//
// # Trade-offs vs Arrays
//
// Linked lists excel at insertion/deletion at known positions (O(1) vs O(n))
// and dynamic sizing without reallocation. Arrays win at random access
// (O(1) vs O(n)) and cache performance due to contiguous memory layout.
//
// hashmap uses SinglyLinkedList as each bucket's chain: a bucket never needs
// random access or backward traversal, only append-on-insert and a linear
// scan on Get/Del, which is exactly what this type is O(1) and O(n) at
// respectively.
//
// # Complexity
//
//	Prepend:       O(1)
//	Append:        O(1) (tracked tail pointer)
//	Access by idx: O(n)
//	Insert at pos: O(n) to find position, O(1) to insert
//	Delete at pos: O(n) to find position, O(1) to delete
//
// # Further Reading
//
// CLRS "Introduction to Algorithms", Chapter 10.2.
// Sedgewick "Algorithms", Section 1.3.
// https://en.wikipedia.org/wiki/Linked_list
package linkedlist

import (
	"github.com/nfagan/categorical/internal/generics"
	"github.com/nfagan/categorical/sequence"
)

// UnaryNode is a node in a singly linked list. Each node holds data and a
// pointer to the next node.
type UnaryNode[T any] struct {
	data T
	next *UnaryNode[T]
}

// NewUnaryNode creates a new node with the given data and next pointer.
func NewUnaryNode[T any](data T, next *UnaryNode[T]) *UnaryNode[T] {
	return &UnaryNode[T]{
		data: data,
		next: next,
	}
}

// SinglyLinkedList is a linked list where each node points only to the next
// node. It maintains pointers to both head (front) and tail (back) for
// efficient operations.
//
//	head                 tail
//	  ↓                    ↓
//	┌───┐     ┌───┐     ┌───┐
//	│ A │────►│ B │────►│ C │────► nil
//	└───┘     └───┘     └───┘
//
// With head and tail pointers:
//   - Append (add to back): O(1)
//   - Prepend (add to front): O(1)
//   - Pop (remove from back): O(n) - must traverse to find second-to-last
//   - Shift (remove from front): O(1)
type SinglyLinkedList[T any] struct {
	head *UnaryNode[T]
	tail *UnaryNode[T]
	size int
}

// NewSinglyLinkedList creates an empty singly linked list.
func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// Empty returns true if the list has no elements.
func (l *SinglyLinkedList[T]) Empty() bool {
	return l.size == 0 && l.head == nil && l.tail == nil
}

// Size returns the number of elements in the list.
func (l *SinglyLinkedList[T]) Size() int {
	return l.size
}

// Head returns the first element without removing it. Panics if empty.
func (l *SinglyLinkedList[T]) Head() T {
	if v, ok := l.TryHead(); !ok {
		panic("SinglyLinkedList.Head: is empty list")
	} else {
		return v
	}
}

// TryHead attempts to return the first element.
func (l *SinglyLinkedList[T]) TryHead() (T, bool) {
	if l.Empty() {
		return generics.ZeroValue[T](), false
	}
	return l.head.data, true
}

// Tail returns the last element without removing it. Panics if empty.
func (l *SinglyLinkedList[T]) Tail() T {
	if v, ok := l.TryTail(); !ok {
		panic("SinglyLinkedList.Tail: is empty list")
	} else {
		return v
	}
}

// TryTail attempts to return the last element.
func (l *SinglyLinkedList[T]) TryTail() (T, bool) {
	if l.Empty() {
		return generics.ZeroValue[T](), false
	}
	return l.tail.data, true
}

// Append adds an element to the back of the list.
func (l *SinglyLinkedList[T]) Append(data T) {
	newNode := NewUnaryNode(data, nil)
	if l.Empty() {
		l.head = newNode
		l.tail = newNode
	} else {
		l.tail.next = newNode
		l.tail = newNode
	}
	l.size++
}

// Prepend adds an element to the front of the list.
func (l *SinglyLinkedList[T]) Prepend(data T) {
	newNode := NewUnaryNode(data, l.head)
	if l.Empty() {
		l.tail = newNode
	}
	l.head = newNode
	l.size++
}

// Pop removes and returns the last element. Panics if empty.
//
// complexity:
//   - time : O(n) - must traverse to find second-to-last node
//   - space: O(1)
func (l *SinglyLinkedList[T]) Pop() T {
	if data, ok := l.TryPop(); !ok {
		panic("SinglyLinkedList.Pop: is empty list")
	} else {
		return data
	}
}

// TryPop attempts to remove and return the last element.
func (l *SinglyLinkedList[T]) TryPop() (T, bool) {
	if l.Empty() {
		var zero T
		return zero, false
	}
	data := l.tail.data
	if l.size == 1 {
		l.reset()
		return data, true
	}
	cur := l.head
	for cur.next != l.tail {
		cur = cur.next
	}
	l.tail = cur
	cur.next = nil
	l.size--
	return data, true
}

// Shift removes and returns the first element. Panics if empty.
func (l *SinglyLinkedList[T]) Shift() T {
	if data, ok := l.TryShift(); !ok {
		panic("SinglyLinkedList.Shift: is empty list")
	} else {
		return data
	}
}

// TryShift attempts to remove and return the first element.
func (l *SinglyLinkedList[T]) TryShift() (T, bool) {
	if l.Empty() {
		var zero T
		return zero, false
	}
	data := l.head.data
	if l.size == 1 {
		l.reset()
	} else {
		l.head = l.head.next
		l.size--
	}
	return data, true
}

// Iter iterates over all elements from front to back. Iteration order
// matches insertion order at the front-to-back direction.
func (l *SinglyLinkedList[T]) Iter(yield func(T) bool) {
	l.iterForward(func(u *UnaryNode[T]) bool { return yield(u.data) })
}

// IterBackward iterates over all elements from back to front.
//
// complexity:
//   - time : O(n)
//   - space: O(n) - creates a temporary reversed copy, since singly linked
//     nodes have no prev pointer
func (l *SinglyLinkedList[T]) IterBackward(yield func(T) bool) {
	l.iterBackward(func(u *UnaryNode[T]) bool { return yield(u.data) })
}

// Enum iterates over all elements with their indices from front to back.
func (l *SinglyLinkedList[T]) Enum(yield func(int, T) bool) {
	i := 0
	for v := range l.Iter {
		if !yield(i, v) {
			break
		}
		i++
	}
}

func (l *SinglyLinkedList[T]) iterForward(yield func(*UnaryNode[T]) bool) {
	p := l.head
	for p != nil {
		if !yield(p) {
			return
		}
		p = p.next
	}
}

func (l *SinglyLinkedList[T]) iterBackward(yield func(*UnaryNode[T]) bool) {
	var nodes []*UnaryNode[T]
	for cur := l.head; cur != nil; cur = cur.next {
		nodes = append(nodes, cur)
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		if !yield(nodes[i]) {
			return
		}
	}
}

// Get retrieves the element at the given index. Panics if the list is empty
// or the index is out of range.
func (l *SinglyLinkedList[T]) Get(index int) T {
	if v, ok := l.TryGet(index); !ok {
		if l.Empty() {
			panic("SinglyLinkedList.Get: is empty list")
		}
		panic("SinglyLinkedList.Get: index out of range")
	} else {
		return v
	}
}

// TryGet attempts to retrieve the element at the given index.
func (l *SinglyLinkedList[T]) TryGet(index int) (T, bool) {
	if index < 0 || index >= l.size {
		return generics.ZeroValue[T](), false
	}
	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}
	return cur.data, true
}

// Set updates the element at the given index. Panics if the list is empty
// or the index is out of range.
func (l *SinglyLinkedList[T]) Set(index int, data T) {
	if !l.TrySet(index, data) {
		if l.Empty() {
			panic("SinglyLinkedList.Set: is empty list")
		}
		panic("SinglyLinkedList.Set: index out of range")
	}
}

// TrySet attempts to update the element at the given index.
func (l *SinglyLinkedList[T]) TrySet(index int, data T) bool {
	if l.Empty() || index < 0 || index >= l.Size() {
		return false
	}
	if index == 0 {
		l.head.data = data
		return true
	}
	cur := l.head
	for i := 0; i < index; i++ {
		if cur == nil {
			return false
		}
		cur = cur.next
	}
	cur.data = data
	return true
}

// String returns the string representation of the list.
func (l *SinglyLinkedList[T]) String() string {
	return sequence.String(l.Iter)
}

// Remove deletes and returns the element at the given index. Panics if the
// index is out of range.
func (l *SinglyLinkedList[T]) Remove(index int) T {
	if v, ok := l.TryRemove(index); !ok {
		panic("SinglyLinkedList.Remove: index out of range")
	} else {
		return v
	}
}

// TryRemove attempts to remove the element at the given index.
func (l *SinglyLinkedList[T]) TryRemove(index int) (T, bool) {
	if index < 0 || index >= l.size {
		return generics.ZeroValue[T](), false
	}
	if index == 0 {
		return l.TryShift()
	}
	if index == l.size-1 {
		return l.TryPop()
	}
	cur := l.head
	for i := 0; i < index-1; i++ {
		cur = cur.next
	}
	removed := cur.next
	val := removed.data
	cur.next = removed.next
	l.size--
	return val, true
}

// Insert adds an element at the given index, shifting elements at and after
// the index to higher indices. Panics if index < 0 or index > Size().
//
// Insert(0, v) is equivalent to Prepend(v); Insert(Size(), v) is equivalent
// to Append(v).
func (l *SinglyLinkedList[T]) Insert(index int, data T) {
	if index == 0 {
		l.Prepend(data)
		return
	}
	if index == l.Size() {
		l.Append(data)
		return
	}
	if index < 0 || index >= l.size {
		panic("SinglyLinkedList.Insert: index out of range")
	}
	cur := l.head
	for i := 0; i < index-1; i++ {
		cur = cur.next
	}
	cur.next = NewUnaryNode(data, cur.next)
	l.size++
}

func (l *SinglyLinkedList[T]) reset() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

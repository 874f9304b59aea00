// Package singlell implements a generic singly linked list with indexed
// insert and remove, a maintained length counter, and traversal that always
// starts from the head.
package singlell

import (
	"fmt"
	"strings"
)

// LinkedList is a singly linked list. It is not safe for concurrent use.
type LinkedList[T any] interface {
	// Push appends v as the new last element. The whole chain is walked to
	// reach the tail, so Push is O(n) despite the name
	Push(v T)
	// Pop removes and returns the last element, false when the list is empty
	Pop() (T, bool)
	// Insert places v immediately after the element at index, so v becomes
	// the element at index+1. Panics when index is out of range. Appending
	// via Insert(Len(), v) is rejected, use Push for that
	Insert(index int, v T)
	// Remove removes and returns the element at index. Panics when index is
	// out of range
	Remove(index int) T
	// Clone returns a deep copy of the chain
	Clone() LinkedList[T]
	// IsEmpty reports whether the list holds no elements
	IsEmpty() bool
	// Len returns the maintained element counter
	Len() int

	fmt.Stringer
}

type node[T any] struct {
	next  *node[T]
	value T
}

type linkedList[T any] struct {
	head   *node[T]
	length int
}

// New construct an empty LinkedList
func New[T any]() LinkedList[T] {
	return &linkedList[T]{}
}

func (l *linkedList[T]) Push(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.length++
		return
	}

	current := l.head
	for current.next != nil {
		current = current.next
	}
	current.next = n
	l.length++
}

func (l *linkedList[T]) Pop() (T, bool) {
	if l.head == nil {
		var result T
		return result, false
	}

	if l.head.next == nil {
		v := l.head.value
		l.head = nil
		l.length--
		return v, true
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	v := prev.next.value
	prev.next = nil
	l.length--
	return v, true
}

func (l *linkedList[T]) Insert(index int, v T) {
	if index < 0 || index >= l.length {
		panic(fmt.Sprintf("insertion index (is %d) should be <= len (is %d)", index, l.length))
	}

	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	current.next = &node[T]{next: current.next, value: v}
	l.length++
}

func (l *linkedList[T]) Remove(index int) T {
	if index < 0 || index >= l.length {
		panic(fmt.Sprintf("removal index (is %d) should be < len (is %d)", index, l.length))
	}

	var prev *node[T]
	current := l.head
	for i := 0; i < index; i++ {
		prev = current
		current = current.next
	}

	if prev == nil {
		l.head = current.next
	} else {
		prev.next = current.next
	}
	// sever the outgoing link so the detached node cannot reach the chain
	current.next = nil
	l.length--
	return current.value
}

func (l *linkedList[T]) Clone() LinkedList[T] {
	clone := &linkedList[T]{length: l.length}
	var tail *node[T]
	for current := l.head; current != nil; current = current.next {
		n := &node[T]{value: current.value}
		if tail == nil {
			clone.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return clone
}

func (l *linkedList[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *linkedList[T]) Len() int {
	return l.length
}

func (l *linkedList[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for current := l.head; current != nil; current = current.next {
		if current != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", current.value)
	}
	b.WriteByte(']')
	return b.String()
}

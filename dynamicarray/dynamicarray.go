// Package dynamicarray provides a resizable array implementation.
//
// # What is a Dynamic Array?
//
// A dynamic array solves the biggest limitation of fixed arrays: you don't
// need to know the size upfront. It grows automatically as you add elements.
//
// The clever trick is "amortized doubling": when the array fills up, we
// allocate a new array with 2x the capacity and copy everything over.
// While a single resize is expensive O(n), it happens so rarely that the
// average cost per insertion is still O(1). This is called amortized analysis.
//
// # How It Works
//
//  1. Start with initial capacity (e.g., 4 elements)
//  2. Add elements until full
//  3. When full: allocate 2x capacity, copy elements, free old array
//  4. Continue adding elements
//
// Example of growth: capacity 4, 8, 16, 32, 64, ...
//
// # Why Doubling?
//
// Why double instead of adding a fixed amount (like +10 each time)?
//
// If we add +10 each time and insert n elements, we'd resize n/10 times,
// doing O(n^2) total work. With doubling, we resize log2(n) times, doing
// O(n) total work. The math works out to O(1) amortized per insertion.
//
// Go's built-in slices use a similar strategy (with optimizations for
// large slices to reduce memory waste).
//
// # When to Use
//
// Use dynamic arrays when you need array-like access but unknown final size,
// most operations are append (add to end), or you want cache-friendly
// sequential access. The categorical package uses this as the backing store
// for each category's id column, since columns grow one row (or one
// replicated block, via Repeat) at a time and are read far more often than
// resized.
//
// # Complexity
//
//	Access:    O(1)
//	Append:    O(1) amortized, O(n) worst case on resize
//	Prepend:   O(n)
//	Insert:    O(n)
//	Delete:    O(n)
//
// # Further Reading
//
// CLRS "Introduction to Algorithms", Chapter 17 (Amortized Analysis).
// Go Blog: "Go Slices: usage and internals".
// https://en.wikipedia.org/wiki/Dynamic_array
package dynamicarray

import "github.com/nfagan/categorical/sequence"

// DynamicArray is a resizable array that grows automatically.
//
//	capacity = 8
//	┌───┬───┬───┬───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │   │   │   │  <- 3 empty slots
//	└───┴───┴───┴───┴───┴───┴───┴───┘
//	          size = 5
//
// When size reaches capacity, a resize doubles the capacity.
type DynamicArray[T any] struct {
	backend []T
	size    int
}

// New creates an empty DynamicArray with given initial capacity.
//
// complexity:
//   - time : O(capacity)
//   - space: O(capacity)
//
// Panics if capacity <= 0.
func New[T any](capacity int) *DynamicArray[T] {
	if capacity <= 0 {
		panic("dynamicarray.New: must have at minimum 1 capacity")
	}
	return &DynamicArray[T]{
		backend: make([]T, capacity),
		size:    0,
	}
}

// Free releases resources held by the array. A plain Go slice backend has
// nothing for the garbage collector to be told about early, so this is a
// no-op kept for API parity with callers that still pair New with a cleanup.
func (d *DynamicArray[T]) Free() {}

// Empty returns true if the array has no elements.
func (d *DynamicArray[T]) Empty() bool { return d.Size() == 0 }

// Size returns the number of elements in the array.
func (d *DynamicArray[T]) Size() int {
	return d.size
}

// Cap returns the current capacity.
func (d *DynamicArray[T]) Cap() int {
	return len(d.backend)
}

// Tail returns the last element without removing it. Panics if empty.
func (d *DynamicArray[T]) Tail() T {
	if v, ok := d.TryTail(); !ok {
		panic("DynamicArray.Tail: is empty array")
	} else {
		return v
	}
}

// TryTail attempts to return the last element.
func (d *DynamicArray[T]) TryTail() (T, bool) {
	if d.Empty() {
		var zero T
		return zero, false
	}
	return d.Get(d.Size() - 1), true
}

// Head returns the first element without removing it. Panics if empty.
func (d *DynamicArray[T]) Head() T {
	v, ok := d.TryHead()
	if !ok {
		panic("DynamicArray.Head: is empty array")
	}
	return v
}

// TryHead attempts to return the first element.
func (d *DynamicArray[T]) TryHead() (T, bool) {
	if d.Empty() {
		var zero T
		return zero, false
	}
	return d.backend[0], true
}

// Get retrieves the element at the given index. Panics if out of range.
func (d *DynamicArray[T]) Get(index int) T {
	d.checkBounds(index)
	return d.backend[index]
}

// TryGet attempts to retrieve the element at the given index.
func (d *DynamicArray[T]) TryGet(index int) (T, bool) {
	if index < 0 || index >= d.Size() {
		var zero T
		return zero, false
	}
	return d.backend[index], true
}

// Set updates the element at the given index. Panics if out of range.
func (d *DynamicArray[T]) Set(index int, value T) {
	d.checkBounds(index)
	d.backend[index] = value
}

// TrySet attempts to update the element at the given index.
func (d *DynamicArray[T]) TrySet(index int, value T) bool {
	if index < 0 || index >= d.Size() {
		return false
	}
	d.backend[index] = value
	return true
}

// Prepend adds an element to the front of the array.
//
// Note: Use Append for O(1) amortized insertion.
func (d *DynamicArray[T]) Prepend(value T) {
	d.Insert(0, value)
}

// Shift removes and returns the first element. Panics if empty.
func (d *DynamicArray[T]) Shift() T {
	if v, ok := d.TryShift(); !ok {
		panic("DynamicArray.Shift: array is empty")
	} else {
		return v
	}
}

// TryShift attempts to remove and return the first element.
func (d *DynamicArray[T]) TryShift() (T, bool) {
	if d.Empty() {
		var zero T
		return zero, false
	}
	v, _ := d.TryRemove(0)
	return v, true
}

// Swap exchanges elements at two indices.
func (d *DynamicArray[T]) Swap(i, j int) {
	if i != j {
		d.backend[i], d.backend[j] = d.backend[j], d.backend[i]
	}
}

// Append adds an element to the end of the array.
//
// If size == capacity, the array doubles in size first.
//
// complexity:
//   - time : O(1) amortized
//   - space: O(1) amortized
func (d *DynamicArray[T]) Append(value T) {
	if d.size >= d.Cap() {
		d.grow()
	}
	d.backend[d.size] = value
	d.size++
}

func (d *DynamicArray[T]) grow() {
	// Go slice implementation only doubles the capacity if the current size is less than 256.
	// See: https://cs.opensource.google/go/go/+/refs/tags/go1.24.2:src/runtime/slice.go;l=289-322
	const threshold = 256
	capacity := d.Cap()
	newCapacity := 2 * capacity
	if capacity >= threshold {
		newCapacity = capacity + (capacity+3*threshold)/4
	}
	newBackend := make([]T, newCapacity)
	copy(newBackend, d.backend[:d.size])
	d.backend = newBackend
}

// Pop removes and returns the last element. Panics if empty.
func (d *DynamicArray[T]) Pop() T {
	v, ok := d.TryPop()
	if !ok {
		panic("DynamicArray.Pop: array is empty")
	}
	return v
}

// TryPop attempts to remove and return the last element.
func (d *DynamicArray[T]) TryPop() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	val := d.backend[d.size-1]
	d.backend[d.size-1] = zero
	d.size--
	return val, true
}

// Clip reduces capacity to match size. Panics if empty.
func (d *DynamicArray[T]) Clip() {
	if d.Empty() {
		panic("DynamicArray.Clip: array is empty")
	}
	if d.size == d.Cap() {
		return
	}
	newBackend := make([]T, d.size)
	copy(newBackend, d.backend[:d.size])
	d.backend = newBackend
}

// Iter iterates over elements from front to back.
func (d *DynamicArray[T]) Iter(yield func(T) bool) {
	for i := range d.Size() {
		if !yield(d.Get(i)) {
			break
		}
	}
}

// IterBackward iterates over elements from back to front.
func (d *DynamicArray[T]) IterBackward(yield func(T) bool) {
	for i := d.size - 1; i >= 0; i-- {
		if !yield(d.backend[i]) {
			break
		}
	}
}

// Enum iterates over elements with their indices from front to back.
func (d *DynamicArray[T]) Enum(yield func(int, T) bool) {
	for i := range d.Size() {
		if !yield(i, d.Get(i)) {
			break
		}
	}
}

// EnumBackward iterates over elements with their indices from back to front.
func (d *DynamicArray[T]) EnumBackward(yield func(int, T) bool) {
	for i := d.size - 1; i >= 0; i-- {
		if !yield(i, d.backend[i]) {
			break
		}
	}
}

// String returns the string representation.
func (d *DynamicArray[T]) String() string {
	return sequence.String(d.Iter)
}

// Insert adds an element at the given index. Panics if index < 0 or > Size().
func (d *DynamicArray[T]) Insert(index int, value T) {
	if index < 0 || index > d.size {
		panic("DynamicArray.Insert: index out of range")
	}
	if d.size >= d.Cap() {
		d.grow()
	}
	for i := d.size; i > index; i-- {
		d.backend[i] = d.backend[i-1]
	}
	d.backend[index] = value
	d.size++
}

// Remove deletes and returns the element at the given index. Panics if out of range.
func (d *DynamicArray[T]) Remove(index int) T {
	if v, ok := d.TryRemove(index); !ok {
		panic("dynamicarray: index out of range")
	} else {
		return v
	}
}

// TryRemove attempts to remove the element at the given index.
func (d *DynamicArray[T]) TryRemove(index int) (T, bool) {
	if index < 0 || index >= d.Size() {
		var zero T
		return zero, false
	}
	val := d.backend[index]
	for i := index; i < d.size-1; i++ {
		d.backend[i] = d.backend[i+1]
	}
	d.size--
	return val, true
}

// Slice returns the live elements as a plain Go slice. The returned slice
// aliases the backing array; callers that need to retain it past the next
// mutating call should copy it.
func (d *DynamicArray[T]) Slice() []T {
	return d.backend[:d.size]
}

// Replace overwrites the full contents of the array with values, growing
// capacity if needed.
func (d *DynamicArray[T]) Replace(values []T) {
	if cap(d.backend) < len(values) {
		d.backend = make([]T, len(values))
	} else {
		d.backend = d.backend[:cap(d.backend)]
	}
	copy(d.backend, values)
	d.size = len(values)
}

func (d *DynamicArray[T]) checkBounds(index int) {
	if index < 0 || index >= d.Size() {
		panic("dynamicarray: index out of range")
	}
}

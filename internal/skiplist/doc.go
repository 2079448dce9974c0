// Package skiplist implements a lock-based, optimistic concurrent skip
// list: Herlihy & Shavit's lazy algorithm (The Art of Multiprocessor
// Programming, ch. 14), with the fully-linked/marked node bookkeeping
// adapted from benz9527/xboot's xConcSkipListNode flag bits.
//
// Structural changes (Add/Remove) take a short chain of per-node
// locks and validate it optimistically before committing; Contains and
// traversal are entirely lock-free, following atomic.Pointer forward
// links. It backs boundedset.Set and is not exported outside this
// module: its API is shaped around that one caller, not general use.
package skiplist

package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// pendingSet holds arrived tasks ordered by priority. Equal priorities are
// served in admission order.
type pendingSet struct {
	rbt *redblacktree.Tree
	seq uint64
}

func newPendingSet() *pendingSet {
	return &pendingSet{rbt: redblacktree.NewWith(cmp)}
}

func (p *pendingSet) push(t *Task) {
	p.rbt.Put(nodeKey{priority: t.Priority, seq: p.seq}, t)
	p.seq++
}

// popMin removes the most urgent task.
func (p *pendingSet) popMin() (*Task, bool) {
	node := p.rbt.Left()
	if node == nil {
		return nil, false
	}
	p.rbt.Remove(node.Key)
	return node.Value.(*Task), true
}

func (p *pendingSet) empty() bool { return p.rbt.Empty() }

func (p *pendingSet) size() int { return p.rbt.Size() }

// nodeKey is used as a key in the red-black tree.
type nodeKey struct {
	priority int
	seq      uint64
}

// cmp orders nodeKeys by priority, then by admission sequence.
func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.priority < kb.priority:
		return -1
	case ka.priority > kb.priority:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

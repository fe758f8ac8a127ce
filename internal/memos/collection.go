package memos

// Collection holds fetched memos in response order and indexes them by id
// so relations can be resolved to memo names.
type Collection struct {
	memos []Memo
	byID  map[int]int
}

func NewCollection() *Collection {
	return &Collection{
		memos: []Memo{},
		byID:  make(map[int]int),
	}
}

// Add appends a memo. Duplicate ids are not detected; the index points at
// the most recently added memo.
func (c *Collection) Add(memo Memo) {
	c.byID[memo.ID] = len(c.memos)
	c.memos = append(c.memos, memo)
}

func (c *Collection) ByID(id int) (Memo, bool) {
	idx, exists := c.byID[id]
	if !exists {
		return Memo{}, false
	}
	return c.memos[idx], true
}

func (c *Collection) Len() int {
	return len(c.memos)
}

func (c *Collection) Memos() []Memo {
	return c.memos
}

// IsRoot reports whether a memo stands on its own. A memo carrying a
// COMMENT relation under its own id is a comment on some other memo.
func (c *Collection) IsRoot(memo Memo) bool {
	for _, relation := range memo.RelationList {
		if relation.Type == RelationComment && relation.MemoID == memo.ID {
			return false
		}
	}
	return true
}

// Comments resolves the names of memos attached to this one as comments,
// in relation order. Relations pointing at unknown or self ids are skipped.
func (c *Collection) Comments(memo Memo) []string {
	var names []string
	for _, relation := range memo.RelationList {
		if relation.MemoID == memo.ID {
			continue
		}
		if related, exists := c.ByID(relation.MemoID); exists {
			names = append(names, related.Name)
		}
	}
	return names
}

// Roots returns the memos that are not comments, in response order.
func (c *Collection) Roots() []Memo {
	var roots []Memo
	for _, memo := range c.memos {
		if c.IsRoot(memo) {
			roots = append(roots, memo)
		}
	}
	return roots
}

// Package thread rebuilds the visible discussion tree from a flat,
// newest-first message list. It is pure: no I/O, no mutation of the input
// order in the store, re-derivable at any time from the list plus scores.
package thread

import (
	"sort"

	"moviechat/internal/models"
)

// Mode selects how root messages are ordered for display.
type Mode string

const (
	// ModeRecent keeps the incoming order everywhere (newest first).
	ModeRecent Mode = "recent"
	// ModeTop reorders only the roots by descending score; replies always
	// stay in arrival order under their parent.
	ModeTop Mode = "top"
)

// Thread is the assembled view: top-level messages plus a map from a parent
// id to its direct replies. A reply whose parent lies outside the fetch
// window still lands in Children under the absent parent's id; it is never
// promoted to a root.
type Thread struct {
	Roots    []models.MessageView            `json:"roots"`
	Children map[string][]models.MessageView `json:"children"`
}

// Assemble partitions msgs into roots and per-parent reply lists, preserving
// the incoming relative order within each group, then applies the mode.
func Assemble(msgs []models.MessageView, mode Mode) *Thread {
	t := &Thread{
		Roots:    make([]models.MessageView, 0, len(msgs)),
		Children: make(map[string][]models.MessageView),
	}

	for _, m := range msgs {
		if m.ParentID != nil && *m.ParentID != "" {
			t.Children[*m.ParentID] = append(t.Children[*m.ParentID], m)
		} else {
			t.Roots = append(t.Roots, m)
		}
	}

	if mode == ModeTop {
		sort.SliceStable(t.Roots, func(i, j int) bool {
			return t.Roots[i].Score > t.Roots[j].Score
		})
	}

	return t
}

// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"strconv"
	"strings"
)

// Key returns the stable identifier of the node,
// the indices of its split joined by "-".
// Within a tree the key is unique;
// across trees it identifies the same clade.
func (n *Node) Key() string {
	var sb strings.Builder
	for i, v := range n.Split {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// LinkKey returns the stable identifier
// of the branch that ends at the node
// with the given key.
func LinkKey(key string) string {
	return "link-" + key
}

// LabelKey returns the stable identifier
// of the label of the leaf
// with the given key.
func LabelKey(key string) string {
	return "label-" + key
}

// ExtensionKey returns the stable identifier
// of the extension line of the leaf
// with the given key.
func ExtensionKey(key string) string {
	return "ext-" + key
}

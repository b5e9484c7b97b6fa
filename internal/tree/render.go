package tree

import (
	"strings"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

// Render writes a box-drawing picture of any binary tree to sb, one node per line. expand returns the label of a
// node and its children; the zero N stands for a missing child.
func Render[N comparable](sb *strings.Builder, root N, expand func(N) (label string, left, right N)) {
	var zero N
	if root == zero {
		return
	}
	printvisit(sb, root, expand, "", "", true, false)
}

func printvisit[N comparable](
	sb *strings.Builder, n N, expand func(N) (string, N, N), prefix, branch string, initial, isMid bool) {
	var zero N
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	label, left, right := expand(n)
	sb.WriteString(label)
	sb.WriteRune('\n')

	if left != zero {
		printvisit(sb, left, expand, prefix, treeLeftBranch, false, right != zero)
	}

	if right != zero {
		printvisit(sb, right, expand, prefix, treeRightBranch, false, false)
	}
}

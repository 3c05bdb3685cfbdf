package figma

// Pre-pass collectors. Unlike the converter's walk these recurse through
// invisible subtrees on purpose: frames and image fills must be discoverable
// even when an ancestor is currently hidden.

// FindFrames returns every frame whose own visibility flag is set, in
// document order (depth-first, pre-order). Ancestor visibility is ignored.
func FindFrames(n *Node) []*Node {
	var frames []*Node
	collectFrames(n, &frames)
	return frames
}

func collectFrames(n *Node, frames *[]*Node) {
	if n.Kind == NodeFrame && n.Visible {
		*frames = append(*frames, n)
	}
	for i := range n.Children {
		collectFrames(&n.Children[i], frames)
	}
}

// CollectImageNodes returns identifiers of nodes carrying at least one
// visible image fill, in document order. A node with several image fills
// contributes its identifier once.
func CollectImageNodes(n *Node) []string {
	var ids []string
	collectImageNodes(n, &ids)
	return ids
}

func collectImageNodes(n *Node, ids *[]string) {
	for i := range n.Fills {
		if n.Fills[i].Kind == PaintImage && n.Fills[i].Visible {
			*ids = append(*ids, n.ID)
			break
		}
	}
	for i := range n.Children {
		collectImageNodes(&n.Children[i], ids)
	}
}

// FrameByName returns the first collected frame with the given display name.
func FrameByName(frames []*Node, name string) *Node {
	for _, f := range frames {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FrameNames returns display names of the given frames, preserving order.
func FrameNames(frames []*Node) []string {
	names := make([]string, 0, len(frames))
	for _, f := range frames {
		names = append(names, f.Name)
	}
	return names
}

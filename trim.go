package retype

// TrimTrailingSpaceDiff drops trailing Missing and Extra steps of single
// spaces, e.g. when the user did or did not type the final blank of the
// sample. It reslices steps and does not modify its elements.
func TrimTrailingSpaceDiff(steps []Step) []Step {
	for l := len(steps); l > 0; l-- {
		switch s := steps[l-1]; {
		case s.Op == Missing && s.Sample.IsSpace():
		case s.Op == Extra && s.User.IsSpace():
		default:
			return steps[:l]
		}
	}
	return steps[:0]
}

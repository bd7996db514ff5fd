package src

func minInt(a int, b int) int {
	if a < b {
		return a
	}
	return b
}

package services

// Medal returns the medal tag for a 1-based rank. Ranks past the podium get
// an empty tag.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	default:
		return ""
	}
}

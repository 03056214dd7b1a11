package filter

// Direction orders a sort ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Less adapts an ascending comparison to the direction. Equal values report
// false either way, which keeps stable sorts stable.
func (d Direction) Less(cmp int) bool {
	if d == Desc {
		return cmp > 0
	}

	return cmp < 0
}

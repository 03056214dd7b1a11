package roster

// Profile describes the column layout of a client roster CSV export.
// Adding support for another tool is just adding a Profile to the
// profiles slice.
type Profile struct {
	Name      string
	NameCol   string
	EmailCol  string
	StatusCol string // optional; empty means the format carries no status
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.NameCol, p.EmailCol}
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles come first to avoid false
// matches.
var profiles = []Profile{
	{
		Name:      "clientdesk",
		NameCol:   "Name",
		EmailCol:  "Email",
		StatusCol: "Status",
	},
	{
		Name:      "pipeline",
		NameCol:   "Client",
		EmailCol:  "E-mail",
		StatusCol: "Stage",
	},
	{
		Name:     "contacts",
		NameCol:  "Full Name",
		EmailCol: "Email Address",
	},
}

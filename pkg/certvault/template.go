package certvault

// DefaultTemplate describes one entry of the seed set. Templates are
// keyed by Name; the seed is create-if-absent so re-running it cannot
// duplicate rows.
type DefaultTemplate struct {
	Name        string
	DisplayName string
	Description string
}

const DefaultOrganizationName = "General Secretariat"

func DefaultTemplates() []DefaultTemplate {
	return []DefaultTemplate{
		{
			Name:        "completion",
			DisplayName: "Certificate of Completion",
			Description: "Completion of a training course or program",
		},
		{
			Name:        "appreciation",
			DisplayName: "Certificate of Appreciation",
			Description: "Recognition for service or contribution",
		},
		{
			Name:        "ordination",
			DisplayName: "Certificate of Ordination",
			Description: "Record of ministerial ordination",
		},
		{
			Name:        "membership",
			DisplayName: "Certificate of Membership",
			Description: "Membership in the organization",
		},
	}
}

package detector

// Priority classes, preserving the partial order spec.md §4.5 requires:
// NAME < PROVIDER_NAME < ADDRESS < DATE < URL/IP < ZIPCODE < FAX <
// MRN/SSN/CREDIT_CARD < DEA/NPI. Gaps are left between classes so a new
// detector can be slotted in without renumbering its neighbors.
const (
	PriorityNameML        = PriorityName - 5
	PriorityName          = 12
	PriorityProviderName  = 15
	PriorityFamilyName    = 15
	PriorityAddress       = 20
	PriorityDate          = 30
	PriorityRelativeDate  = PriorityDate + 10
	PriorityURL           = 50
	PriorityIP            = 50
	PriorityEmail         = 55
	PriorityZIP           = 60
	PriorityFax           = 70
	PriorityPhone         = 65
	PriorityHealthPlan    = 72
	PriorityMRN           = 80
	PrioritySSN           = 80
	PriorityCreditCard    = 80
	PriorityLicense       = 83
	PriorityDevice        = 83
	PriorityVehicle       = 83
	PriorityBiometric     = 83
	PriorityNPI           = 90
	PriorityDEA           = 90
)

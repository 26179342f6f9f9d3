package constants

const (
	MinorPerUnit = 100
	MinorDigits  = 2
)

const (
	MaxDescriptionLen = 200
	MaxNameLen        = 100
)

const (
	ParticularsBroughtDown = "Balance b/d"
	ParticularsCarriedDown = "Balance c/d"
	ParticularsTotal       = "Total"
)

const (
	MaxSafeMinor = 922337203685477580
)

package domain

// Display token formats
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	TimeDisplayFormat = "3:04 PM"    // e.g. "10:00 AM", "2:30 PM"
)

// Defaults applied by the booking flow
const (
	DefaultConsultationType = ConsultationInPerson
	DefaultReason           = "Regular consultation"
	DefaultNotes            = ""
)

// DefaultPatientID is substituted when a list request carries no usable
// patient identifier (absent or the literal "undefined"). This mirrors a
// workaround for a known client bug and is documented API behavior.
const DefaultPatientID = "user123"

// Business validation constants
const (
	MaxReasonLength             = 500
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

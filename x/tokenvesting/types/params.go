package types

// Default parameter values
var (
	DefaultEnforceScheduleOrder = false
)

// Params configures the module.
type Params struct {
	// EnforceScheduleOrder rejects employee schedules at creation unless
	// start < end, start <= cliff <= end and total > 0. When unset, schedules
	// are stored as given and misconfiguration surfaces at claim time.
	EnforceScheduleOrder bool `json:"enforce_schedule_order"`
}

// NewParams creates a new Params instance
func NewParams(enforceScheduleOrder bool) Params {
	return Params{
		EnforceScheduleOrder: enforceScheduleOrder,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultEnforceScheduleOrder)
}

// Validate validates the set of params
func (p Params) Validate() error {
	return nil
}

package domain

import "github.com/m04kA/WeddingSalon-BookingService/pkg/types"

// TimeSlot one of the three fixed daily booking windows
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// AllTimeSlots slots of a day in display order
var AllTimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// IsValid returns true if the slot is one of the fixed values
func (s TimeSlot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

func (s TimeSlot) String() string {
	return string(s)
}

// SlotState tri-state availability of a slot
type SlotState string

const (
	SlotAvailable   SlotState = "available"
	SlotUnavailable SlotState = "unavailable"
	// SlotUnknown the store could not be read, the slot must not be offered
	SlotUnknown SlotState = "unknown"
)

// DayAvailability states of all slots of one date
type DayAvailability struct {
	Date  types.Date
	Slots map[TimeSlot]SlotState
}

// NewDayAvailability returns a result with every slot set to state
func NewDayAvailability(date types.Date, state SlotState) DayAvailability {
	slots := make(map[TimeSlot]SlotState, len(AllTimeSlots))
	for _, s := range AllTimeSlots {
		slots[s] = state
	}
	return DayAvailability{Date: date, Slots: slots}
}

// State returns the state of slot, unknown if it was never set
func (d DayAvailability) State(slot TimeSlot) SlotState {
	if st, ok := d.Slots[slot]; ok {
		return st
	}
	return SlotUnknown
}

// IsKnown returns false if any slot is unknown
func (d DayAvailability) IsKnown() bool {
	for _, s := range AllTimeSlots {
		if d.State(s) == SlotUnknown {
			return false
		}
	}
	return true
}

package checkout

import "fmt"

// Time-slot labels shown to customers and the fixed codes the backend
// scheduling field expects.
const (
	TimeSlotMorningCode   = "1"
	TimeSlotAfternoonCode = "2"
	TimeSlotEveningCode   = "3"

	TimeSlotMorningLabel   = "Mañana (8:00–12:00)"
	TimeSlotAfternoonLabel = "Tarde (13:00–17:00)"
	TimeSlotEveningLabel   = "Noche (18:00–21:00)"
)

var timeSlotCodes = map[string]string{
	TimeSlotMorningLabel:   TimeSlotMorningCode,
	TimeSlotAfternoonLabel: TimeSlotAfternoonCode,
	TimeSlotEveningLabel:   TimeSlotEveningCode,
}

var timeSlotLabels = map[string]string{
	TimeSlotMorningCode:   TimeSlotMorningLabel,
	TimeSlotAfternoonCode: TimeSlotAfternoonLabel,
	TimeSlotEveningCode:   TimeSlotEveningLabel,
}

// TimeSlotCode maps a display label to the backend scheduling code.
// Unrecognized labels fall back to the morning slot.
func TimeSlotCode(label string) string {
	if code, ok := timeSlotCodes[label]; ok {
		return code
	}

	return TimeSlotMorningCode
}

// TimeSlotLabel maps a backend code back to its display label. Unknown
// codes render verbatim as "Turno {code}".
func TimeSlotLabel(code string) string {
	if label, ok := timeSlotLabels[code]; ok {
		return label
	}

	return fmt.Sprintf("Turno %s", code)
}

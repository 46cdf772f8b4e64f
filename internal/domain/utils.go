package domain

import "fmt"

// FormatDegreeInSign converts a longitude's within-sign degree to DMS format.
func FormatDegreeInSign(longitude float64) string {
	return formatDegreesMinutesSeconds(DegreeInSign(longitude))
}

// FormatLongitude converts a full longitude to DMS format.
func FormatLongitude(longitude float64) string {
	return formatDegreesMinutesSeconds(longitude)
}

func formatDegreesMinutesSeconds(decimalDegrees float64) string {
	degrees := int(decimalDegrees)
	remainingMinutes := (decimalDegrees - float64(degrees)) * 60
	minutes := int(remainingMinutes)
	seconds := int((remainingMinutes - float64(minutes)) * 60)
	return fmt.Sprintf("%d°%02d'%02d\"", degrees, minutes, seconds)
}

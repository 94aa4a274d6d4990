package model

// ScoutingField identifies one slot of a scouting entry. The numeric value is its wire position.
type ScoutingField int

const (
	FieldMecanum ScoutingField = iota
	FieldDriverPractice
	FieldTeleOpBalls
	FieldShootingDist
	FieldAutoBalls
	FieldAutoShooting
	FieldAutoPoints
	FieldAutoLeave
	FieldAutoDetails
	FieldPrivateNotes

	scoutingFieldCount
)

var scoutingFieldNames = [scoutingFieldCount]string{
	"mecanum", "driverPractice", "teleOpBalls", "shootingDist", "autoBalls",
	"autoShooting", "autoPoints", "autoLeave", "autoDetails", "privateNotes",
}

func (f ScoutingField) String() string {
	if f < 0 || f >= scoutingFieldCount {
		return "unknown"
	}
	return scoutingFieldNames[f]
}

// ScoutingFields lists every field in wire order.
func ScoutingFields() []ScoutingField {
	out := make([]ScoutingField, scoutingFieldCount)
	for i := range out {
		out[i] = ScoutingField(i)
	}
	return out
}

// ScoutingEntry is one team's scouting report for an event. Checkbox fields are booleans,
// everything else is carried as entered.
type ScoutingEntry struct {
	Mecanum        bool   `json:"mecanum"`
	DriverPractice string `json:"driverPractice"`
	TeleOpBalls    string `json:"teleOpBalls"`
	ShootingDist   string `json:"shootingDist"`
	AutoBalls      string `json:"autoBalls"`
	AutoShooting   string `json:"autoShooting"`
	AutoPoints     string `json:"autoPoints"`
	AutoLeave      bool   `json:"autoLeave"`
	AutoDetails    string `json:"autoDetails"`
	PrivateNotes   string `json:"privateNotes"`
}

// Value returns the value stored in field f.
func (e ScoutingEntry) Value(f ScoutingField) any {
	switch f {
	case FieldMecanum:
		return e.Mecanum
	case FieldDriverPractice:
		return e.DriverPractice
	case FieldTeleOpBalls:
		return e.TeleOpBalls
	case FieldShootingDist:
		return e.ShootingDist
	case FieldAutoBalls:
		return e.AutoBalls
	case FieldAutoShooting:
		return e.AutoShooting
	case FieldAutoPoints:
		return e.AutoPoints
	case FieldAutoLeave:
		return e.AutoLeave
	case FieldAutoDetails:
		return e.AutoDetails
	case FieldPrivateNotes:
		return e.PrivateNotes
	default:
		return ""
	}
}

// Values returns the positional form of the entry, in ScoutingFields order.
func (e ScoutingEntry) Values() []any {
	out := make([]any, 0, scoutingFieldCount)
	for _, f := range ScoutingFields() {
		out = append(out, e.Value(f))
	}
	return out
}

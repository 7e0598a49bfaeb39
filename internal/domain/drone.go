package domain

const (
	// DroneAircraftType is the TYPE-ACFT code for rotorcraft.
	DroneAircraftType = "6"
	// DroneEngineType is the TYPE-ENG code for electric engines.
	DroneEngineType = "10"
)

// IsDrone reports whether an aircraft/engine type pair describes a drone.
// Both codes must match exactly.
func IsDrone(acftType, engType string) bool {
	return acftType == DroneAircraftType && engType == DroneEngineType
}

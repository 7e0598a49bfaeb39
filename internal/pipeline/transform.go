package pipeline

import "github.com/couchcryptid/faa-drone-registry/internal/domain"

// Skip reasons, also used as metric label values.
const (
	reasonMalformed = "malformed"
	reasonNotDrone  = "not_drone"
	reasonNoModel   = "no_model"
)

// ModelIndex maps MFR MDL CODE to drone model references.
type ModelIndex map[string]domain.ModelReference

// Add indexes ref if it describes a drone and reports whether it did.
// A later entry with the same code replaces an earlier one.
func (idx ModelIndex) Add(ref domain.ModelReference) bool {
	if !domain.IsDrone(ref.TypeAcft, ref.TypeEng) {
		return false
	}
	idx[ref.Code] = ref
	return true
}

// JoinActive resolves an active registration against the index. The returned
// reason is non-empty when the row is left out of the report.
func JoinActive(idx ModelIndex, reg domain.ActiveRegistration) (domain.DroneRecord, string, error) {
	if !domain.IsDrone(reg.TypeAircraft, reg.TypeEngine) {
		return domain.DroneRecord{}, reasonNotDrone, nil
	}
	ref, ok := idx[reg.MfrMdlCode]
	if !ok {
		return domain.DroneRecord{}, reasonNoModel, nil
	}
	rec, err := domain.FromActive(reg, ref)
	return rec, "", err
}

// JoinDeregistered resolves a deregistered registration against the index.
// DEREG.txt has no type columns, so membership in the drone-only index is
// the only filter.
func JoinDeregistered(idx ModelIndex, reg domain.DeregisteredRegistration) (domain.DroneRecord, string, error) {
	ref, ok := idx[reg.MfrMdlCode]
	if !ok {
		return domain.DroneRecord{}, reasonNoModel, nil
	}
	rec, err := domain.FromDeregistered(reg, ref)
	return rec, "", err
}

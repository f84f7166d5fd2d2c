package game

import (
	"fmt"
	"strings"
)

// MinTravelCondition is the lowest condition a vehicle can travel in.
const MinTravelCondition = 30

// Vehicle is the survivor's single, single-use car.
type Vehicle struct {
	// Current is the vehicle name, empty when there is none.
	Current        string
	Condition      int
	PartsCollected []string
	// PartsInstalled maps a location to the parts fitted there.
	PartsInstalled map[string][]string
}

// partValues is matched in order; unlisted parts are worth 10.
var partValues = []struct {
	parts []string
	value int
}{
	{[]string{"car battery", "alternator"}, 30},
	{[]string{"spark plugs", "brake pads"}, 20},
	{[]string{"motor oil", "transmission fluid"}, 15},
}

// PartValue returns how much condition a part restores.
func PartValue(part string) int {
	for _, row := range partValues {
		for _, p := range row.parts {
			if p == part {
				return row.value
			}
		}
	}
	return 10
}

// MissingPartsError lists selected parts that are not in the inventory.
type MissingPartsError struct {
	Parts []string
}

func (e *MissingPartsError) Error() string {
	return "Missing parts: " + strings.Join(e.Parts, ", ")
}

func (e *MissingPartsError) Unwrap() error {
	return ErrMissingParts
}

// RepairTier grades a finished repair.
type RepairTier int

const (
	RepairFailed RepairTier = iota
	RepairPartial
	RepairComplete
)

// RepairResult describes a repair that consumed parts.
type RepairResult struct {
	Vehicle   string
	Condition int
	// Installed lists every part fitted at the location so far.
	Installed []string
	Tier      RepairTier
}

// Roadworthy reports whether the repaired vehicle can make a long trip.
func (r RepairResult) Roadworthy() bool {
	return r.Tier != RepairFailed
}

// Message renders the repair outcome.
func (r RepairResult) Message() string {
	switch r.Tier {
	case RepairComplete:
		return fmt.Sprintf("Vehicle successfully repaired! Condition: %d%%\nParts installed: %s",
			r.Condition, strings.Join(r.Installed, ", "))
	case RepairPartial:
		return fmt.Sprintf("Vehicle partially repaired. Condition: %d%% - might break down soon.\nParts installed: %s",
			r.Condition, strings.Join(r.Installed, ", "))
	default:
		return fmt.Sprintf("Repair failed. Vehicle condition only %d%% - not roadworthy.\nParts installed: %s",
			r.Condition, strings.Join(r.Installed, ", "))
	}
}

// RepairVehicle installs parts from the inventory into the vehicle at location.
// Nothing is consumed unless every part is owned. The resulting condition is
// the sum of the installed part values, capped at 100.
func (s *State) RepairVehicle(parts []string, location string) (RepairResult, error) {
	if len(parts) == 0 {
		return RepairResult{}, ErrNoPartsSelected
	}

	// Count requirements so selecting the same part twice needs two in the bag.
	need := map[string]int{}
	var missing []string
	for _, p := range parts {
		need[p]++
		if s.Inventory.Count(p) < need[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return RepairResult{}, &MissingPartsError{Parts: missing}
	}

	total := 0
	for _, p := range parts {
		if err := s.Inventory.Remove(p); err != nil {
			return RepairResult{}, err
		}
		total += PartValue(p)
	}
	if total > 100 {
		total = 100
	}

	if s.Vehicle.PartsInstalled == nil {
		s.Vehicle.PartsInstalled = map[string][]string{}
	}
	s.Vehicle.PartsInstalled[location] = append(s.Vehicle.PartsInstalled[location], parts...)
	s.Vehicle.Current = fmt.Sprintf("Repaired Car (%s)", location)
	s.Vehicle.Condition = total

	res := RepairResult{
		Vehicle:   s.Vehicle.Current,
		Condition: total,
		Installed: append([]string(nil), s.Vehicle.PartsInstalled[location]...),
	}
	switch {
	case total >= 60:
		res.Tier = RepairComplete
	case total >= MinTravelCondition:
		res.Tier = RepairPartial
	default:
		res.Tier = RepairFailed
	}
	return res, nil
}

// CanTravelLong reports whether there is a vehicle fit for a long trip.
func (s *State) CanTravelLong() bool {
	return s.Vehicle.Current != "" && s.Vehicle.Condition >= MinTravelCondition
}

// UseVehicleForTravel spends the vehicle on one long trip. It breaks down for good.
func (s *State) UseVehicleForTravel() error {
	if !s.CanTravelLong() {
		return ErrNoVehicle
	}
	s.Vehicle.Current = ""
	s.Vehicle.Condition = 0
	return nil
}

// CollectPart records a picked up vehicle part.
func (s *State) CollectPart(part string) {
	if IsVehiclePart(part) {
		s.Vehicle.PartsCollected = append(s.Vehicle.PartsCollected, part)
	}
}

var vehicleParts = NewSet(
	"car battery", "alternator", "spark plugs", "brake pads", "motor oil",
	"transmission fluid", "radiator", "brake fluid", "coolant", "can of motor oil",
)

// IsVehiclePart reports whether an item can be fitted to a car.
func IsVehiclePart(name string) bool {
	return vehicleParts.Has(name)
}

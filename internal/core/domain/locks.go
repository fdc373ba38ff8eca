package domain

import (
	"sort"
	"strings"
)

// EmptyCoordinateKey is the placeholder key in the unified lock file that
// aggregates every configuration with zero locked coordinates.
const EmptyCoordinateKey = "empty"

// ConfigurationLocks is the in-memory view of lock state: each configuration
// name maps to the dependency coordinates it requires. Coordinates are opaque
// strings; this component never validates their syntax.
type ConfigurationLocks map[string][]string

// CoordinateUsage is the on-disk-oriented inverse view: each dependency
// coordinate maps to the sorted set of configuration names requiring it.
// Configurations without coordinates are gathered under EmptyCoordinateKey.
type CoordinateUsage map[string][]string

// ToUsage inverts the configuration-centric view into the coordinate-centric
// one. Configuration lists in the result are sorted and deduplicated, so the
// output is independent of map iteration order.
func (l ConfigurationLocks) ToUsage() CoordinateUsage {
	usage := make(CoordinateUsage, len(l))
	for configuration, coordinates := range l {
		if len(coordinates) == 0 {
			usage[EmptyCoordinateKey] = append(usage[EmptyCoordinateKey], configuration)
			continue
		}
		for _, coordinate := range coordinates {
			usage[coordinate] = append(usage[coordinate], configuration)
		}
	}
	for coordinate, configurations := range usage {
		usage[coordinate] = sortUnique(configurations)
	}
	return usage
}

// ToLocks expands the coordinate-centric view back into the
// configuration-centric one. Entries under EmptyCoordinateKey become
// configurations with an empty coordinate list; every other key accumulates
// into the lists of the configurations it names. Each resulting coordinate
// list is sorted, so the outcome does not depend on on-disk line order.
func (u CoordinateUsage) ToLocks() ConfigurationLocks {
	locks := make(ConfigurationLocks, len(u))
	for coordinate, configurations := range u {
		if coordinate == EmptyCoordinateKey {
			for _, configuration := range configurations {
				if _, ok := locks[configuration]; !ok {
					locks[configuration] = []string{}
				}
			}
			continue
		}
		for _, configuration := range configurations {
			locks[configuration] = append(locks[configuration], coordinate)
		}
	}
	for configuration, coordinates := range locks {
		sort.Strings(coordinates)
		locks[configuration] = coordinates
	}
	return locks
}

// SortedKeys returns the coordinate keys in lexicographic order, with
// EmptyCoordinateKey forced last regardless of its lexical position.
func (u CoordinateUsage) SortedKeys() []string {
	keys := make([]string, 0, len(u))
	hasEmpty := false
	for key := range u {
		if key == EmptyCoordinateKey {
			hasEmpty = true
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if hasEmpty {
		keys = append(keys, EmptyCoordinateKey)
	}
	return keys
}

// Configurations returns the configuration names present in the lock state,
// sorted.
func (l ConfigurationLocks) Configurations() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortUnique(values []string) []string {
	sort.Strings(values)
	out := values[:0]
	var prev string
	for i, v := range values {
		if i > 0 && v == prev {
			continue
		}
		out = append(out, v)
		prev = v
	}
	return out
}

// JoinConfigurations renders a configuration set the way the unified file
// stores it: comma-joined, no spaces.
func JoinConfigurations(configurations []string) string {
	return strings.Join(configurations, ",")
}

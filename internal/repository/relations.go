package repository

import (
	"fmt"
	"strings"
)

// Relations is a relation-loading policy: the dotted relation paths that a
// read eagerly loads, e.g. "team.businessAddress". Listing a nested path
// implies its parent.
type Relations []string

// Default policies per entity. Address, Class and Race load nothing; race
// results are always queried separately.
var (
	NoRelations         = Relations{}
	AddressRelations    = NoRelations
	ClassRelations      = NoRelations
	RaceRelations       = NoRelations
	CarRelations        = Relations{"class", "team", "team.businessAddress"}
	DriverRelations     = Relations{"homeAddress", "managementAddress", "teams", "teams.businessAddress"}
	TeamRelations       = Relations{"businessAddress", "cars", "cars.class", "drivers", "drivers.homeAddress", "drivers.managementAddress"}
	RaceResultRelations = Relations{"race", "car", "car.class", "driver", "driver.homeAddress", "driver.managementAddress", "class"}
)

// relationNames lists the direct relations each entity can load.
var relationNames = map[string][]string{
	"address":    nil,
	"class":      nil,
	"race":       nil,
	"car":        {"class", "team"},
	"driver":     {"homeAddress", "managementAddress", "teams"},
	"team":       {"businessAddress", "cars", "drivers"},
	"raceResult": {"race", "car", "driver", "class"},
}

// Has reports whether the policy loads the direct relation name, either
// explicitly or through a nested path below it.
func (r Relations) Has(name string) bool {
	for _, path := range r {
		if path == name || strings.HasPrefix(path, name+".") {
			return true
		}
	}
	return false
}

// Sub returns the paths nested below name with the "name." prefix removed.
func (r Relations) Sub(name string) Relations {
	var sub Relations
	prefix := name + "."
	for _, path := range r {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			sub = append(sub, rest)
		}
	}
	return sub
}

// Heads returns the distinct direct relations named by the policy, in order.
func (r Relations) Heads() []string {
	seen := make(map[string]bool, len(r))
	var heads []string
	for _, path := range r {
		head, _, _ := strings.Cut(path, ".")
		if !seen[head] {
			seen[head] = true
			heads = append(heads, head)
		}
	}
	return heads
}

// check rejects relations that entity cannot load.
func (r Relations) check(entity string) error {
	allowed := relationNames[entity]
	for _, head := range r.Heads() {
		if !contains(allowed, head) {
			return fmt.Errorf("unknown relation %q for %s", head, entity)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

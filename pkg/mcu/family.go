// Package mcu maps microcontroller part names to their device family.
// Families drive which leg of the validation rulebook applies.
package mcu

import (
	"sort"
	"strings"
)

// Family identifies an STM32 device family by its name prefix.
type Family string

// Known families. Matching is longest-prefix, so STM32MP13 wins over
// STM32MP1 for parts in that series.
const (
	STM32C0   Family = "STM32C0"
	STM32F0   Family = "STM32F0"
	STM32F1   Family = "STM32F1"
	STM32F2   Family = "STM32F2"
	STM32F3   Family = "STM32F3"
	STM32F4   Family = "STM32F4"
	STM32F7   Family = "STM32F7"
	STM32L0   Family = "STM32L0"
	STM32L1   Family = "STM32L1"
	STM32L4   Family = "STM32L4"
	STM32L5   Family = "STM32L5"
	STM32H5   Family = "STM32H5"
	STM32H7   Family = "STM32H7"
	STM32WB   Family = "STM32WB"
	STM32WBA  Family = "STM32WBA"
	STM32WL   Family = "STM32WL"
	STM32G0   Family = "STM32G0"
	STM32GK   Family = "STM32GK"
	STM32G4   Family = "STM32G4"
	STM32MP1  Family = "STM32MP1"
	STM32MP13 Family = "STM32MP13"
	STM32MP2  Family = "STM32MP2"
	STM32U0   Family = "STM32U0"
	STM32U5   Family = "STM32U5"
	STM32N6   Family = "STM32N6"
)

// byLength holds all families sorted longest prefix first.
var byLength = func() []Family {
	all := []Family{
		STM32C0, STM32F0, STM32F1, STM32F2, STM32F3, STM32F4, STM32F7,
		STM32L0, STM32L1, STM32L4, STM32L5, STM32H5, STM32H7,
		STM32WB, STM32WBA, STM32WL,
		STM32G0, STM32GK, STM32G4,
		STM32MP1, STM32MP13, STM32MP2,
		STM32U0, STM32U5, STM32N6,
	}
	sort.SliceStable(all, func(i, j int) bool { return len(all[i]) > len(all[j]) })
	return all
}()

// FamilyOf returns the family for a part name like "STM32L552ZETxQ".
// ok is false for names outside the known table.
func FamilyOf(part string) (Family, bool) {
	for _, f := range byLength {
		if strings.HasPrefix(part, string(f)) {
			return f, true
		}
	}
	return "", false
}

// TrustZone reports whether the family supports the secure/non-secure
// project split.
func (f Family) TrustZone() bool {
	return f == STM32L5 || f == STM32U5
}

// MultiCore reports whether the family uses the multi-CPU sub-project
// topology.
func (f Family) MultiCore() bool {
	return f == STM32H7
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

func runSummarize(cmd *cobra.Command, args []string) error {
	path := args[0]

	list, err := loadPeakList(path)
	if err != nil {
		return err
	}

	fmt.Printf("Peak list: %s\n", list.Name)
	for _, src := range list.Sources() {
		fmt.Printf("Source: %s\n", src)
	}
	fmt.Printf("Rows: %d\n", list.NumRows())

	first := true
	var mzMin, mzMax, rtMin, rtMax, hMin, hMax float64
	patterns := 0
	charges := make(map[int]int)
	for _, row := range list.Rows() {
		for _, src := range list.Sources() {
			p, ok := row.Peak(src)
			if !ok {
				continue
			}
			if first {
				mzMin, mzMax = p.MZ, p.MZ
				rtMin, rtMax = p.RT, p.RT
				hMin, hMax = p.Height, p.Height
				first = false
			} else {
				mzMin = min(mzMin, p.MZ)
				mzMax = max(mzMax, p.MZ)
				rtMin = min(rtMin, p.RT)
				rtMax = max(rtMax, p.RT)
				hMin = min(hMin, p.Height)
				hMax = max(hMax, p.Height)
			}
			if p.Pattern != nil {
				patterns++
			}
			if p.Charge > 0 {
				charges[p.Charge]++
			}
		}
	}

	if !first {
		fmt.Printf("m/z range: %g - %g\n", core.RoundFloat(mzMin, 4), core.RoundFloat(mzMax, 4))
		fmt.Printf("RT range: %g - %g\n", core.RoundFloat(rtMin, 2), core.RoundFloat(rtMax, 2))
		fmt.Printf("Height range: %g - %g\n", core.RoundFloat(hMin, 1), core.RoundFloat(hMax, 1))
	}
	fmt.Printf("Rows with isotope patterns: %d\n", patterns)
	for charge := 1; charge <= maxChargeSeen(charges); charge++ {
		if n := charges[charge]; n > 0 {
			fmt.Printf("Charge %d: %d rows\n", charge, n)
		}
	}
	printNeutralMassRange(list)

	if methods := list.AppliedMethods(); len(methods) > 0 {
		fmt.Println("Processing history:")
		for _, m := range methods {
			fmt.Printf("  %s (%s)\n", m.Description, m.Parameters)
		}
	}

	return nil
}

// printNeutralMassRange reports the neutral-mass range of the rows whose
// charge state was resolved.
func printNeutralMassRange(list *core.PeakList) {
	first := true
	var massMin, massMax float64
	for _, row := range list.Rows() {
		for _, src := range list.Sources() {
			p, ok := row.Peak(src)
			if !ok || p.Charge < 1 {
				continue
			}
			mass := core.NeutralMass(p.MZ, p.Charge)
			if first {
				massMin, massMax = mass, mass
				first = false
			} else {
				massMin = min(massMin, mass)
				massMax = max(massMax, mass)
			}
		}
	}
	if !first {
		fmt.Printf("Neutral mass range (charged rows): %g - %g\n",
			core.RoundFloat(massMin, 4), core.RoundFloat(massMax, 4))
	}
}

func maxChargeSeen(charges map[int]int) int {
	highest := 0
	for c := range charges {
		if c > highest {
			highest = c
		}
	}
	return highest
}

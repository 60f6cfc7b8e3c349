// Package macro assembles Tecplot macro scripts for the HDF5 loader.
// Building the text is kept separate from file writing so the grammar
// can be tested without touching the file system.
package macro

import (
	"fmt"
	"strconv"
	"strings"
)

// magic is the version line Tecplot requires at the top of every macro.
const magic = "#!MC 1410"

// Params describes one container file for the loader.
type Params struct {
	// ContainerPath is the absolute path of the HDF5 container.
	ContainerPath string
	// Variables lists the dataset names in declaration order. The order
	// matters: Tecplot binds the first three variables to the X, Y and Z
	// axes of the initial plot.
	Variables []string
	// Zones is the number of time-step groups (Z0..Z(Zones-1)) in a
	// transient container, or 0 for static data.
	Zones int
	// TimeStart and TimeDelta annotate the strand assignment of a
	// transient container. Ignored when Zones is 0.
	TimeStart float64
	TimeDelta float64
}

// Transient reports whether the parameters describe time-resolved data.
func (p Params) Transient() bool { return p.Zones > 0 }

// ZonePaths returns the group paths "/Z0/" .. "/Z(n-1)/" in increasing
// order, as the loader's -D argument expects them.
func ZonePaths(n int) []string {
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("/Z%d/", i)
	}
	return paths
}

// Build returns the complete macro text for p.
//
// Static containers get a single $!READDATASET command listing the
// variables by name plus a 3D Cartesian plot with the first three
// variables on the axes. Transient containers additionally list every
// zone group, repeat the container path once per zone and append a
// Strand Editor command binding all zones into one animated sequence.
func Build(p Params) string {
	var b strings.Builder
	b.WriteString(magic)
	b.WriteString("\n")
	b.WriteString("$!READDATASET  '")
	b.WriteString(strings.Join(readTokens(p), " "))
	b.WriteString("'\n")

	b.WriteString("  DATASETREADER = 'HDF5 Loader'\n")
	b.WriteString("  READDATAOPTION = NEW\n")
	b.WriteString("  RESETSTYLE = YES\n")
	b.WriteString("  ASSIGNSTRANDIDS = NO\n")
	b.WriteString("  INITIALPLOTTYPE = CARTESIAN3D\n")
	b.WriteString("  INITIALPLOTFIRSTZONEONLY = NO\n")
	b.WriteString("  ADDZONESTOEXISTINGSTRANDS = NO\n")
	b.WriteString("  VARLOADMODE = BYNAME\n")
	b.WriteString("$!THREEDAXIS XDETAIL{VARNUM = 1}\n")
	b.WriteString("$!THREEDAXIS YDETAIL{VARNUM = 2}\n")
	b.WriteString("$!THREEDAXIS ZDETAIL{VARNUM = 3}\n")

	if p.Transient() {
		b.WriteString("$!EXTENDEDCOMMAND\n")
		b.WriteString("   COMMANDPROCESSORID = 'Strand Editor'\n")
		b.WriteString("COMMAND = '" + strandCommand(p) + "'\n")
	}
	return b.String()
}

// readTokens builds the argument list of the $!READDATASET command.
func readTokens(p Params) []string {
	var tokens []string
	if p.Transient() {
		tokens = append(tokens, quote("-F"), quote(strconv.Itoa(p.Zones)))
		for i := 0; i < p.Zones; i++ {
			tokens = append(tokens, quote(p.ContainerPath))
		}
		tokens = append(tokens, quote("-D"), quote(strconv.Itoa(p.Zones)))
		for _, zp := range ZonePaths(p.Zones) {
			tokens = append(tokens, quote(zp))
		}
		tokens = append(tokens, quote("-G"), quote(strconv.Itoa(len(p.Variables))))
	} else {
		tokens = append(tokens, quote("-F"), quote("1"), p.ContainerPath)
		tokens = append(tokens, quote("-D"), quote(strconv.Itoa(len(p.Variables))))
	}
	for _, name := range p.Variables {
		tokens = append(tokens, quote(name))
	}
	tokens = append(tokens, quote("-K"), quote("1"), quote("1"), quote("1"))
	return tokens
}

// strandCommand builds the Strand Editor command string that groups all
// zones into one strand with automatic solution times.
func strandCommand(p Params) string {
	return fmt.Sprintf(
		"ZoneSet=1-%d;MultiZonesPerTime=TRUE;ZoneGrouping=Time;"+
			"GroupSize=%d;AssignStrands=TRUE;StrandValue=%d;"+
			"AssignSolutionTime=TRUE;TimeValue=%s;DeltaValue=%s;TimeOption=Automatic;",
		p.Zones, p.Zones, p.Zones,
		formatTime(p.TimeStart), formatTime(p.TimeDelta),
	)
}

// formatTime renders a time scalar with the fewest digits that round-trip.
func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func quote(s string) string { return `"` + s + `"` }

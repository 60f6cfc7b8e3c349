// Package tecplot converts in-memory numeric arrays into an HDF5
// container laid out for Tecplot's HDF5 loader, together with a .mcr
// macro script that tells Tecplot how to load it.
//
// Static data becomes one root-level dataset per variable. Transient
// data (a designated time axis) becomes one group per time step, Z0 up
// to Z(nt-1), each holding one dataset per variable; variables of lower
// rank are duplicated into every step group. The macro loads the
// container by variable name, binds the first three variables to the
// axes of a 3D Cartesian plot and, for transient data, groups all zones
// into one animated strand:
//
//	tec360ex model.mcr
package tecplot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scigolib/hdf5"

	"github.com/matthiasprobst/tecplot-tools/internal/macro"
)

// maxSupportedRank is the highest array rank the exporter accepts:
// time-resolved 3D data, (nt, nz, ny, nx).
const maxSupportedRank = 4

// macroExt is the extension of the companion macro file.
const macroExt = ".mcr"

// Result holds the paths produced by Export.
type Result struct {
	// ContainerPath is the absolute path of the HDF5 container.
	ContainerPath string
	// MacroPath is the absolute path of the companion macro, or empty
	// when macro writing was disabled with WithoutMacro.
	MacroPath string
}

type exportConfig struct {
	transient  bool
	timeAxis   int
	timeStart  float64
	timeDelta  float64
	writeMacro bool
}

// ExportOption configures Export.
type ExportOption func(*exportConfig)

// WithTimeAxis marks the data as transient and designates which axis of
// the maximum-rank arrays holds the time steps.
func WithTimeAxis(axis int) ExportOption {
	return func(cfg *exportConfig) {
		cfg.transient = true
		cfg.timeAxis = axis
	}
}

// WithTimeStart sets the solution time of the first zone. Default 0.
// Only meaningful together with WithTimeAxis.
func WithTimeStart(t float64) ExportOption {
	return func(cfg *exportConfig) { cfg.timeStart = t }
}

// WithTimeDelta sets the solution-time delta between zones. Default 1.
// Only meaningful together with WithTimeAxis.
func WithTimeDelta(dt float64) ExportOption {
	return func(cfg *exportConfig) { cfg.timeDelta = dt }
}

// WithoutMacro skips writing the companion macro file. The returned
// Result then has an empty MacroPath.
func WithoutMacro() ExportOption {
	return func(cfg *exportConfig) { cfg.writeMacro = false }
}

// Export writes the variables to an HDF5 container at path and, unless
// disabled, a Tecplot macro next to it (same path with the extension
// replaced by .mcr).
//
// path is resolved to an absolute path before use. Tecplot's HDF5
// loader only recognizes containers with a .h5 extension; Export does
// not enforce that.
//
// Validation covers the rank bound (1..4) and, for transient data, the
// time-axis bounds. Spatial shapes are not cross-checked between
// variables; callers are responsible for supplying arrays on a common
// coordinate space. A ValidationError is returned before any file is
// touched; failures during writing are returned as a StorageError and
// may leave a partial container behind.
//
// Example:
//
//	vars := tecplot.NewVariableSet()
//	vars.Add("X", x)
//	vars.Add("Y", y)
//	vars.Add("Z", z)
//	vars.Add("pressure", p) // shape (nt, nz, ny, nx)
//	res, err := tecplot.Export("run.h5", vars,
//		tecplot.WithTimeAxis(0), tecplot.WithTimeDelta(0.5))
func Export(path string, vars *VariableSet, opts ...ExportOption) (Result, error) {
	cfg := exportConfig{timeDelta: 1, writeMacro: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if vars == nil || vars.Len() == 0 {
		return Result{}, validationErrorf("variable set is empty")
	}
	maxRank := vars.maxRank()
	if maxRank > maxSupportedRank {
		return Result{}, validationErrorf(
			"rank too high: max rank is %d, which describes time-resolved 3D data (nt, nz, ny, nx)",
			maxSupportedRank)
	}

	nt := 0
	if cfg.transient {
		if cfg.timeAxis < 0 || cfg.timeAxis >= maxRank {
			return Result{}, validationErrorf(
				"time axis %d out of range for rank-%d data", cfg.timeAxis, maxRank)
		}
		// The first variable attaining the maximum rank defines the
		// step count. At least one such variable exists since maxRank
		// is computed from the set.
		for _, name := range vars.Names() {
			if a := vars.Get(name); a.Rank() == maxRank {
				nt = a.Shape()[cfg.timeAxis]
				break
			}
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, &StorageError{Path: path, Err: err}
	}

	if err := writeContainer(abs, vars, cfg, maxRank, nt); err != nil {
		return Result{}, err
	}

	res := Result{ContainerPath: abs}
	if !cfg.writeMacro {
		return res, nil
	}

	res.MacroPath = macroPath(abs)
	text := macro.Build(macro.Params{
		ContainerPath: abs,
		Variables:     vars.Names(),
		Zones:         nt,
		TimeStart:     cfg.timeStart,
		TimeDelta:     cfg.timeDelta,
	})
	if err := os.WriteFile(res.MacroPath, []byte(text), 0o644); err != nil {
		return Result{}, &StorageError{Path: res.MacroPath, Err: err}
	}
	return res, nil
}

// writeContainer performs the container write phase. The file handle is
// scoped to this function: it is closed on every exit path, so the
// macro phase never starts with the container still open.
func writeContainer(path string, vars *VariableSet, cfg exportConfig, maxRank, nt int) (err error) {
	fw, err := hdf5.CreateForWrite(path, hdf5.CreateTruncate)
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = &StorageError{Path: path, Err: cerr}
		}
	}()

	if !cfg.transient {
		for _, name := range vars.Names() {
			if werr := writeDataset(fw, "/"+name, vars.Get(name)); werr != nil {
				return &StorageError{Path: path, Err: werr}
			}
		}
		return nil
	}

	for it := 0; it < nt; it++ {
		group := fmt.Sprintf("/Z%d", it)
		if _, gerr := fw.CreateGroup(group); gerr != nil {
			return &StorageError{Path: path, Err: gerr}
		}
		for _, name := range vars.Names() {
			a := vars.Get(name)
			if a.Rank() == maxRank {
				slice, terr := a.Take(cfg.timeAxis, it)
				if terr != nil {
					return &StorageError{Path: path, Err: terr}
				}
				a = slice
			}
			if werr := writeDataset(fw, group+"/"+name, a); werr != nil {
				return &StorageError{Path: path, Err: werr}
			}
		}
	}
	return nil
}

// writeDataset creates one dataset at path and writes the array into it.
func writeDataset(fw *hdf5.FileWriter, path string, a *Array) error {
	dims := make([]uint64, a.Rank())
	for i, d := range a.Shape() {
		dims[i] = uint64(d)
	}
	ds, err := fw.CreateDataset(path, datasetType(a.Kind()), dims)
	if err != nil {
		return fmt.Errorf("create dataset %s: %w", path, err)
	}
	if err := ds.Write(a.data); err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	return nil
}

// datasetType maps an element kind to the HDF5 datatype.
func datasetType(k Kind) hdf5.Datatype {
	switch k {
	case Float32:
		return hdf5.Float32
	case Int32:
		return hdf5.Int32
	case Int64:
		return hdf5.Int64
	default:
		return hdf5.Float64
	}
}

// macroPath derives the macro file path from the container path by
// replacing the extension with .mcr, or appending it when the container
// path has none.
func macroPath(containerPath string) string {
	ext := filepath.Ext(containerPath)
	if ext == "" {
		return containerPath + macroExt
	}
	return strings.TrimSuffix(containerPath, ext) + macroExt
}

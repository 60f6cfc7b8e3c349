// Package main provides the tecexport command-line utility.
// It generates a sample Tecplot HDF5 export (demo) and prints the
// structure of an existing container (inspect).
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/scigolib/hdf5"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	tecplot "github.com/matthiasprobst/tecplot-tools"
)

func main() {
	root := &cobra.Command{
		Use:           "tecexport",
		Short:         "Export numeric arrays to Tecplot-ready HDF5 containers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(demoCommand(), inspectCommand())

	if err := root.Execute(); err != nil {
		log.Fatalf("tecexport: %v", err)
	}
}

type demoFlags struct {
	out       string
	steps     int
	transient bool
	timeDelta float64
}

func (f *demoFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.out, "out", "o", "demo.h5", "output container path")
	fs.IntVar(&f.steps, "steps", 4, "number of time steps (with --transient)")
	fs.BoolVar(&f.transient, "transient", false, "generate time-resolved data")
	fs.Float64Var(&f.timeDelta, "time-delta", 0.5, "solution-time delta between zones")
}

func demoCommand() *cobra.Command {
	flags := &demoFlags{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a sample channel-flow field and export it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars, opts, err := demoVariables(flags)
			if err != nil {
				return err
			}
			res, err := tecplot.Export(flags.out, vars, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "container:", res.ContainerPath)
			if res.MacroPath != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "macro:    ", res.MacroPath)
				fmt.Fprintln(cmd.OutOrStdout(), "load with: tec360ex", res.MacroPath)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

// demoVariables builds a small channel-flow field: meshgrid coordinates
// plus sine/cosine velocity components, optionally as a traveling wave
// over the requested number of time steps.
func demoVariables(flags *demoFlags) (*tecplot.VariableSet, []tecplot.ExportOption, error) {
	x, err := tecplot.Linspace(0, 40, 41)
	if err != nil {
		return nil, nil, err
	}
	y, err := tecplot.Linspace(0, 10, 21)
	if err != nil {
		return nil, nil, err
	}
	z, err := tecplot.Linspace(0, 5, 7)
	if err != nil {
		return nil, nil, err
	}

	grids, err := tecplot.Meshgrid(z, y, x)
	if err != nil {
		return nil, nil, err
	}
	zz, yy, xx := grids[0], grids[1], grids[2]

	nz, ny := z.Len(), y.Len()
	xvals := x.Float64s()

	vars := tecplot.NewVariableSet()
	for _, v := range []struct {
		name string
		arr  *tecplot.Array
	}{{"X", xx}, {"Y", yy}, {"Z", zz}} {
		if err := vars.Add(v.name, v.arr); err != nil {
			return nil, nil, err
		}
	}

	var opts []tecplot.ExportOption
	if flags.transient {
		u, err := waveField(flags.steps, nz, ny, xvals, flags.timeDelta)
		if err != nil {
			return nil, nil, err
		}
		if err := vars.Add("x_velocity", u); err != nil {
			return nil, nil, err
		}
		opts = append(opts,
			tecplot.WithTimeAxis(0),
			tecplot.WithTimeDelta(flags.timeDelta))
		return vars, opts, nil
	}

	u, v, w, err := steadyField(nz, ny, xvals)
	if err != nil {
		return nil, nil, err
	}
	for _, c := range []struct {
		name string
		arr  *tecplot.Array
	}{{"x_velocity", u}, {"y_velocity", v}, {"z_velocity", w}} {
		if err := vars.Add(c.name, c.arr); err != nil {
			return nil, nil, err
		}
	}
	return vars, opts, nil
}

func steadyField(nz, ny int, xvals []float64) (u, v, w *tecplot.Array, err error) {
	nx := len(xvals)
	ud := make([]float64, nz*ny*nx)
	vd := make([]float64, nz*ny*nx)
	wd := make([]float64, nz*ny*nx)
	for i := range ud {
		xv := xvals[i%nx]
		ud[i] = 1
		vd[i] = math.Sin(xv)
		wd[i] = math.Cos(xv)
	}
	if u, err = tecplot.NewArray(ud, nz, ny, nx); err != nil {
		return nil, nil, nil, err
	}
	if v, err = tecplot.NewArray(vd, nz, ny, nx); err != nil {
		return nil, nil, nil, err
	}
	if w, err = tecplot.NewArray(wd, nz, ny, nx); err != nil {
		return nil, nil, nil, err
	}
	return u, v, w, nil
}

func waveField(steps, nz, ny int, xvals []float64, dt float64) (*tecplot.Array, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1 (got %d)", steps)
	}
	nx := len(xvals)
	data := make([]float64, steps*nz*ny*nx)
	for i := range data {
		it := i / (nz * ny * nx)
		xv := xvals[i%nx]
		data[i] = math.Sin(xv - float64(it)*dt)
	}
	return tecplot.NewArray(data, steps, nz, ny, nx)
}

func inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.h5>",
		Short: "Print the group/dataset tree of an HDF5 container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := hdf5.Open(args[0])
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); cerr != nil {
					log.Printf("close %s: %v", args[0], cerr)
				}
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, args[0])
			f.Walk(func(path string, obj hdf5.Object) {
				switch obj.(type) {
				case *hdf5.Group:
					fmt.Fprintf(out, "  GROUP   %s\n", path)
				case *hdf5.Dataset:
					fmt.Fprintf(out, "  DATASET %s\n", path)
				}
			})
			return nil
		},
	}
}

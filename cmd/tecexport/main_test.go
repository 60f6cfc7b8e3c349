package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoVariables_Steady(t *testing.T) {
	vars, opts, err := demoVariables(&demoFlags{steps: 4, timeDelta: 0.5})
	require.NoError(t, err)
	require.Empty(t, opts, "steady demo data carries no time options")

	require.Equal(t,
		[]string{"X", "Y", "Z", "x_velocity", "y_velocity", "z_velocity"},
		vars.Names())

	// Coordinates and velocity components share the (nz, ny, nx) grid.
	for _, name := range vars.Names() {
		require.Equal(t, []int{7, 21, 41}, vars.Get(name).Shape(), "shape of %s", name)
	}
}

func TestDemoVariables_Transient(t *testing.T) {
	vars, opts, err := demoVariables(&demoFlags{steps: 3, transient: true, timeDelta: 0.5})
	require.NoError(t, err)
	require.Len(t, opts, 2, "time axis and time delta options")

	require.Equal(t, []string{"X", "Y", "Z", "x_velocity"}, vars.Names())
	require.Equal(t, []int{3, 7, 21, 41}, vars.Get("x_velocity").Shape(),
		"velocity carries the leading time axis")
	require.Equal(t, []int{7, 21, 41}, vars.Get("X").Shape(),
		"coordinates stay static in time")
}

func TestDemoVariables_RejectsZeroSteps(t *testing.T) {
	_, _, err := demoVariables(&demoFlags{steps: 0, transient: true, timeDelta: 0.5})
	require.Error(t, err)
}

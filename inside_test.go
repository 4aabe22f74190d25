package shapes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInside_PolygonParity(t *testing.T) {
	diamond := mustPolygon(t, Pt(-1, -0.5), Pt(0, 0.5), Pt(1, -0.5), Pt(0, -1.5))

	for angle := Deg(0); angle <= 360; angle += 10 {
		require.True(t, Inside(diamond, Pt(0, 0), angle), "angle %v", angle)
		require.False(t, Inside(diamond, Pt(1.05, 0), angle), "angle %v", angle)
	}
}

func TestInside_Circle(t *testing.T) {
	circle := CircleOf(0, 0, 1)

	for angle := Deg(0); angle <= 360; angle += 10 {
		require.True(t, Inside(circle, Pt(0, 0), angle), "angle %v", angle)
		require.True(t, Inside(circle, Pt(0.5, 0.3), angle), "angle %v", angle)
		require.False(t, Inside(circle, Pt(2, 0), angle), "angle %v", angle)
		require.False(t, Inside(circle, Pt(0, -1.01), angle), "angle %v", angle)
	}

	// a boundary point counts as inside
	require.True(t, Inside(circle, Pt(1, 0), 180))
}

func TestInside_PointAndLineContainers(t *testing.T) {
	require.True(t, Inside(Pt(1, 2), Pt(1, 2), 30))
	require.False(t, Inside(Pt(1, 2), Pt(1, 3), 30))

	seg := LineOf(0, 0, 2, 2)
	require.True(t, Inside(seg, Pt(1, 1), 30))
	require.False(t, Inside(seg, Pt(1, 0), 30))
}

func TestInside_CompoundProbes(t *testing.T) {
	diamond := mustPolygon(t, Pt(-1, -0.5), Pt(0, 0.5), Pt(1, -0.5), Pt(0, -1.5))

	t.Run("line probe", func(t *testing.T) {
		// fully contained
		require.True(t, Inside(diamond, LineOf(-0.2, -0.5, 0.2, -0.5), 30))
		// crossing the boundary still counts, touching is inside
		require.True(t, Inside(diamond, LineOf(0, 0, 3, 0), 30))
		// fully outside
		require.False(t, Inside(diamond, LineOf(2, 0, 3, 0), 30))
	})

	t.Run("circle probe", func(t *testing.T) {
		require.True(t, Inside(diamond, CircleOf(0, -0.5, 0.2), 30))
		require.False(t, Inside(diamond, CircleOf(5, 5, 0.2), 30))
	})

	t.Run("chain probe", func(t *testing.T) {
		inner := mustPolygon(t, Pt(-0.2, -0.7), Pt(0.2, -0.7), Pt(0, -0.3))
		require.True(t, Inside(diamond, inner, 30))

		outer := mustPolyline(t, Pt(4, 4), Pt(5, 5))
		require.False(t, Inside(diamond, outer, 30))
	})

	t.Run("composite probe", func(t *testing.T) {
		require.True(t, Inside(diamond, CompositeOf(Pt(5, 5), Pt(0, 0)), 30))
		require.False(t, Inside(diamond, CompositeOf(Pt(5, 5), Pt(6, 6)), 30))
	})
}

func TestInside_CompositeContainer(t *testing.T) {
	comp := CompositeOf(
		mustPolygon(t, Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)),
		CircleOf(10, 10, 1),
	)

	require.True(t, Inside(comp, Pt(1, 1), 30))
	require.True(t, Inside(comp, Pt(10, 10), 30))
	require.False(t, Inside(comp, Pt(5, 5), 30))
}

func TestInside_ProbeContainingContainerIsNotInside(t *testing.T) {
	small := mustPolygon(t, Pt(-1, -1), Pt(1, -1), Pt(1, 1), Pt(-1, 1))
	big := mustPolygon(t, Pt(-5, -5), Pt(5, -5), Pt(5, 5), Pt(-5, 5))

	require.True(t, Inside(big, small, 30))
	require.False(t, Inside(small, big, 30))
}

func TestInside_AngleInvariance(t *testing.T) {
	containers := []Shape{
		mustPolygon(t, Pt(-1, -0.5), Pt(0, 0.5), Pt(1, -0.5), Pt(0, -1.5)),
		CircleOf(0, -0.5, 0.8),
		CompositeOf(CircleOf(0, -0.5, 0.8), Pt(7, 7)),
	}
	// probe positions are chosen so that no sampled angle is exactly
	// collinear with a container vertex or edge
	probes := []Point{Pt(0.05, -0.45), Pt(0.1, -0.3), Pt(3, 3), Pt(-2, -2)}

	for _, container := range containers {
		for _, probe := range probes {
			want := Inside(container, probe, 5)
			for angle := Deg(0); angle <= 360; angle += 10 {
				require.Equal(t, want, Inside(container, probe, angle),
					"container %s, probe %s, angle %v", container, probe, angle)
			}
		}
	}
}

package norm

import (
	"errors"
	"math"
	"testing"

	"outflow/types"
)

// scenarioAnchors kpc, kyr, 0.6165 amu and the matching code temperature.
func scenarioAnchors() map[string]float64 {
	return map[string]float64{
		"x":    3.086e21,
		"t":    3.156e10,
		"dens": 1.026e-24,
		"temp": 8.01e11,
		"curr": 1,
	}
}

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

// TestBuildScenario the pressure scaling of the reference normalization is dens·(x/t)².
func TestBuildScenario(t *testing.T) {
	table, err := Build(scenarioAnchors())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	pres, err := table.Lookup("pres")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	want := 1.026e-24 * math.Pow(3.086e21/3.156e10, 2)
	if e := relErr(pres, want); e > 1e-9 {
		t.Errorf("pres scaling is incorrect. Got %e, expected %e (rel err %e)", pres, want, e)
	}
}

// TestAnchorRoundTrip every anchor comes back exactly as supplied.
func TestAnchorRoundTrip(t *testing.T) {
	sets := []map[string]float64{
		{"x": 1, "m": 1, "t": 1, "curr": 1, "temp": 1},
		scenarioAnchors(),
		{"v": 2.998e10, "dens": 1.67e-24, "x": 3.086e18, "temp": 1e4, "curr": 3},
		{"epwr": 1e44, "mdot": 6.3e25, "x": 3.086e21, "temp": 1e7, "curr": 1},
	}
	for _, anchors := range sets {
		table, err := Build(anchors)
		if err != nil {
			t.Fatalf("Build(%v) failed: %v", anchors, err)
		}
		for id, v := range anchors {
			got, err := table.Lookup(id)
			if err != nil {
				t.Fatalf("Lookup(%s) failed: %v", id, err)
			}
			if got != v {
				t.Errorf("anchor %s: got %v, expected %v", id, got, v)
			}
		}
	}
}

// TestMultiplicativeConsistency every factor is the product of the base factors.
func TestMultiplicativeConsistency(t *testing.T) {
	sets := []map[string]float64{
		scenarioAnchors(),
		{"v": 2.998e10, "dens": 1.67e-24, "x": 3.086e18, "temp": 1e4, "curr": 3},
		{"epwr": 1e44, "mdot": 6.3e25, "x": 3.086e21, "temp": 1e7, "curr": 1},
	}
	for _, anchors := range sets {
		table, err := Build(anchors)
		if err != nil {
			t.Fatalf("Build(%v) failed: %v", anchors, err)
		}
		var base [types.NumBase]float64
		for i, id := range baseIDs {
			base[i] = table.MustLookup(id)
		}
		for _, d := range Dimensions() {
			want := 1.0
			for i, p := range d.Exponents {
				want *= math.Pow(base[i], float64(p))
			}
			got := table.MustLookup(d.ID)
			if e := relErr(got, want); e > 1e-9 {
				t.Errorf("%s: got %e, expected %e (rel err %e)", d.ID, got, want, e)
			}
		}
		pres := table.MustLookup("m") / table.MustLookup("x") / math.Pow(table.MustLookup("t"), 2)
		if e := relErr(table.MustLookup("pres"), pres); e > 1e-9 {
			t.Errorf("pres != m x^-1 t^-2: rel err %e", e)
		}
	}
}

// TestPowers the pressure of the scenario table is dens·x²·t⁻².
func TestPowers(t *testing.T) {
	table := MustBuild(scenarioAnchors())
	p, err := table.Powers("pres")
	if err != nil {
		t.Fatalf("Powers failed: %v", err)
	}
	// registry order of the anchors: x, t, curr, temp, dens
	expected := []float64{2, -2, 0, 0, 1}
	if len(p) != len(expected) {
		t.Fatalf("got %d powers, expected %d", len(p), len(expected))
	}
	for i := range expected {
		if math.Abs(p[i]-expected[i]) > 1e-9 {
			t.Errorf("power[%d] is incorrect. Got %f, expected %f", i, p[i], expected[i])
		}
	}
	anchors := table.Anchors()
	if anchors[0].ID != "x" || anchors[4].ID != "dens" {
		t.Errorf("anchors not in registry order: %v", anchors)
	}
}

func TestBuildErrors(t *testing.T) {
	// unknown key
	_, err := Build(map[string]float64{"x": 1, "m": 1, "t": 1, "curr": 1, "temp": 1, "furlong": 2})
	var unknown *types.UnknownDimensionError
	if !errors.As(err, &unknown) || unknown.ID != "furlong" {
		t.Errorf("expected UnknownDimensionError for furlong, got %v", err)
	}

	// temperature never appears
	_, err = Build(map[string]float64{"x": 1, "m": 1, "t": 1, "curr": 1})
	var under *types.UnderdeterminedSystemError
	if !errors.As(err, &under) || under.Dimension != "temperature" {
		t.Errorf("expected UnderdeterminedSystemError naming temperature, got %v", err)
	}

	// every column touched but pres and pflx are the same row
	_, err = Build(map[string]float64{"pres": 1, "pflx": 1, "x": 1, "curr": 1, "temp": 1})
	if !errors.As(err, &under) || under.Dimension != "" || under.Rank != 4 {
		t.Errorf("expected rank-4 UnderdeterminedSystemError, got %v", err)
	}
	if !errors.Is(err, types.ErrUnderdetermined) {
		t.Errorf("expected errors.Is ErrUnderdetermined, got %v", err)
	}

	// over-determined, disagreeing speed
	_, err = Build(map[string]float64{"x": 1, "m": 1, "t": 1, "curr": 1, "temp": 1, "v": 2})
	var inconsistent *types.InconsistentSystemError
	if !errors.As(err, &inconsistent) || inconsistent.Dimension != "v" {
		t.Errorf("expected InconsistentSystemError for v, got %v", err)
	}

	// non-positive scaling
	_, err = Build(map[string]float64{"x": 0, "m": 1, "t": 1, "curr": 1, "temp": 1})
	if !errors.Is(err, types.ErrInvalidScaling) {
		t.Errorf("expected ErrInvalidScaling, got %v", err)
	}

	if _, err := Build(nil); !errors.Is(err, types.ErrUnderdetermined) {
		t.Errorf("expected ErrUnderdetermined for empty anchors, got %v", err)
	}
}

// TestOverdeterminedConsistent a sixth anchor that agrees with the others is accepted.
func TestOverdeterminedConsistent(t *testing.T) {
	table, err := Build(map[string]float64{"x": 2, "m": 3, "t": 4, "curr": 1, "temp": 5, "v": 0.5})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := table.MustLookup("v"); got != 0.5 {
		t.Errorf("v: got %v, expected 0.5", got)
	}
	want := 3.0 / 2 / 16
	if e := relErr(table.MustLookup("pres"), want); e > 1e-9 {
		t.Errorf("pres: got %e, expected %e", table.MustLookup("pres"), want)
	}
}

func TestLookupUnknown(t *testing.T) {
	table := Identity()
	if _, err := table.Lookup("parsec"); !errors.Is(err, types.ErrUnknownDimension) {
		t.Errorf("expected ErrUnknownDimension, got %v", err)
	}
	if _, err := table.Powers("parsec"); !errors.Is(err, types.ErrUnknownDimension) {
		t.Errorf("expected ErrUnknownDimension from Powers, got %v", err)
	}
	for _, e := range table.Entries() {
		if math.Abs(e.Factor-1) > 1e-12 {
			t.Errorf("identity %s: got %v", e.ID, e.Factor)
		}
	}
}

func TestConvert(t *testing.T) {
	table := MustBuild(scenarioAnchors())
	code, err := table.ToCode("x", 3.086e22)
	if err != nil {
		t.Fatalf("ToCode failed: %v", err)
	}
	if math.Abs(code-10) > 1e-12 {
		t.Errorf("ToCode: got %v, expected 10", code)
	}
	cgs, _ := table.ToCGS("x", code)
	if relErr(cgs, 3.086e22) > 1e-15 {
		t.Errorf("ToCGS: got %v", cgs)
	}
}

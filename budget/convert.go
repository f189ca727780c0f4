package budget

import (
	"github.com/maseology/gowmt/eos"
	"github.com/maseology/gowmt/grid"
)

// HeatToTheta converts a layer-integrated heat tendency [W/m²] to the
// equivalent potential-temperature tendency [K m/s] through the
// reference density and specific heat capacity.
func HeatToTheta(f *grid.Field) *grid.Field {
	g := f.Copy().Scale(1. / (eos.RhoRef * eos.Cp))
	g.Units = "K m/s"
	return g
}

// SaltToSalinity converts a salt-mass tendency [kg/m²/s] to a salinity
// tendency [g/kg m/s]; the factor 1000 moves kilograms of salt to grams.
func SaltToSalinity(f *grid.Field) *grid.Field {
	g := f.Copy().Scale(1000. / eos.RhoRef)
	g.Units = "g/kg m/s"
	return g
}

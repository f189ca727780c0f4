// Package eos resolves the binning coordinate (potential density,
// temperature, salinity) and its tracer partial derivatives from model
// state, delegating the equation of state itself to a collaborator.
package eos

import "github.com/maseology/gowmt/grid"

// tracer codes follow the CMOR naming used by the contributing models
const (
	TracerTemperature = "thetao" // potential temperature [degC]
	TracerSalinity    = "so"     // practical salinity [g/kg]
)

// default seawater constants
const (
	Cp     = 3992.  // specific heat capacity [J/kg/K]
	RhoRef = 1035.  // reference density [kg/m³]
)

// Eos is the equation-of-state collaborator: coordinate value and its
// partial derivatives with respect to temperature and salinity at a
// reference pressure [dbar]. Implementations must be deterministic in
// double precision.
type Eos interface {
	Eval(t, s, p float64) (v, dvdt, dvds float64)
}

// LinearEos is a reference collaborator: density linear in temperature
// and salinity, pressure-independent. Not a TEOS-10 substitute.
type LinearEos struct {
	Alpha, Beta float64 // thermal expansion [1/K], haline contraction [kg/g]
	T0, S0      float64
	Rho0        float64
}

// DefaultLinearEos returns a LinearEos with nominal seawater coefficients.
func DefaultLinearEos() LinearEos {
	return LinearEos{Alpha: 2.e-4, Beta: 7.6e-4, T0: 10., S0: 35., Rho0: RhoRef}
}

func (e LinearEos) Eval(t, s, _ float64) (v, dvdt, dvds float64) {
	v = e.Rho0*(1.-e.Alpha*(t-e.T0)+e.Beta*(s-e.S0)) - 1000.
	return v, -e.Rho0 * e.Alpha, e.Rho0 * e.Beta
}

// Coordinate is the resolved binning coordinate: the scalar field plus one
// partial-derivative field per contributing tracer, all sharing the exact
// geometry of the coordinate field.
type Coordinate struct {
	Name  string
	Lam   *grid.Field
	Deriv map[string]*grid.Field
}

// gowmt computes water-mass transformation rates from gridded ocean-model
// output following the Walin framework: the rate at which fluid crosses a
// chosen scalar coordinate surface (potential density, temperature,
// salinity) due to surface boundary fluxes and interior diabatic
// processes.
//
// The engine is stateless: every component is a pure transform over
// immutable inputs. Conventions fixed throughout: a census at edge e sums
// weight-times-forcing over cells with coordinate strictly less than e (a cell
// sitting exactly on an edge falls in the bin bounded below by it); index
// 0 of any census or rate array is the lowest-coordinate edge/bin; a
// positive rate is transformation toward higher coordinate values.
//
// Dataset loading, the equation-of-state polynomial and metric-aware grid
// operators are collaborators supplied by the caller (see eos.Eos,
// grid.Operator and budget.Registry).
package gowmt

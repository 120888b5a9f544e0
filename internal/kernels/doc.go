// Package kernels provides the closed-form field functions for the seven
// source geometries. Every kernel follows one contract: it takes packed
// per-row attribute arrays (row count N), the rows' source positions and
// orientations, and the global observation points, and returns N field
// vectors. The global↔source-frame transform is applied around each body
// formula, so the formulas themselves work in the source's own frame.
//
// Formulas: sphere and dipole use the standard closed forms; the cuboid
// uses the corner-sum expressions of Engel-Herbert & Hesjedal; the circular
// loop uses complete elliptic integrals; line currents use the finite-wire
// Biot-Savart form; the axially magnetized cylinder uses the Derby-Olbert
// expressions built on the generalized complete elliptic integral cel. The
// transverse cylinder part and the cylinder segment evaluate the
// charged-surface model with fixed-order Gauss-Legendre quadrature.
//
// Units: mm, mT, A, mT·mm³ in; B in mT or H in kA/m out.
package kernels

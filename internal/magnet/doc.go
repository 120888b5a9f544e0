// Package magnet provides the concrete field sources consumed by the
// bfield pipeline, one constructor per geometry kind:
//
//   - [Cuboid], [Cylinder], [CylinderSegment], [Sphere]: magnet bodies
//   - [Dipole]: point dipole
//   - [Loop], [Polyline]: current paths
//   - [Collection]: ordered group of sources summed as one unit
//
// Constructors validate dimensions and excitations up front, so objects
// reaching the evaluation core are always initialized. All sources carry a
// position/orientation path; a fresh source sits at the origin with unit
// orientation.
package magnet

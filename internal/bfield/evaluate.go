package bfield

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

var logger = zap.NewNop()

// SetLogger installs a logger for pipeline debug output. Passing nil
// silences it again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Evaluate computes the field of the given sources at the given observers.
//
// Each source entry is a single Source or a Group (summed as one unit);
// observers all need the same pixel grid shape. The result has canonical
// shape (L0, m, K, pixel..., 3): top-level entries, aligned path length,
// observers, pixel grid axes, field components. Options select sumup
// (collapse the leading axis) and squeeze (drop length-1 axes).
//
// The call is deterministic and leaves all caller-owned objects untouched.
func Evaluate(ft FieldType, sources []Entry, observers []Observer, opts Options) (*Tensor, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if len(observers) == 0 {
		return nil, ErrNoObservers
	}

	// Input checks: all user errors surface before any field math.
	flat, widths, err := flattenEntries(sources)
	if err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return nil, ErrNoSources
	}
	if err := checkSources(flat); err != nil {
		return nil, err
	}
	pixShape, kPixel, err := commonPixelShape(observers)
	if err != nil {
		return nil, err
	}

	// Align all paths to the common length m on local snapshots.
	srcPaths, obsPaths, m, err := alignPaths(flat, observers)
	if err != nil {
		return nil, err
	}

	k := len(observers)
	nPix := k * kPixel
	nPP := m * nPix
	obsPoints := assembleObservations(observers, obsPaths, m, kPixel)
	flags := rotationFlags(obsPaths)

	buckets, err := partition(flat)
	if err != nil {
		return nil, err
	}

	logger.Debug("field evaluation",
		zap.Stringer("field", ft),
		zap.Int("sources", len(flat)),
		zap.Int("entries", len(widths)),
		zap.Int("observers", k),
		zap.Int("path_len", m),
		zap.Int("obs_points", nPP),
	)

	// One kernel call per non-empty bucket, scattered back by flat index.
	rowLen := m * nPix
	dense := make([]r3.Vec, len(flat)*rowLen)
	for kind, idx := range buckets {
		if len(idx) == 0 {
			continue
		}
		rows, err := dispatch(ft, Kind(kind), flat, srcPaths, idx, nPix, nPP, obsPoints)
		if err != nil {
			return nil, err
		}
		scatter(dense, rows, idx, rowLen)
	}

	dense = collapseGroups(dense, widths, rowLen)
	backRotate(dense, obsPaths, flags, len(widths), m, kPixel)

	t := reshape(dense, len(widths), m, k, pixShape)
	if opts.SumUp {
		t = sumLeading(t)
	}
	if opts.Squeeze {
		t = t.Squeeze()
	}
	return t, nil
}

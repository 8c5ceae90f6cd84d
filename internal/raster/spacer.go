package raster

// Spacer places evenly spaced dabs along a polyline that arrives one segment
// at a time. The distance left over at the end of a segment carries into the
// next one, so the spacing stays uniform across pointer events.
type Spacer struct {
	spacing float64
	next    float64
}

// NewSpacer returns a Spacer with the given dab spacing in pixels.
// Spacing below one pixel is raised to one.
func NewSpacer(spacing float64) *Spacer {
	return &Spacer{spacing: max(spacing, 1)}
}

// Spacing returns the distance between dabs.
func (s *Spacer) Spacing() float64 {
	return s.spacing
}

// SetSpacing changes the distance between dabs. On a running polyline the
// next dab lands the new spacing after the previous one, or at once if the
// path has already gone further.
func (s *Spacer) SetSpacing(spacing float64) {
	spacing = max(spacing, 1)
	if s.next > 0 {
		since := s.spacing - s.next
		s.next = max(spacing-since, 0)
	}
	s.spacing = spacing
}

// Reset starts a new polyline. The first dab of the next Walk lands on its
// start point.
func (s *Spacer) Reset() {
	s.next = 0
}

// Walk calls fn for every dab position on segment ab.
func (s *Spacer) Walk(a, b Point, fn func(p Point)) {
	length := a.Distance(b)

	t := s.next
	for ; t <= length; t += s.spacing {
		if length == 0 {
			fn(a)
			continue
		}
		fn(a.Lerp(b, t/length))
	}
	s.next = t - length
}

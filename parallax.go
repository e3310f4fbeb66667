package folio

// ParallaxBinding is one element's scroll-linked displacement.
// Offset is always scrollY * Factor: no easing, no smoothing, no clamping.
type ParallaxBinding struct {
	id     uint32
	factor float64
	offset Value[float64]
	ctrl   *ScrollTransformController
}

// Factor returns the multiplier applied to the scroll offset.
func (b *ParallaxBinding) Factor() float64 {
	return b.factor
}

// Offset returns the current displacement in pixels.
func (b *ParallaxBinding) Offset() float64 {
	return b.offset.Get()
}

// Subscribe observes offset changes.
func (b *ParallaxBinding) Subscribe(fn func(offsetPx float64)) Handle {
	return b.offset.Subscribe(fn)
}

// Dispose unbinds the element and drops its subscribers. Further scroll
// signals leave Offset untouched.
func (b *ParallaxBinding) Dispose() {
	if b.ctrl != nil {
		b.ctrl.dispose(b.id)
	}
}

// ScrollTransformController maps scroll offset to parallax offsets.
// Bindings are independent of each other; each update is a pure function
// of the latest scroll position.
type ScrollTransformController struct {
	logged

	scrollY  float64
	bindings []*ParallaxBinding
	nextID   uint32
}

// NewScrollTransformController creates an empty controller.
func NewScrollTransformController() *ScrollTransformController {
	return &ScrollTransformController{}
}

// Bind registers a new parallax element. The binding starts at the offset
// matching the last scroll signal. A negative, NaN, or infinite factor is
// rejected with an error wrapping ErrInvalidConfig.
func (c *ScrollTransformController) Bind(factor float64) (*ParallaxBinding, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	c.nextID++
	b := &ParallaxBinding{id: c.nextID, factor: factor, ctrl: c}
	b.offset.v = c.scrollY * factor
	c.bindings = append(c.bindings, b)
	return b, nil
}

// Len returns the number of live bindings.
func (c *ScrollTransformController) Len() int {
	return len(c.bindings)
}

// OnScroll recomputes every binding synchronously.
func (c *ScrollTransformController) OnScroll(scrollY float64) {
	c.scrollY = scrollY
	// Subscribers may dispose bindings mid-loop.
	for _, b := range append([]*ParallaxBinding(nil), c.bindings...) {
		if b.ctrl != nil {
			b.offset.set(scrollY * b.factor)
		}
	}
}

// Attach subscribes the controller to shared scroll metrics.
func (c *ScrollTransformController) Attach(m *ScrollMetrics) Handle {
	c.OnScroll(m.Y())
	return m.Subscribe(c.OnScroll)
}

func (c *ScrollTransformController) dispose(id uint32) bool {
	for i, b := range c.bindings {
		if b.id == id {
			copy(c.bindings[i:], c.bindings[i+1:])
			c.bindings[len(c.bindings)-1] = nil
			c.bindings = c.bindings[:len(c.bindings)-1]
			b.ctrl = nil
			b.offset.subs.clear()
			return true
		}
	}
	c.stale("parallax.unbind", id)
	return false
}

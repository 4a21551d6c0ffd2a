package ids

// Counter issues successive identifiers starting at First.
//
// The zero value is ready to use. A Counter is not safe for concurrent use.
type Counter[I Identifier] struct {
	domain    string
	next      I
	exhausted bool
}

// NewCounter creates a counter. domain labels the identifier space in the
// exhaustion report.
func NewCounter[I Identifier](domain string) *Counter[I] {
	return &Counter[I]{domain: domain, next: First[I]()}
}

// Issue returns the current identifier and advances the counter.
//
// The last identifier of the domain is issued normally; asking for another
// one afterwards panics with a *Defect wrapping an *ExhaustedError, because
// wrapping around would hand out duplicates.
func (c *Counter[I]) Issue() I {
	if c.exhausted {
		raise(&ExhaustedError{Domain: c.domain, Bits: Bits[I]()})
	}
	id := c.next
	if n, err := Next(id); err != nil {
		c.exhausted = true
	} else {
		c.next = n
	}
	return id
}

// Peek returns the identifier the next Issue would return. ok is false once
// the domain is used up.
func (c *Counter[I]) Peek() (id I, ok bool) {
	return c.next, !c.exhausted
}

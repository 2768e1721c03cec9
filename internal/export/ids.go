package export

// Allocation maps canonical names to model IDs for one export.
type Allocation struct {
	startID int
	ids     map[string]int
	order   []string
}

// Allocate assigns startID+k to the k-th distinct name in names. Order is
// significant: the same sequence and start always give the same mapping.
func Allocate(names []string, startID int) *Allocation {
	a := &Allocation{
		startID: startID,
		ids:     make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, ok := a.ids[name]; ok {
			continue
		}
		a.ids[name] = startID + len(a.order)
		a.order = append(a.order, name)
	}
	return a
}

// ID returns the model ID for name.
func (a *Allocation) ID(name string) (int, bool) {
	id, ok := a.ids[name]
	return id, ok
}

// Names returns the distinct names in ID order.
func (a *Allocation) Names() []string {
	return append([]string(nil), a.order...)
}

// Len returns the number of distinct names.
func (a *Allocation) Len() int {
	return len(a.order)
}

// StartID returns the first ID of the allocation.
func (a *Allocation) StartID() int {
	return a.startID
}

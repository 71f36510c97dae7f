package evreg

// The zero register is empty and ready for use.
type Register struct {
	m      map[int][]*callback
	nextId int
}

type callback struct {
	id int
	fn func(any)
}

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(any)) *Regist {
	if reg.m == nil {
		reg.m = map[int][]*callback{}
	}
	reg.nextId++
	cb := &callback{id: reg.nextId, fn: fn}
	reg.m[evId] = append(reg.m[evId], cb)
	return &Regist{reg: reg, evId: evId, cbId: cb.id}
}

func (reg *Register) remove(evId, cbId int) {
	u := reg.m[evId]
	for i, cb := range u {
		if cb.id == cbId {
			u = append(u[:i:i], u[i+1:]...)
			break
		}
	}
	if len(u) == 0 {
		delete(reg.m, evId)
		return
	}
	reg.m[evId] = u
}

// Returns number of callbacks done. Callbacks may unregister themselves while running.
func (reg *Register) RunCallbacks(evId int, ev any) int {
	u := reg.m[evId]
	for _, cb := range u {
		cb.fn(ev)
	}
	return len(u)
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	return len(reg.m[evId])
}

//----------

type Regist struct {
	reg  *Register
	evId int
	cbId int
}

func (rg *Regist) Unregister() {
	if rg.reg != nil {
		rg.reg.remove(rg.evId, rg.cbId)
		rg.reg = nil
	}
}

//----------

// Utility to unregister a group of regists at once.
type Unregister struct {
	v []*Regist
}

func (unr *Unregister) Add(u ...*Regist) {
	unr.v = append(unr.v, u...)
}
func (unr *Unregister) UnregisterAll() {
	for _, e := range unr.v {
		e.Unregister()
	}
	unr.v = nil
}
func (unr *Unregister) Len() int {
	return len(unr.v)
}

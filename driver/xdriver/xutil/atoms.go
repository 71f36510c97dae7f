package xutil

import (
	"fmt"
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Interns the atoms named by the fields of st (a pointer to a struct of xproto.Atom fields). A field tag `loadAtoms:"NAME"` overrides the field name. With onlyIfExists, unknown atoms are set to xproto.AtomNone.
func LoadAtoms(conn *xgb.Conn, st any, onlyIfExists bool) error {
	val := reflect.Indirect(reflect.ValueOf(st))
	typ := val.Type()

	// send all requests before waiting on any reply
	names := make([]string, typ.NumField())
	cookies := make([]xproto.InternAtomCookie, typ.NumField())
	for i := range names {
		sf := typ.Field(i)
		names[i] = sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			names[i] = tag
		}
		cookies[i] = xproto.InternAtom(conn, onlyIfExists, uint16(len(names[i])), names[i])
	}
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return fmt.Errorf("intern atom %v: %w", names[i], err)
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}

func GetAtomName(conn *xgb.Conn, atom xproto.Atom) (string, error) {
	r, err := xproto.GetAtomName(conn, atom).Reply()
	if err != nil {
		return "", err
	}
	return r.Name, nil
}

// Names for logging; unresolvable atoms are shown by number.
func AtomNames(conn *xgb.Conn, atoms []xproto.Atom) []string {
	u := make([]string, 0, len(atoms))
	for _, a := range atoms {
		name, err := GetAtomName(conn, a)
		if err != nil {
			name = fmt.Sprintf("atom(%d)", a)
		}
		u = append(u, name)
	}
	return u
}

// Decodes a property value of type ATOM (32-bit items).
func AtomList(value []byte) []xproto.Atom {
	u := make([]xproto.Atom, 0, len(value)/4)
	for i := 0; i+4 <= len(value); i += 4 {
		u = append(u, xproto.Atom(xgb.Get32(value[i:])))
	}
	return u
}

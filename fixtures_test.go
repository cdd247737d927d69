package boson_test

import (
	"github.com/stewi1014/boson"
)

type Widget struct {
	Name string
}

type NodeA struct {
	B *NodeB
}

type NodeB struct {
	A *NodeA
}

type SelfRef struct {
	Self *SelfRef
}

type Inner struct {
	Value string
}

type Shared struct {
	Left  *Inner
	Right *Inner
}

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

type Box struct {
	C Color
}

type WithDirectives struct {
	Visible string
	Hidden  string `boson:"-"`
}

type RenamedSource struct {
	X string `boson:"renamedX"`
}

func init() {
	boson.RegisterRecord(Widget{})
	boson.RegisterRecord(NodeA{})
	boson.RegisterRecord(NodeB{})
	boson.RegisterRecord(SelfRef{})
	boson.RegisterRecord(Inner{})
	boson.RegisterRecord(Shared{})
	boson.RegisterRecord(Box{})
	boson.RegisterRecord(WithDirectives{})
	boson.RegisterRecord(RenamedSource{})
	boson.RegisterEnum(Color(0), Red, Green, Blue)
}

package ast

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// wireTerm is the stable, tagged-object serialization of a Term: one
// discriminator ("Tag") per variant, with only the fields that variant
// needs populated. This mirrors the shape original_source/src/ast.rs gets
// for free from #[derive(Serialize, Deserialize)] on an untagged Rust enum
// (its tests assert the JSON literally contains the variant name, e.g.
// `json.contains("Number")`) — encoding/json with an explicit tag field is
// the direct Go analog.
type wireTerm struct {
	Tag        string     `json:"tag"`
	Number     float64    `json:"number,omitempty"`
	Text       string     `json:"text,omitempty"`
	Bool       bool       `json:"bool,omitempty"`
	Elements   []wireTerm `json:"elements,omitempty"`
	Child      *wireTerm  `json:"child,omitempty"`
	Name       string     `json:"name,omitempty"`
	Parameters []string   `json:"parameters,omitempty"`
	Body       *wireTerm  `json:"body,omitempty"`
	Args       []wireTerm `json:"args,omitempty"`
}

// ToIR serializes a term sequence to the stable IR format.
func ToIR(terms []Term) ([]byte, error) {
	wire := lo.Map(terms, func(t Term, _ int) wireTerm { return toWire(t) })
	return json.Marshal(wire)
}

// FromIR deserializes a term sequence previously produced by ToIR.
// Round-trip identity holds: FromIR(ToIR(ts)) produces terms that ToIR
// serializes back to the same bytes.
func FromIR(data []byte) ([]Term, error) {
	var wire []wireTerm
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("ir: invalid document: %w", err)
	}
	terms := make([]Term, len(wire))
	for i, w := range wire {
		t, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	return terms, nil
}

func toWire(t Term) wireTerm {
	switch n := t.(type) {
	case Number:
		return wireTerm{Tag: "Number", Number: float64(n)}
	case String:
		return wireTerm{Tag: "String", Text: string(n)}
	case Bool:
		return wireTerm{Tag: "Bool", Bool: bool(n)}
	case Nil:
		return wireTerm{Tag: "Nil"}
	case Symbol:
		return wireTerm{Tag: "Symbol", Text: string(n)}
	case Gensym:
		return wireTerm{Tag: "Gensym", Text: string(n)}
	case *List:
		return wireTerm{Tag: "List", Elements: lo.Map(n.Elements, func(e Term, _ int) wireTerm { return toWire(e) })}
	case *Quote:
		c := toWire(n.Child)
		return wireTerm{Tag: "Quote", Child: &c}
	case *Quasiquote:
		c := toWire(n.Child)
		return wireTerm{Tag: "Quasiquote", Child: &c}
	case *Unquote:
		c := toWire(n.Child)
		return wireTerm{Tag: "Unquote", Child: &c}
	case *Splice:
		c := toWire(n.Child)
		return wireTerm{Tag: "Splice", Child: &c}
	case *Macro:
		b := toWire(n.Body)
		return wireTerm{Tag: "Macro", Name: n.Name, Parameters: n.Parameters, Body: &b}
	case *MacroCall:
		return wireTerm{Tag: "MacroCall", Name: n.Name, Args: lo.Map(n.Args, func(e Term, _ int) wireTerm { return toWire(e) })}
	default:
		panic(fmt.Sprintf("ast: unknown term type %T", t))
	}
}

func fromWire(w wireTerm) (Term, error) {
	switch w.Tag {
	case "Number":
		return Number(w.Number), nil
	case "String":
		return String(w.Text), nil
	case "Bool":
		return Bool(w.Bool), nil
	case "Nil":
		return Nil{}, nil
	case "Symbol":
		return Symbol(w.Text), nil
	case "Gensym":
		return Gensym(w.Text), nil
	case "List":
		elems, err := fromWireSlice(w.Elements)
		if err != nil {
			return nil, err
		}
		return &List{Elements: elems}, nil
	case "Quote":
		c, err := fromWireChild(w.Child, "Quote")
		if err != nil {
			return nil, err
		}
		return &Quote{Child: c}, nil
	case "Quasiquote":
		c, err := fromWireChild(w.Child, "Quasiquote")
		if err != nil {
			return nil, err
		}
		return &Quasiquote{Child: c}, nil
	case "Unquote":
		c, err := fromWireChild(w.Child, "Unquote")
		if err != nil {
			return nil, err
		}
		return &Unquote{Child: c}, nil
	case "Splice":
		c, err := fromWireChild(w.Child, "Splice")
		if err != nil {
			return nil, err
		}
		return &Splice{Child: c}, nil
	case "Macro":
		b, err := fromWireChild(w.Body, "Macro")
		if err != nil {
			return nil, err
		}
		return &Macro{Name: w.Name, Parameters: w.Parameters, Body: b}, nil
	case "MacroCall":
		args, err := fromWireSlice(w.Args)
		if err != nil {
			return nil, err
		}
		return &MacroCall{Name: w.Name, Args: args}, nil
	default:
		return nil, fmt.Errorf("ir: unknown tag %q", w.Tag)
	}
}

func fromWireSlice(ws []wireTerm) ([]Term, error) {
	out := make([]Term, len(ws))
	for i, w := range ws {
		t, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func fromWireChild(w *wireTerm, tag string) (Term, error) {
	if w == nil {
		return nil, fmt.Errorf("ir: %s missing child", tag)
	}
	return fromWire(*w)
}

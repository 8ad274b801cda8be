package macro

import "testing"

func TestRegistryDefineAndLookup(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("double"); ok {
		t.Fatal("empty registry should not find double")
	}
	r.Define("double", []string{"x"}, nil)
	def, ok := r.Lookup("double")
	if !ok || def.Name != "double" {
		t.Fatalf("got %+v, ok=%v", def, ok)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRegistryNamesIntrospection(t *testing.T) {
	r := NewRegistry()
	r.Define("a", nil, nil)
	r.Define("b", nil, nil)
	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("got %v, want 2 names", names)
	}
}

func TestRegistryRedefineReplaces(t *testing.T) {
	r := NewRegistry()
	r.Define("f", []string{"x"}, nil)
	r.Define("f", []string{"x", "y"}, nil)
	def, _ := r.Lookup("f")
	if len(def.Parameters) != 2 {
		t.Errorf("redefine should replace, got params %v", def.Parameters)
	}
}

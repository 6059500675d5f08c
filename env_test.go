// env_test.go
package scheme

import "testing"

func Test_Env_Define_And_Get(t *testing.T) {
	e := NewEnv(nil)
	e.Define("x", Num(1))
	v, err := e.Get("x")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v.Tag != VTNum || v.Data.(int64) != 1 {
		t.Fatalf("want 1, got %#v", v)
	}

	// Redefinition in the same frame replaces.
	e.Define("x", Num(2))
	v, _ = e.Get("x")
	if v.Data.(int64) != 2 {
		t.Fatalf("want 2 after redefine, got %#v", v)
	}
}

func Test_Env_Get_Walks_Parents(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Num(10))
	mid := NewEnv(root)
	leaf := NewEnv(mid)

	v, err := leaf.Get("x")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v.Data.(int64) != 10 {
		t.Fatalf("want 10 from root, got %#v", v)
	}
}

func Test_Env_Shadowing(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Num(1))
	child := NewEnv(root)
	child.Define("x", Num(2))

	if v, _ := child.Get("x"); v.Data.(int64) != 2 {
		t.Fatalf("child should see its own binding, got %#v", v)
	}
	if v, _ := root.Get("x"); v.Data.(int64) != 1 {
		t.Fatalf("shadowing must not touch the parent, got %#v", v)
	}
}

func Test_Env_Set_Updates_Nearest(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Num(1))
	child := NewEnv(root)

	// No binding in child: Set walks up and mutates root.
	if err := child.Set("x", Num(5)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if v, _ := root.Get("x"); v.Data.(int64) != 5 {
		t.Fatalf("want root updated to 5, got %#v", v)
	}

	// With a shadowing binding, only the child changes.
	child.Define("x", Num(7))
	if err := child.Set("x", Num(8)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if v, _ := child.Get("x"); v.Data.(int64) != 8 {
		t.Fatalf("want child 8, got %#v", v)
	}
	if v, _ := root.Get("x"); v.Data.(int64) != 5 {
		t.Fatalf("root must stay 5, got %#v", v)
	}
}

func Test_Env_Undefined(t *testing.T) {
	e := NewEnv(nil)
	if _, err := e.Get("nope"); err == nil {
		t.Fatalf("want error for undefined Get")
	} else if er := err.(*Error); er.Kind != ErrUndefinedSymbol {
		t.Fatalf("want ErrUndefinedSymbol, got %v", er.Kind)
	}
	if err := e.Set("nope", Num(1)); err == nil {
		t.Fatalf("Set must not implicitly define")
	} else if er := err.(*Error); er.Kind != ErrUndefinedSymbol {
		t.Fatalf("want ErrUndefinedSymbol, got %v", er.Kind)
	}
	if _, err := e.Get("nope"); err == nil {
		t.Fatalf("failed Set must leave no binding behind")
	}
}

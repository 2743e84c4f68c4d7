package domain

import (
	"reflect"
	"testing"
)

func TestCatalog_SetPreservesInsertionOrder(t *testing.T) {
	catalog := NewCatalog()
	catalog.Set("Tests.Charlie", []string{"testOne"})
	catalog.Set("Tests.Alpha", []string{"testTwo"})
	catalog.Set("Tests.Bravo", []string{"testThree"})

	expected := []string{"Tests.Charlie", "Tests.Alpha", "Tests.Bravo"}
	if !reflect.DeepEqual(catalog.Suites(), expected) {
		t.Errorf("expected order %v, got %v", expected, catalog.Suites())
	}
}

func TestCatalog_SetLastWriteWins(t *testing.T) {
	catalog := NewCatalog()
	catalog.Set("Tests.Foo", []string{"testOld"})
	catalog.Set("Tests.Bar", []string{"testOther"})
	catalog.Set("Tests.Foo", []string{"testNew", "testNewer"})

	methods, ok := catalog.Methods("Tests.Foo")
	if !ok {
		t.Fatal("expected Tests.Foo to exist")
	}
	if !reflect.DeepEqual(methods, []string{"testNew", "testNewer"}) {
		t.Errorf("expected replaced methods, got %v", methods)
	}

	// Overwriting keeps the original position
	expected := []string{"Tests.Foo", "Tests.Bar"}
	if !reflect.DeepEqual(catalog.Suites(), expected) {
		t.Errorf("expected order %v, got %v", expected, catalog.Suites())
	}
	if catalog.Len() != 2 {
		t.Errorf("expected 2 suites, got %d", catalog.Len())
	}
}

func TestCatalog_MethodsReturnsCopy(t *testing.T) {
	catalog := NewCatalog()
	catalog.Set("Tests.Foo", []string{"testAlpha", "testBeta"})

	methods, _ := catalog.Methods("Tests.Foo")
	methods[0] = "mutated"

	again, _ := catalog.Methods("Tests.Foo")
	if again[0] != "testAlpha" {
		t.Errorf("catalog leaked internal slice: %v", again)
	}
}

func TestCatalog_SetCopiesInput(t *testing.T) {
	catalog := NewCatalog()
	input := []string{"testAlpha"}
	catalog.Set("Tests.Foo", input)
	input[0] = "mutated"

	methods, _ := catalog.Methods("Tests.Foo")
	if methods[0] != "testAlpha" {
		t.Errorf("catalog aliased caller slice: %v", methods)
	}
}

func TestCatalog_MethodsMissingSuite(t *testing.T) {
	catalog := NewCatalog()
	if _, ok := catalog.Methods("Tests.Nope"); ok {
		t.Error("expected missing suite lookup to report false")
	}
}

func TestCatalog_CountMethods(t *testing.T) {
	catalog := NewCatalog()
	catalog.Set("Tests.Foo", []string{"testAlpha", "testBeta"})
	catalog.Set("Tests.Bar", []string{"testGamma"})

	if got := catalog.CountMethods(); got != 3 {
		t.Errorf("expected 3 methods, got %d", got)
	}
}

package eval

import (
	"fmt"
	"sort"
)

// --- Variables -------------------------------------------------------------

// Var is a named variable. Values are float64, string, bool or []interface{}.
type Var struct {
	name  string
	Value interface{}
}

// NewVar creates a new, unset variable.
func NewVar(name string) *Var {
	return &Var{name: name}
}

// Name gets the variable's name.
func (v *Var) Name() string {
	return v.name
}

func (v *Var) String() string {
	return fmt.Sprintf("<var %s=%v>", v.name, v.Value)
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store variables (map-like semantics).
type SymbolTable struct {
	table map[string]*Var
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]*Var)}
}

// Resolve checks for a variable in the symbol table.
// Returns a variable or nil.
func (t *SymbolTable) Resolve(name string) *Var {
	return t.table[name]
}

// ResolveOrDefine finds a variable in the table, inserts a new one if not found.
// Returns the variable and a flag, signalling wether it has already been present.
func (t *SymbolTable) ResolveOrDefine(name string) (*Var, bool) {
	if len(name) == 0 {
		return nil, false
	}
	if v := t.Resolve(name); v != nil {
		return v, true
	}
	v, _ := t.Define(name)
	return v, false
}

// Define creates a new variable to store into the symbol table.
// The name may not be empty.
// Overwrites an existing variable with this name, if any.
// Returns the new variable and the previously stored one (or nil).
func (t *SymbolTable) Define(name string) (*Var, *Var) {
	if len(name) == 0 {
		return nil, nil
	}
	v := NewVar(name)
	old := t.table[name]
	t.table[name] = v
	return v, old
}

// Size counts the variables in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.table)
}

// Names returns the names of all variables, sorted.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.table))
	for name := range t.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// === Scopes ================================================================

// Scope is a named scope, which may contain variable definitions. Scopes link
// back to a parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{
		Name:   name,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Vars returns the symbol table of a scope.
func (s *Scope) Vars() *SymbolTable {
	return s.symtab
}

// Resolve finds a variable. Returns the variable (or nil) and the scope
// (of a scope-tree-path) the variable was found in.
func (s *Scope) Resolve(name string) (*Var, *Scope) {
	for ; s != nil; s = s.Parent {
		if v := s.symtab.Resolve(name); v != nil {
			return v, s
		}
	}
	return nil, nil
}

// Set assigns a value to a variable of scope s, defining it if necessary.
// Variables of enclosing scopes are shadowed, not updated.
func (s *Scope) Set(name string, value interface{}) *Var {
	v, found := s.symtab.ResolveOrDefine(name)
	if !found {
		tracer().P("scope", s.Name).Debugf("defining %s", name)
	}
	v.Value = value
	return v
}

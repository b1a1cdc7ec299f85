package lang

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/pmerge/tree"
	"gopkg.in/yaml.v3"
)

//go:embed ops.yaml
var defaultOps []byte

// OpDef defines an operator.
type OpDef struct {
	Op       string  `yaml:"op"`             // operator as it appears in the input
	Name     string  `yaml:"name,omitempty"` // node label, defaults to Op
	Priority float64 `yaml:"priority"`
	Assoc    string  `yaml:"assoc"` // "ltr" or "rtl"
}

// Label returns the node label for an operator.
func (d OpDef) Label() string {
	if d.Name == "" {
		return d.Op
	}
	return d.Name
}

func (d OpDef) assoc() tree.Assoc {
	if d.Assoc == "rtl" {
		return tree.RtoL
	}
	return tree.LtoR
}

// OpTable holds the operators of the expression language. Tables are loaded
// from YAML, see LoadOpTable. After loading, a table is read-only and may be
// shared between parse runs.
type OpTable struct {
	Operand float64 `yaml:"operand"` // priority of operands
	Prefix  []OpDef `yaml:"prefix"`  // unary prefix operators
	Infix   []OpDef `yaml:"infix"`   // binary operators
	List    []OpDef `yaml:"list"`    // additional binary operators within lists
	prefix  map[string]OpDef
	infix   map[string]OpDef
	list    map[string]OpDef
}

// LoadOpTable reads an operator table in YAML format.
func LoadOpTable(r io.Reader) (*OpTable, error) {
	t := &OpTable{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("cannot read operator table: %w", err)
	}
	if err := t.prepare(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded operator table with %d operators", len(t.Prefix)+len(t.Infix)+len(t.List))
	return t, nil
}

var defaultTable *OpTable
var defaultOnce sync.Once

// DefaultOpTable returns the built-in operator table.
func DefaultOpTable() *OpTable {
	defaultOnce.Do(func() {
		var err error
		if defaultTable, err = LoadOpTable(bytes.NewReader(defaultOps)); err != nil {
			panic(fmt.Sprintf("cannot load default operator table: %v", err))
		}
	})
	return defaultTable
}

func (t *OpTable) prepare() error {
	if math.IsNaN(t.Operand) || math.IsInf(t.Operand, 0) {
		return fmt.Errorf("operator table: illegal operand priority %v", t.Operand)
	}
	var err error
	if t.prefix, err = t.index(t.Prefix); err != nil {
		return err
	}
	if t.infix, err = t.index(t.Infix); err != nil {
		return err
	}
	if t.list, err = t.index(t.List); err != nil {
		return err
	}
	for _, p := range t.Prefix {
		for _, i := range append(t.Infix, t.List...) {
			if p.Priority >= i.Priority {
				return fmt.Errorf("operator table: prefix %q must bind tighter than infix %q", p.Op, i.Op)
			}
		}
	}
	for _, l := range t.List {
		if _, ok := t.infix[l.Op]; ok {
			return fmt.Errorf("operator table: list operator %q is also an infix operator", l.Op)
		}
	}
	return nil
}

func (t *OpTable) index(defs []OpDef) (map[string]OpDef, error) {
	m := make(map[string]OpDef, len(defs))
	for _, d := range defs {
		switch {
		case d.Op == "":
			return nil, fmt.Errorf("operator table: operator without symbol")
		case !isWord(d.Op) && !isSymbol(d.Op):
			return nil, fmt.Errorf("operator table: %q is neither a word nor a symbol", d.Op)
		case d.Assoc != "ltr" && d.Assoc != "rtl":
			return nil, fmt.Errorf("operator table: %q has illegal associativity %q", d.Op, d.Assoc)
		case math.IsNaN(d.Priority) || math.IsInf(d.Priority, 0) || d.Priority <= t.Operand:
			return nil, fmt.Errorf("operator table: %q must have a finite priority above operands", d.Op)
		}
		if _, dup := m[d.Op]; dup {
			return nil, fmt.Errorf("operator table: duplicate operator %q", d.Op)
		}
		m[d.Op] = d
	}
	return m, nil
}

func (t *OpTable) isOperator(op string) bool {
	_, p := t.prefix[op]
	_, i := t.infix[op]
	_, l := t.list[op]
	return p || i || l
}

// isWord is true for operators spelled like identifiers, e.g. "mod".
func isWord(op string) bool {
	for i, r := range op {
		if !(r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return op != ""
}

// isSymbol is true for operators made of punctuation, e.g. "<=". Brackets
// and quotes are reserved.
func isSymbol(op string) bool {
	for _, r := range op {
		if !(unicode.IsPunct(r) || unicode.IsSymbol(r)) || r == '_' || strings.ContainsRune("()[]\"'`", r) {
			return false
		}
	}
	return op != ""
}

// Symbols returns the symbols of all operators, sorted.
func (t *OpTable) Symbols() []string {
	seen := make(map[string]bool)
	for _, m := range []map[string]OpDef{t.prefix, t.infix, t.list} {
		for op := range m {
			seen[op] = true
		}
	}
	syms := make([]string, 0, len(seen))
	for op := range seen {
		syms = append(syms, op)
	}
	sort.Strings(syms)
	return syms
}

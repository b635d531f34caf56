package form

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/registro/pkg/validator"
)

// Field declares one form input and its ordered rules.
type Field struct {
	Name  string
	Rules []validator.Rule
}

// Form holds current field values and their validity.
// Every mutation re-evaluates the touched field and the fields whose rules
// read it, so cross-field checks never go stale.
type Form struct {
	mu         sync.RWMutex
	fields     []Field
	index      map[string]int
	dependents map[string][]string
	values     validator.Values
	errors     map[string][]validator.Kind
	touched    map[string]bool
}

// New builds a form with every field empty and already evaluated.
func New(fields []Field) (*Form, error) {
	f := &Form{
		fields:     make([]Field, 0, len(fields)),
		index:      make(map[string]int, len(fields)),
		dependents: make(map[string][]string),
		values:     make(validator.Values, len(fields)),
		errors:     make(map[string][]validator.Kind, len(fields)),
		touched:    make(map[string]bool, len(fields)),
	}

	for _, field := range fields {
		if field.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, dup := f.index[field.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, field.Name)
		}
		for _, rule := range field.Rules {
			if err := rule.Validate(); err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
		}
		f.index[field.Name] = len(f.fields)
		f.fields = append(f.fields, Field{Name: field.Name, Rules: slices.Clone(field.Rules)})
	}

	for _, field := range f.fields {
		for _, rule := range field.Rules {
			other, ok := rule.References()
			if !ok {
				continue
			}
			if _, known := f.index[other]; !known {
				return nil, fmt.Errorf("%w: %s references %s", ErrUnknownField, field.Name, other)
			}
			if !slices.Contains(f.dependents[other], field.Name) {
				f.dependents[other] = append(f.dependents[other], field.Name)
			}
		}
	}

	for _, field := range f.fields {
		f.evaluate(field.Name)
	}
	return f, nil
}

// MustNew is like New but panics on an invalid field table.
func MustNew(fields []Field) *Form {
	f, err := New(fields)
	if err != nil {
		panic(fmt.Sprintf("failed to create form: %v", err))
	}
	return f
}

// SetField stores value for name and re-runs the affected rules.
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.index[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	f.values[name] = value
	f.touched[name] = true
	f.evaluate(name)
	for _, dep := range f.dependents[name] {
		f.evaluate(dep)
	}
	return nil
}

// IsValid reports whether no field has a violated rule.
func (f *Form) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.valid()
}

// Values returns a copy of all field values keyed by name.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.copyValues()
}

// ValidationErrors aggregates every violation in field declaration order.
func (f *Form) ValidationErrors() validator.ValidationErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.collect(false)
}

// FieldState is one field as seen under a single read lock.
type FieldState struct {
	Name      string
	Value     string
	Errors    []validator.Kind
	Messages  []string
	Touched   bool
	FormValid bool
}

// State returns the state of name and the validity of the whole form, read
// together so a concurrent SetField cannot split them.
func (f *Form) State(name string) FieldState {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return FieldState{
		Name:      name,
		Value:     f.values.Get(name),
		Errors:    slices.Clone(f.errors[name]),
		Messages:  f.check(name).Messages(),
		Touched:   f.touched[name],
		FormValid: f.valid(),
	}
}

// Snapshot is a consistent copy of the whole form. Visible holds only the
// errors of fields the user has set, so a fresh form does not greet the user
// with a wall of messages.
type Snapshot struct {
	Values  map[string]string
	Valid   bool
	Errors  validator.ValidationErrors
	Visible validator.ValidationErrors
}

// Snapshot copies values, validity and errors under one read lock.
func (f *Form) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return Snapshot{
		Values:  f.copyValues(),
		Valid:   f.valid(),
		Errors:  f.collect(false),
		Visible: f.collect(true),
	}
}

// Fields returns the field declarations in order.
func (f *Form) Fields() []Field {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Field, len(f.fields))
	for i, field := range f.fields {
		out[i] = Field{Name: field.Name, Rules: slices.Clone(field.Rules)}
	}
	return out
}

// Reset clears every value and touched flag.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	clear(f.values)
	clear(f.touched)
	for _, field := range f.fields {
		f.evaluate(field.Name)
	}
}

// evaluate must be called with mu held for writing.
func (f *Form) evaluate(name string) {
	field := f.fields[f.index[name]]
	f.errors[name] = validator.Evaluate(field.Rules, f.values.Get(name), f.values)
}

// The helpers below must be called with mu held.

func (f *Form) valid() bool {
	for _, kinds := range f.errors {
		if len(kinds) > 0 {
			return false
		}
	}
	return true
}

func (f *Form) copyValues() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Name] = f.values.Get(field.Name)
	}
	return out
}

func (f *Form) collect(touchedOnly bool) validator.ValidationErrors {
	var out validator.ValidationErrors
	for _, field := range f.fields {
		if touchedOnly && !f.touched[field.Name] {
			continue
		}
		out = append(out, f.check(field.Name)...)
	}
	return out
}

func (f *Form) check(name string) validator.ValidationErrors {
	i, ok := f.index[name]
	if !ok {
		return nil
	}
	field := f.fields[i]
	return validator.Check(name, field.Rules, f.values.Get(name), f.values)
}

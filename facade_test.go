package scenegraph

import (
	"fmt"
	"testing"
)

// recordingLogger captures diagnostics so tests can assert on them.
type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) DebugEnabled() bool        { return false }
func (l *recordingLogger) SetDebug(enabled bool)     {}
func (l *recordingLogger) Debugf(f string, a ...any) {}
func (l *recordingLogger) Infof(f string, a ...any)  {}
func (l *recordingLogger) Errorf(f string, a ...any) {}

func (l *recordingLogger) Warnf(f string, a ...any) {
	l.warns = append(l.warns, fmt.Sprintf(f, a...))
}

// countingNotify returns an onUpdate callback and a pointer to the number
// of times it fired.
func countingNotify() (func(), *int) {
	count := 0
	return func() { count++ }, &count
}

func TestElementDetachedWithoutSet(t *testing.T) {
	e := makeElement(nil, nil, nil)
	if e.bound() {
		t.Errorf("Expected element without a correlated set to be detached")
	}

	empty := makeElement(nil, MakeCorrelatedSet(), nil)
	if empty.bound() {
		t.Errorf("Expected element with an empty correlated set to be detached")
	}

	bound := makeElement(nil, MakeCorrelatedSet(NewStandardMaterial()), nil)
	if !bound.bound() {
		t.Errorf("Expected element with a non-empty correlated set to be bound")
	}
}

func TestElementNotifyTolerantOfNilCallback(t *testing.T) {
	e := makeElement(nil, nil, nil)
	e.notify() // must not panic

	notify, count := countingNotify()
	e = makeElement(notify, nil, nil)
	e.notify()
	e.notify()
	if *count != 2 {
		t.Errorf("Expected 2 notifications, got %d", *count)
	}
}

func TestElementEachHandleVisitsAllMembers(t *testing.T) {
	a := NewStandardMaterial()
	b := NewStandardMaterial()
	e := makeElement(nil, MakeCorrelatedSet(a, b), nil)

	visited := 0
	e.eachHandle(func(h MaterialHandle) { visited++ })
	if visited != 2 {
		t.Errorf("Expected 2 handles visited, got %d", visited)
	}

	detached := makeElement(nil, nil, nil)
	detached.eachHandle(func(h MaterialHandle) {
		t.Errorf("Detached element must not visit handles")
	})
}

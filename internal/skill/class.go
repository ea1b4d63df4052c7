package skill

import (
	"errors"
	"fmt"
	"strings"
)

// ClassDescriptor describes a skill class: its identity surface and the
// immutable event→callback registry built once at class definition time.
// Shared read-only by every instance of the class.
type ClassDescriptor struct {
	classID     string
	displayName string
	description string
	maxLevel    int32
	hasMaxLevel bool

	// Event registry. eventNames preserves first-discovered key order,
	// callback lists preserve declaration order with inherited callbacks
	// preceding ones declared on this class.
	eventNames []string
	callbacks  map[string][]Callback
}

// ClassID returns the stable unique identifier of the skill class.
func (d *ClassDescriptor) ClassID() string { return d.classID }

// DisplayName returns the human-readable skill name.
func (d *ClassDescriptor) DisplayName() string { return d.displayName }

// Description returns the short skill description.
func (d *ClassDescriptor) Description() string { return d.description }

// MaxLevel returns the level ceiling and whether one is set.
// ok == false means the skill can be leveled without bound.
func (d *ClassDescriptor) MaxLevel() (level int32, ok bool) {
	return d.maxLevel, d.hasMaxLevel
}

// Events returns the registered event names in first-discovered order.
func (d *ClassDescriptor) Events() []string {
	evs := make([]string, len(d.eventNames))
	copy(evs, d.eventNames)
	return evs
}

// CallbackCount returns how many callbacks are registered for an event.
func (d *ClassDescriptor) CallbackCount(eventName string) int {
	return len(d.callbacks[eventName])
}

// CallbackNames returns the registered callback names for an event, in
// invocation order.
func (d *ClassDescriptor) CallbackNames(eventName string) []string {
	cbs := d.callbacks[eventName]
	names := make([]string, len(cbs))
	for i, cb := range cbs {
		names[i] = cb.name
	}
	return names
}

// ClassBuilder assembles a ClassDescriptor. Declare callbacks with On,
// optionally extend a base class, then call Build exactly once per class.
// Validation errors are collected and reported by Build.
type ClassBuilder struct {
	name string
	doc  string

	classID     string
	displayName string
	maxLevel    int32
	hasMaxLevel bool

	base     *ClassDescriptor
	declared []Callback

	errs []error
}

// NewClass starts building a skill class. name is the declared class name
// (underscores become spaces in the default display name), doc is the
// documentation text used as the default description.
func NewClass(name, doc string) *ClassBuilder {
	b := &ClassBuilder{name: name, doc: doc}
	if name == "" {
		b.errs = append(b.errs, errors.New("skill class name is empty"))
	}
	return b
}

// Extend sets the base class whose registry and max level are inherited.
func (b *ClassBuilder) Extend(base *ClassDescriptor) {
	if base == nil {
		b.errs = append(b.errs, fmt.Errorf("class %q: extend nil base", b.name))
		return
	}
	b.base = base
}

// On declares a named callback for one or more events. Declaring zero
// events is a caller error and fails the Build. A callback whose name
// matches one inherited from the base replaces the base entry in place
// for the events it declares; base registrations under other event names
// stay inherited untouched.
func (b *ClassBuilder) On(name string, fn CallbackFunc, events ...string) {
	cb, err := newCallback(name, fn, events...)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("class %q: %w", b.name, err))
		return
	}
	for _, prev := range b.declared {
		if prev.name == name {
			b.errs = append(b.errs, fmt.Errorf("class %q: callback %q declared twice", b.name, name))
			return
		}
	}
	b.declared = append(b.declared, cb)
}

// SetClassID overrides the default class ID (the declared class name).
func (b *ClassBuilder) SetClassID(id string) { b.classID = id }

// SetDisplayName overrides the default display name.
func (b *ClassBuilder) SetDisplayName(name string) { b.displayName = name }

// SetMaxLevel sets the level ceiling. Unset means unbounded, unless a base
// class sets one.
func (b *ClassBuilder) SetMaxLevel(level int32) {
	if level <= 0 {
		b.errs = append(b.errs, fmt.Errorf("class %q: max level %d must be positive", b.name, level))
		return
	}
	b.maxLevel = level
	b.hasMaxLevel = true
}

// Build resolves the class registry and returns the immutable descriptor.
// The base's registry entries come first; callbacks declared on this class
// either replace a same-named inherited entry in place or append after it.
// The resulting mapping never aliases the base's slices.
func (b *ClassBuilder) Build() (*ClassDescriptor, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	d := &ClassDescriptor{
		classID:     b.name,
		displayName: strings.ReplaceAll(b.name, "_", " "),
		description: b.doc,
		maxLevel:    b.maxLevel,
		hasMaxLevel: b.hasMaxLevel,
		callbacks:   make(map[string][]Callback, len(b.declared)),
	}
	if b.classID != "" {
		d.classID = b.classID
	}
	if b.displayName != "" {
		d.displayName = b.displayName
	}

	// Inherit the base's resolved registry by copy, never by reference
	if b.base != nil {
		d.eventNames = make([]string, len(b.base.eventNames))
		copy(d.eventNames, b.base.eventNames)
		for event, cbs := range b.base.callbacks {
			list := make([]Callback, len(cbs))
			copy(list, cbs)
			d.callbacks[event] = list
		}
		if !b.hasMaxLevel && b.base.hasMaxLevel {
			d.maxLevel = b.base.maxLevel
			d.hasMaxLevel = true
		}
	}

	// Merge callbacks declared on this class
	for _, cb := range b.declared {
		for _, event := range cb.events {
			list, ok := d.callbacks[event]
			if !ok {
				d.eventNames = append(d.eventNames, event)
			}
			replaced := false
			for i := range list {
				if list[i].name == cb.name {
					list[i] = cb
					replaced = true
					break
				}
			}
			if !replaced {
				list = append(list, cb)
			}
			d.callbacks[event] = list
		}
	}

	return d, nil
}

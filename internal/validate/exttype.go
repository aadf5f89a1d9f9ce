package validate

import (
	"fmt"

	"github.com/extlang/extc/internal/exttypes"
)

// ExtTypeValidator checks a class against its set of parent classes.
type ExtTypeValidator interface {
	Validate(ext *exttypes.ExtensionType) error
}

// OrderValidator verifies that a class's static-layout table is an
// order-preserving extension of every parent's corresponding table, so
// that an offset computed against a parent remains valid for instances
// of the child. The table to pull from the class is selected by Kind.
type OrderValidator struct {
	Kind exttypes.TableKind
}

func (v OrderValidator) Validate(ext *exttypes.ExtensionType) error {
	return validateExtendingOrder(ext.Table(v.Kind))
}

// validateExtendingOrder checks each parent table independently: its
// slots must appear in the same relative order, as a leading segment of
// the child table. The child may only append new slots after all
// inherited ones. Multiple parent orderings are never merged or
// linearized; each parent's contribution is verified on its own.
func validateExtendingOrder(t *exttypes.Table) error {
	for _, parent := range t.Parents {
		if parent.Len() > t.Len() {
			return &TableOrderError{Class: t.Owner, Parent: parent.Owner, Kind: t.Kind}
		}
		for i, slot := range parent.Slots {
			if t.Slots[i].Name != slot.Name {
				return &TableOrderError{Class: t.Owner, Parent: parent.Owner, Kind: t.Kind}
			}
		}
	}
	return nil
}

// Comparator decides whether a child slot type may reuse a parent
// slot's memory location.
type Comparator func(child, parent exttypes.Type) bool

// validateTypeTable applies cmp to every slot a table shares with each
// of its parents. A parent slot missing from the child is an internal
// invariant violation (the order validators guarantee inherited slots
// are present), not a comparator outcome.
func validateTypeTable(t *exttypes.Table, cmp Comparator) error {
	for _, parent := range t.Parents {
		for _, slot := range parent.Slots {
			childType, ok := t.Lookup(slot.Name)
			if !ok {
				return fmt.Errorf("internal: slot '%s' of parent '%s' missing from %s table of '%s'",
					slot.Name, parent.Owner, t.Kind, t.Owner)
			}
			if !cmp(childType, slot.Type) {
				return &IncompatibleSlotError{
					Class:      t.Owner,
					Slot:       slot.Name,
					Kind:       t.Kind,
					ChildType:  childType,
					ParentType: slot.Type,
				}
			}
		}
	}
	return nil
}

// AttributeTypeValidator requires an attribute redeclared in a child to
// keep the exact type it has in the parent. Both classes read and write
// the same memory slot, so compatibility is invariant: no covariant or
// contravariant substitution.
type AttributeTypeValidator struct{}

func (AttributeTypeValidator) Validate(ext *exttypes.ExtensionType) error {
	return validateTypeTable(ext.Attributes, func(child, parent exttypes.Type) bool {
		return child.Equal(parent)
	})
}

// MethodTypeValidator checks overriding method signatures in the
// vtable against the parent's. Receivers are dropped from both sides
// before comparing, so an override may narrow the receiver to the child
// class; everything else must match exactly. A static/instance binding
// mismatch is never compatible.
type MethodTypeValidator struct{}

func (MethodTypeValidator) Validate(ext *exttypes.ExtensionType) error {
	return validateTypeTable(ext.Methods, methodTypesCompatible)
}

func methodTypesCompatible(child, parent exttypes.Type) bool {
	cs, ok := child.(*exttypes.Signature)
	if !ok {
		return false
	}
	ps, ok := parent.(*exttypes.Signature)
	if !ok {
		return false
	}
	if cs.IsStatic != ps.IsStatic {
		return false
	}
	if cs.IsStatic {
		return cs.Equal(ps)
	}
	return cs.DropSelf().Equal(ps.DropSelf())
}

/**
 * Copyright (c) 2026, The GraphQL Compose Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

// createdTypes tracks the Type instance created for each TypeDefinition instance. An entry is
// inserted before the type is finalized so that cyclic references resolve to the in-progress
// instance instead of recursing forever; an entry whose finalization fails is removed again, so no
// half-built type stays published.
//
// The type system is single-threaded by construction (composition and materialization offer no
// concurrent entry point), so a plain map suffices.
var createdTypes = map[TypeDefinition]*newTypeResult{}

// newTypeResult is the value type of createdTypes.
type newTypeResult struct {
	// The created type; semi-initialized until done is set.
	t Type

	// done is set once finalization completed.
	done bool
}

// DiscardType drops the memoized instance created for typeDef, if any. Instances already handed
// out stay valid; the definition simply no longer resolves to them. Callers that generate a fresh
// TypeDefinition per build (such as the compose registry on every snapshot) should discard
// superseded definitions, or the memoization map retains an entry per stale snapshot.
func DiscardType(typeDef TypeDefinition) {
	delete(createdTypes, typeDef)
}

// typeDefinitionResolver resolves a TypeDefinition into a Type during type finalization.
type typeDefinitionResolver func(typeDef TypeDefinition) (Type, error)

// typeCreator defines the interfaces required to work with newTypeImpl to create a type instance.
type typeCreator interface {
	// TypeDefinition returns the TypeDefinition instance processed by this creator.
	TypeDefinition() TypeDefinition

	// LoadDataAndNew validates definition data and creates a "semi-initialized" Type instance.
	// It must not resolve any referenced TypeDefinition.
	LoadDataAndNew() (Type, error)

	// Finalize completes type creation for the t that was returned from LoadDataAndNew. Any type
	// reference resolution, such as resolving a field type when defining an Object, must be done
	// here: at this point t has been published to createdTypes, so loading any dependent type,
	// including the type being defined, terminates.
	Finalize(t Type, typeDefResolver typeDefinitionResolver) error
}

func newCreatorFor(typeDef TypeDefinition) typeCreator {
	switch typeDef := typeDef.(type) {
	case *ScalarConfig:
		return &scalarTypeCreator{typeDef}
	case *EnumConfig:
		return &enumTypeCreator{typeDef}
	case *ObjectConfig:
		return &objectTypeCreator{typeDef}
	case *InterfaceConfig:
		return &interfaceTypeCreator{typeDef}
	case *UnionConfig:
		return &unionTypeCreator{typeDef}
	case *InputObjectConfig:
		return &inputObjectTypeCreator{typeDef}
	case listTypeDefinition:
		return &listTypeCreator{typeDef}
	case nonNullTypeDefinition:
		return &nonNullTypeCreator{typeDef}
	case nil:
		return nilTypeCreator{}
	}
	panic("unknown type of TypeDefinition")
}

// nilTypeCreator is an artificial type creator dealing with a nil TypeDefinition. It resolves to a
// nil Type without raising an error; the callers that require a non-nil type raise their own.
type nilTypeCreator struct{}

var _ typeCreator = nilTypeCreator{}

// TypeDefinition implements typeCreator.
func (nilTypeCreator) TypeDefinition() TypeDefinition { return nil }

// LoadDataAndNew implements typeCreator.
func (nilTypeCreator) LoadDataAndNew() (Type, error) { return nil, nil }

// Finalize implements typeCreator.
func (nilTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error { return nil }

// resolveTypeDefinition turns a TypeDefinition into a Type. This is the typeDefinitionResolver
// handed to every creator's Finalize.
func resolveTypeDefinition(typeDef TypeDefinition) (Type, error) {
	switch typeDef := typeDef.(type) {
	case nil:
		return nil, nil

	case typeWrapperTypeDefinition:
		return typeDef.Type(), nil

	case *deferredTypeDefinition:
		t, err := typeDef.Resolve()
		if err != nil {
			return nil, NewError("failed to resolve deferred type reference", ErrKindMaterialization, err)
		}
		if t == nil {
			return nil, NewError("deferred type reference resolved to nil", ErrKindMaterialization)
		}
		return t, nil
	}

	return newTypeImpl(newCreatorFor(typeDef))
}

// newTypeImpl is the internal implementation of NewType for creating a type instance from a given
// TypeDefinition. Call NewType (or its variants such as NewEnum) instead of calling it directly.
//
// The walk is depth-first: a type definition is instantiated, published, and then finalized, which
// in turn resolves every definition it references. A definition that is reached again while its
// finalization is still on the stack finds its published in-progress instance and stops the
// recursion, which is what makes cyclic type graphs terminate.
func newTypeImpl(creator typeCreator) (Type, error) {
	typeDef := creator.TypeDefinition()

	// Already created (or in the middle of finalization further up the stack)?
	if result, ok := createdTypes[typeDef]; ok {
		return result.t, nil
	}

	// Load data from the TypeDefinition and initialize a type instance. This must not resolve any
	// TypeDefinition referenced in typeDef.
	typeInstance, err := creator.LoadDataAndNew()
	if err != nil {
		return nil, err
	}

	result := &newTypeResult{t: typeInstance}
	createdTypes[typeDef] = result

	if err := creator.Finalize(typeInstance, resolveTypeDefinition); err != nil {
		// Discard the partial result; the slot must not keep a half-built type.
		delete(createdTypes, typeDef)
		return nil, err
	}

	result.done = true
	return typeInstance, nil
}

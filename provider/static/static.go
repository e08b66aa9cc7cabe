/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package static

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"dirpx.dev/discover/apis"
)

var (
	// ErrEmptyType is returned when a type without an ID is added.
	ErrEmptyType = errors.New("discover(static): empty type id")
	// ErrDuplicateType is returned when a type ID is added twice.
	ErrDuplicateType = errors.New("discover(static): duplicate type")
)

// Type declares one type and its structural metadata.
type Type struct {
	ID           apis.TypeID
	Parent       apis.TypeID // empty means the universal root
	Annotations  []apis.Annotation
	Fields       []apis.Member
	Constructors []apis.Executable
	Methods      []apis.Executable
}

// New returns an empty Provider.
func New() *Provider {
	return &Provider{
		types: make(map[apis.TypeID]*Type),
		kinds: make(map[apis.Kind][]apis.Annotation),
	}
}

// Provider is an in-memory apis.Provider fed with declarations. Types not
// declared (including parents) have no metadata. It is safe for concurrent
// use; declarations are expected to be complete before discovery runs.
type Provider struct {
	mu    sync.RWMutex
	types map[apis.TypeID]*Type
	order []apis.TypeID
	kinds map[apis.Kind][]apis.Annotation
}

// Ensure Provider implements apis.Provider.
var _ apis.Provider = (*Provider)(nil)

// AddType declares t.
func (p *Provider) AddType(t Type) error {
	if t.ID == "" {
		return ErrEmptyType
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.types[t.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, t.ID)
	}
	p.types[t.ID] = &t
	p.order = append(p.order, t.ID)
	return nil
}

// MustAddType is like AddType but panics on error. Meant for tests and
// package-level declarations.
func (p *Provider) MustAddType(t Type) *Provider {
	if err := p.AddType(t); err != nil {
		panic(err)
	}
	return p
}

// DeclareKind appends meta-annotations to the declaration of kind k.
// Declaring a kind without annotations only makes it known.
func (p *Provider) DeclareKind(k apis.Kind, meta ...apis.Annotation) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kinds[k] = append(p.kinds[k], meta...)
	return p
}

// Types returns the declared type IDs in declaration order.
func (p *Provider) Types() []apis.TypeID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.order)
}

// Kinds returns the number of declared kinds.
func (p *Provider) Kinds() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.kinds)
}

func (p *Provider) lookup(t apis.TypeID) (*Type, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ty, ok := p.types[t]
	return ty, ok
}

// Annotations returns the annotations declared on t.
func (p *Provider) Annotations(t apis.TypeID) []apis.Annotation {
	if ty, ok := p.lookup(t); ok {
		return slices.Clone(ty.Annotations)
	}
	return nil
}

// Parent returns the declared parent of t.
func (p *Provider) Parent(t apis.TypeID) (apis.TypeID, bool) {
	if ty, ok := p.lookup(t); ok && ty.Parent != "" {
		return ty.Parent, true
	}
	return "", false
}

// Fields returns the fields of t.
func (p *Provider) Fields(t apis.TypeID) []apis.Member {
	if ty, ok := p.lookup(t); ok {
		return slices.Clone(ty.Fields)
	}
	return nil
}

// Constructors returns the constructors of t.
func (p *Provider) Constructors(t apis.TypeID) []apis.Executable {
	if ty, ok := p.lookup(t); ok {
		return slices.Clone(ty.Constructors)
	}
	return nil
}

// Methods returns the methods of t.
func (p *Provider) Methods(t apis.TypeID) []apis.Executable {
	if ty, ok := p.lookup(t); ok {
		return slices.Clone(ty.Methods)
	}
	return nil
}

// KindAnnotations returns the meta-annotations declared for k.
func (p *Provider) KindAnnotations(k apis.Kind) []apis.Annotation {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.kinds[k])
}

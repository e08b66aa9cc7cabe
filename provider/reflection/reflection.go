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

package reflection

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"sync"

	"dirpx.dev/discover/apis"
	uref "dirpx.dev/discover/utils/reflect"
)

// TagKey is the struct tag read for field annotations.
const TagKey = "discover"

var (
	// ErrUnsupportedValue is returned by Register for nil values.
	ErrUnsupportedValue = errors.New("discover(reflection): nil value provided")
	// ErrIDCollision is returned when two distinct types map to the same TypeID,
	// e.g. two instantiations of one generic type.
	ErrIDCollision = errors.New("discover(reflection): type id collision")
)

// Annotated is implemented by types that declare annotations on their own
// declaration. It is called on a zero value (through a pointer, so both
// receiver kinds work) and must not depend on instance state.
type Annotated interface {
	DiscoveryAnnotations() []apis.Annotation
}

// MethodAnnotated is implemented by types that declare annotations on their
// methods. Keys are method names for the method itself and "Name.N" for its
// N-th parameter (zero-based, receiver excluded).
type MethodAnnotated interface {
	MethodAnnotations() map[string][]apis.Annotation
}

// New returns an empty Provider.
func New() *Provider {
	return &Provider{
		types: make(map[apis.TypeID]reflect.Type),
		kinds: make(map[apis.Kind][]apis.Annotation),
	}
}

// Provider is an apis.Provider over Go types. Type annotations come from
// Annotated, field annotations from the "discover" struct tag, method and
// method parameter annotations from MethodAnnotated. The ancestor of a
// struct is its first embedded field. Go has no constructors, so none are
// reported.
//
// Metadata is computed once per type and cached.
type Provider struct {
	mu    sync.RWMutex
	types map[apis.TypeID]reflect.Type
	kinds map[apis.Kind][]apis.Annotation

	meta sync.Map // key: apis.TypeID, val: *typeMeta
}

// Ensure Provider implements apis.Provider.
var _ apis.Provider = (*Provider)(nil)

// typeMeta is the cached metadata of one type.
type typeMeta struct {
	annotations []apis.Annotation
	parent      apis.TypeID
	fields      []apis.Member
	methods     []apis.Executable
}

// IDOf returns the TypeID of the nearest named type of t.
func IDOf(t reflect.Type) (apis.TypeID, error) {
	n, err := uref.Normalize(t, 0)
	if err != nil {
		return "", err
	}
	return apis.TypeID(uref.TypeName(n)), nil
}

// Register makes the types of values known and returns their IDs.
// A value may be a reflect.Type or any value of the type.
func (p *Provider) Register(values ...any) ([]apis.TypeID, error) {
	ids := make([]apis.TypeID, 0, len(values))
	for _, v := range values {
		var t reflect.Type
		switch x := v.(type) {
		case nil:
			return nil, ErrUnsupportedValue
		case reflect.Type:
			t = x
		default:
			t = reflect.TypeOf(v)
		}
		id, err := p.RegisterType(t)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RegisterType makes t (normalized) known and returns its ID. Registering
// the same type twice is a no-op.
func (p *Provider) RegisterType(t reflect.Type) (apis.TypeID, error) {
	n, err := uref.Normalize(t, 0)
	if err != nil {
		return "", err
	}
	id := apis.TypeID(uref.TypeName(n))

	p.mu.Lock()
	defer p.mu.Unlock()
	if old, ok := p.types[id]; ok {
		if old != n {
			return "", fmt.Errorf("%w: %s", ErrIDCollision, id)
		}
		return id, nil
	}
	p.types[id] = n
	return id, nil
}

// DeclareKind appends meta-annotations to the declaration of kind k.
func (p *Provider) DeclareKind(k apis.Kind, meta ...apis.Annotation) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kinds[k] = append(p.kinds[k], meta...)
	return p
}

// Type returns the reflect.Type registered under id.
func (p *Provider) Type(id apis.TypeID) (reflect.Type, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.types[id]
	return t, ok
}

// Annotations returns the annotations t declares through Annotated.
func (p *Provider) Annotations(t apis.TypeID) []apis.Annotation {
	if m := p.load(t); m != nil {
		return slices.Clone(m.annotations)
	}
	return nil
}

// Parent returns the first embedded struct type of t.
func (p *Provider) Parent(t apis.TypeID) (apis.TypeID, bool) {
	if m := p.load(t); m != nil && m.parent != "" {
		return m.parent, true
	}
	return "", false
}

// Fields returns the non-embedded struct fields of t.
func (p *Provider) Fields(t apis.TypeID) []apis.Member {
	if m := p.load(t); m != nil {
		return slices.Clone(m.fields)
	}
	return nil
}

// Constructors always returns nil.
func (p *Provider) Constructors(apis.TypeID) []apis.Executable {
	return nil
}

// Methods returns the exported methods of *t.
func (p *Provider) Methods(t apis.TypeID) []apis.Executable {
	if m := p.load(t); m != nil {
		return slices.Clone(m.methods)
	}
	return nil
}

// KindAnnotations returns the meta-annotations declared for k.
func (p *Provider) KindAnnotations(k apis.Kind) []apis.Annotation {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.kinds[k])
}

// load returns the cached metadata of id, computing it on first use.
// Unknown IDs yield nil.
func (p *Provider) load(id apis.TypeID) *typeMeta {
	if v, ok := p.meta.Load(id); ok {
		return v.(*typeMeta)
	}
	t, ok := p.Type(id)
	if !ok {
		return nil
	}
	m := p.build(t)
	v, _ := p.meta.LoadOrStore(id, m)
	return v.(*typeMeta)
}

// build computes the metadata of t.
func (p *Provider) build(t reflect.Type) *typeMeta {
	m := &typeMeta{}
	zero := reflect.New(t).Interface()
	if a, ok := zero.(Annotated); ok {
		m.annotations = a.DiscoveryAnnotations()
	}

	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous {
				if m.parent == "" {
					if id, err := p.RegisterType(f.Type); err == nil {
						m.parent = id
					}
				}
				continue
			}
			m.fields = append(m.fields, apis.Member{
				Name:        f.Name,
				Exported:    f.IsExported(),
				Annotations: ParseTag(f.Tag.Get(TagKey)),
			})
		}
	}

	var byMethod map[string][]apis.Annotation
	if a, ok := zero.(MethodAnnotated); ok {
		byMethod = a.MethodAnnotations()
	}
	pt := reflect.PointerTo(t)
	for i := 0; i < pt.NumMethod(); i++ {
		meth := pt.Method(i)
		switch meth.Name {
		case "DiscoveryAnnotations", "MethodAnnotations":
			continue
		}
		e := apis.Executable{
			Member: apis.Member{
				Name:        meth.Name,
				Exported:    meth.IsExported(),
				Annotations: byMethod[meth.Name],
			},
		}
		// In[0] is the receiver.
		for j := 1; j < meth.Type.NumIn(); j++ {
			e.Parameters = append(e.Parameters, apis.Parameter{
				Name:        "arg" + strconv.Itoa(j-1),
				Annotations: byMethod[meth.Name+"."+strconv.Itoa(j-1)],
			})
		}
		m.methods = append(m.methods, e)
	}
	return m
}

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

package reflection_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/collector"
	"dirpx.dev/discover/config"
	"dirpx.dev/discover/descriptor"
	"dirpx.dev/discover/provider/reflection"
)

const pkg = "dirpx.dev/discover/provider/reflection_test"

type Entity struct {
	ID string
}

func (*Entity) DiscoveryAnnotations() []apis.Annotation {
	return []apis.Annotation{{Kind: "app.Tracked"}}
}

type Repo struct{}

type Orders struct {
	Entity

	Repo    *Repo  `discover:"inject.Inject"`
	DSN     string `discover:"config.Value key=db.dsn required; inject.Named value=dsn"`
	Plain   int
	private string `discover:"app.Secret"`
}

func (Orders) DiscoveryAnnotations() []apis.Annotation {
	return []apis.Annotation{{Kind: "app.Service"}}
}

func (*Orders) MethodAnnotations() map[string][]apis.Annotation {
	return map[string][]apis.Annotation{
		"Handle":   {{Kind: "app.Route", Attributes: apis.Attributes{"path": "/orders"}}},
		"Handle.1": {{Kind: "app.Body"}},
	}
}

func (o *Orders) Handle(ctx context.Context, req string) error { return nil }

func (o Orders) Name() string { return o.private }

func TestIDOf(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(Orders{}),
		reflect.TypeOf(&Orders{}),
		reflect.TypeOf([]*Orders{}),
	} {
		id, err := reflection.IDOf(typ)
		require.NoError(t, err)
		assert.Equal(t, apis.TypeID(pkg+".Orders"), id)
	}

	_, err := reflection.IDOf(reflect.TypeOf(struct{}{}))
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	p := reflection.New()

	ids, err := p.Register(Orders{}, reflect.TypeOf(&Repo{}), &Orders{})
	require.NoError(t, err)
	assert.Equal(t, []apis.TypeID{pkg + ".Orders", pkg + ".Repo", pkg + ".Orders"}, ids)

	typ, ok := p.Type(pkg + ".Orders")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(Orders{}), typ)

	_, err = p.Register(nil)
	assert.ErrorIs(t, err, reflection.ErrUnsupportedValue)
}

func TestProvider_Structure(t *testing.T) {
	p := reflection.New()
	ids, err := p.Register(Orders{})
	require.NoError(t, err)
	id := ids[0]

	assert.Equal(t, []apis.Annotation{{Kind: "app.Service"}}, p.Annotations(id))

	parent, ok := p.Parent(id)
	require.True(t, ok)
	assert.Equal(t, apis.TypeID(pkg+".Entity"), parent)
	assert.Equal(t, []apis.Annotation{{Kind: "app.Tracked"}}, p.Annotations(parent))
	_, ok = p.Parent(parent)
	assert.False(t, ok)

	fields := p.Fields(id)
	require.Len(t, fields, 4)
	assert.Equal(t, "Repo", fields[0].Name)
	assert.Equal(t, []apis.Annotation{{Kind: "inject.Inject"}}, fields[0].Annotations)
	assert.Equal(t, []apis.Annotation{
		{Kind: "config.Value", Attributes: apis.Attributes{"key": "db.dsn", "required": true}},
		{Kind: "inject.Named", Attributes: apis.Attributes{"value": "dsn"}},
	}, fields[1].Annotations)
	assert.Empty(t, fields[2].Annotations)
	assert.False(t, fields[3].Exported)

	assert.Nil(t, p.Constructors(id))

	methods := p.Methods(id)
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Handle", "Name"}, names)
	handle := methods[0]
	require.Len(t, handle.Parameters, 2)
	assert.Equal(t, "arg0", handle.Parameters[0].Name)
	assert.Empty(t, handle.Parameters[0].Annotations)
	assert.Equal(t, []apis.Annotation{{Kind: "app.Body"}}, handle.Parameters[1].Annotations)
}

func TestProvider_UnknownType(t *testing.T) {
	p := reflection.New()

	assert.Nil(t, p.Annotations("x.Unknown"))
	assert.Nil(t, p.Fields("x.Unknown"))
	assert.Nil(t, p.Methods("x.Unknown"))
	_, ok := p.Parent("x.Unknown")
	assert.False(t, ok)
}

func TestProvider_EndToEnd(t *testing.T) {
	p := reflection.New()
	p.DeclareKind("app.Service", apis.Annotation{Kind: "discover.Discoverable"})
	ids, err := p.Register(&Orders{})
	require.NoError(t, err)

	c := collector.New(p, config.DefaultConfig())
	d := descriptor.Of(c, ids[0])

	for k, want := range map[apis.Kind]apis.Location{
		"app.Service":           apis.LocationType,
		"discover.Discoverable": apis.LocationType,
		"app.Tracked":           apis.LocationSuperType,
		"inject.Inject":         apis.LocationField,
		"config.Value":          apis.LocationField,
		"app.Route":             apis.LocationMethod,
		"app.Body":              apis.LocationMethodParameter,
	} {
		got, ok := d.Location(k)
		if assert.True(t, ok, "%s", k) {
			assert.Equal(t, want, got, "%s", k)
		}
	}
	assert.False(t, d.Has("app.Secret"))
	assert.False(t, d.IsExcluded())
}

func TestParseTag(t *testing.T) {
	cases := []struct {
		tag  string
		want []apis.Annotation
	}{
		{"", nil},
		{" ; ", nil},
		{"a.K", []apis.Annotation{{Kind: "a.K"}}},
		{"a.K x=1 y", []apis.Annotation{{Kind: "a.K", Attributes: apis.Attributes{"x": "1", "y": true}}}},
		{"a.K;b.L v=a=b", []apis.Annotation{{Kind: "a.K"}, {Kind: "b.L", Attributes: apis.Attributes{"v": "a=b"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.want, reflection.ParseTag(tc.tag))
		})
	}
}

func TestProvider_AccessorsReturnCopies(t *testing.T) {
	p := reflection.New()
	p.DeclareKind("app.Service", apis.Annotation{Kind: "discover.Discoverable"})
	ids, err := p.Register(Orders{})
	require.NoError(t, err)

	meta := p.KindAnnotations("app.Service")
	meta[0] = apis.Annotation{Kind: "x.Changed"}
	assert.Equal(t, []apis.Annotation{{Kind: "discover.Discoverable"}}, p.KindAnnotations("app.Service"))

	anns := p.Annotations(ids[0])
	anns[0] = apis.Annotation{Kind: "x.Changed"}
	assert.Equal(t, []apis.Annotation{{Kind: "app.Service"}}, p.Annotations(ids[0]))

	fields := p.Fields(ids[0])
	fields[0].Name = "Other"
	assert.Equal(t, "Repo", p.Fields(ids[0])[0].Name)
}

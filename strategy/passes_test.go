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

package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/discover/apis"
	fx "dirpx.dev/discover/internal/fixture"
	"dirpx.dev/discover/provider/static"
	"dirpx.dev/discover/strategy"
)

func kinds(anns []apis.Annotation) []apis.Kind {
	out := make([]apis.Kind, 0, len(anns))
	for _, a := range anns {
		out = append(out, a.Kind)
	}
	return out
}

func TestPasses_FixedOrder(t *testing.T) {
	passes := strategy.Passes()
	require.Len(t, passes, len(apis.Locations()))
	for i, loc := range apis.Locations() {
		assert.Equal(t, loc, passes[i].Location(), "pass %d", i)
	}
}

func TestPasses_DirectOnOrders(t *testing.T) {
	p := fx.World()

	cases := []struct {
		pass apis.Pass
		want []apis.Kind
	}{
		{strategy.NewTypePass(), []apis.Kind{fx.Service, fx.Named, fx.Document}},
		{strategy.NewSuperTypePass(), []apis.Kind{fx.Audited, fx.Tracked}},
		{strategy.NewFieldPass(), []apis.Kind{fx.Inject}},
		{strategy.NewConstructorPass(), []apis.Kind{fx.Inject}},
		{strategy.NewConstructorParameterPass(), []apis.Kind{fx.Value}},
		{strategy.NewMethodPass(), []apis.Kind{fx.Route}},
		{strategy.NewMethodParameterPass(), []apis.Kind{fx.Body}},
	}
	for _, tc := range cases {
		t.Run(tc.pass.Location().String(), func(t *testing.T) {
			assert.Equal(t, tc.want, kinds(tc.pass.Direct(p, fx.Orders)))
		})
	}
}

func TestPasses_NothingOnPlain(t *testing.T) {
	p := fx.World()
	for _, pass := range strategy.Passes() {
		assert.Empty(t, pass.Direct(p, fx.Plain), "%s", pass.Location())
	}
}

func TestSuperTypePass_NearestFirstAndCycleSafe(t *testing.T) {
	p := static.New()
	p.MustAddType(static.Type{ID: "a.A", Parent: "a.B"})
	p.MustAddType(static.Type{ID: "a.B", Parent: "a.C", Annotations: []apis.Annotation{{Kind: "k.B"}}})
	p.MustAddType(static.Type{ID: "a.C", Parent: "a.A", Annotations: []apis.Annotation{{Kind: "k.C"}}})

	got := kinds(strategy.NewSuperTypePass().Direct(p, "a.A"))
	assert.Equal(t, []apis.Kind{"k.B", "k.C"}, got)
}

func TestSuperTypePass_UndeclaredParentContributesNothing(t *testing.T) {
	p := static.New()
	p.MustAddType(static.Type{ID: "a.A", Parent: "ext.Base"})

	assert.Empty(t, strategy.NewSuperTypePass().Direct(p, "a.A"))
}

func TestParameterPass_SkipsParametersOfUnexportedExecutables(t *testing.T) {
	p := static.New()
	p.MustAddType(static.Type{
		ID: "a.A",
		Methods: []apis.Executable{
			{
				Member:     apis.Member{Name: "run", Exported: false},
				Parameters: []apis.Parameter{{Name: "x", Annotations: []apis.Annotation{{Kind: "k.X"}}}},
			},
			{
				Member:     apis.Member{Name: "Run", Exported: true},
				Parameters: []apis.Parameter{{Name: "y", Annotations: []apis.Annotation{{Kind: "k.Y"}}}},
			},
		},
	})

	assert.Equal(t, []apis.Kind{"k.Y"}, kinds(strategy.NewMethodParameterPass().Direct(p, "a.A")))
	assert.Empty(t, strategy.NewMethodPass().Direct(p, "a.A"))
}

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

package collector_test

//go:generate mockgen -source=../apis/provider.go -destination=../apis/mocks/mocks.go -package=mocks Provider

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/apis/mocks"
	"dirpx.dev/discover/collector"
	"dirpx.dev/discover/config"
)

// CollectorProviderSuite checks how the collector drives its provider:
// which questions it asks, and which it must not ask.
type CollectorProviderSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *mocks.MockProvider
}

func TestCollectorProviderSuite(t *testing.T) {
	suite.Run(t, new(CollectorProviderSuite))
}

func (s *CollectorProviderSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = mocks.NewMockProvider(s.ctrl)
}

func (s *CollectorProviderSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectEmptyMembers stubs the member passes for t.
func (s *CollectorProviderSuite) expectEmptyMembers(t apis.TypeID) {
	s.provider.EXPECT().Fields(t).Return(nil).AnyTimes()
	s.provider.EXPECT().Constructors(t).Return(nil).AnyTimes()
	s.provider.EXPECT().Methods(t).Return(nil).AnyTimes()
}

func (s *CollectorProviderSuite) TestSuperTypeWalkStopsAtRoot() {
	s.provider.EXPECT().Annotations(apis.TypeID("a.Child")).Return(nil)
	s.provider.EXPECT().Parent(apis.TypeID("a.Child")).Return(apis.TypeID("a.Parent"), true)
	s.provider.EXPECT().Parent(apis.TypeID("a.Parent")).Return(apis.TypeID(""), false)
	s.provider.EXPECT().Annotations(apis.TypeID("a.Parent")).Return([]apis.Annotation{{Kind: "a.K"}})
	s.provider.EXPECT().KindAnnotations(apis.Kind("a.K")).Return(nil)
	s.expectEmptyMembers("a.Child")

	c := collector.New(s.provider, config.DefaultConfig())
	got := c.Collect("a.Child")

	s.Require().Len(got, 1)
	s.Equal(apis.Instance{Kind: "a.K", Location: apis.LocationSuperType}, got[0])
}

func (s *CollectorProviderSuite) TestSuperTypeCycleStops() {
	s.provider.EXPECT().Annotations(gomock.Any()).Return(nil).AnyTimes()
	s.provider.EXPECT().Parent(apis.TypeID("a.A")).Return(apis.TypeID("a.B"), true).Times(1)
	s.provider.EXPECT().Parent(apis.TypeID("a.B")).Return(apis.TypeID("a.A"), true).Times(1)
	s.expectEmptyMembers("a.A")

	c := collector.New(s.provider, config.DefaultConfig())
	s.Empty(c.Collect("a.A"))
}

func (s *CollectorProviderSuite) TestIgnoredKindsAreNotExpanded() {
	s.provider.EXPECT().Annotations(apis.TypeID("a.T")).Return([]apis.Annotation{{Kind: "meta.Retention"}})
	s.provider.EXPECT().Parent(apis.TypeID("a.T")).Return(apis.TypeID(""), false)
	s.expectEmptyMembers("a.T")
	// No KindAnnotations call is expected: gomock fails the test on one.

	c := collector.New(s.provider, config.DefaultConfig())
	s.Empty(c.Collect("a.T"))
}

func (s *CollectorProviderSuite) TestExpansionAsksOnlyOneLevel() {
	s.provider.EXPECT().Annotations(apis.TypeID("a.T")).Return([]apis.Annotation{{Kind: "a.Outer"}})
	s.provider.EXPECT().Parent(apis.TypeID("a.T")).Return(apis.TypeID(""), false)
	s.provider.EXPECT().KindAnnotations(apis.Kind("a.Outer")).Return([]apis.Annotation{{Kind: "a.Inner"}}).Times(1)
	s.expectEmptyMembers("a.T")

	c := collector.New(s.provider, config.DefaultConfig())
	got := c.Collect("a.T")

	s.Equal([]apis.Instance{
		{Kind: "a.Outer", Location: apis.LocationType},
		{Kind: "a.Inner", Location: apis.LocationType},
	}, got)
}

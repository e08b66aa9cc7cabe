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

// Package fixture declares a small annotated type model shared by tests.
package fixture

import (
	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/provider/static"
)

// Kinds used by the model.
const (
	Marker    apis.Kind = "discover.Discoverable"
	Qualifier apis.Kind = "inject.Qualifier"
	Retention apis.Kind = "meta.Retention"
	Document  apis.Kind = "meta.Documented"

	Service apis.Kind = "app.Service"
	Hidden  apis.Kind = "app.Hidden"
	Named   apis.Kind = "inject.Named"
	Inject  apis.Kind = "inject.Inject"
	Value   apis.Kind = "config.Value"
	Route   apis.Kind = "app.Route"
	Body    apis.Kind = "app.Body"
	Audited apis.Kind = "app.Audited"
	Tracked apis.Kind = "app.Tracked"
	Secret  apis.Kind = "app.Secret"
	Loop    apis.Kind = "app.Loop"
	Ping    apis.Kind = "app.Ping"
	Pong    apis.Kind = "app.Pong"
	Deep    apis.Kind = "app.Deep"
	Deeper  apis.Kind = "app.Deeper"
	Deepest apis.Kind = "app.Deepest"
)

// Types of the model.
const (
	// Orders carries annotations at every location.
	Orders apis.TypeID = "app.Orders"
	// Base is the parent of Orders.
	Base apis.TypeID = "app.Base"
	// Entity is the parent of Base.
	Entity apis.TypeID = "app.Entity"
	// Plain has no annotations anywhere.
	Plain apis.TypeID = "app.Plain"
	// Internal is marked and excluded through the Hidden stereotype.
	Internal apis.TypeID = "app.Internal"
	// Cyclic is annotated with self- and mutually-referencing kinds.
	Cyclic apis.TypeID = "app.Cyclic"
	// Chained is annotated with a three-level meta chain.
	Chained apis.TypeID = "app.Chained"
	// Direct carries the marker directly, not excluded.
	Direct apis.TypeID = "app.Direct"
)

// Ann is shorthand for an annotation with key/value attribute pairs.
func Ann(k apis.Kind, kv ...any) apis.Annotation {
	a := apis.Annotation{Kind: k}
	for i := 0; i+1 < len(kv); i += 2 {
		if a.Attributes == nil {
			a.Attributes = apis.Attributes{}
		}
		a.Attributes[kv[i].(string)] = kv[i+1]
	}
	return a
}

// World returns a fresh provider holding the model.
func World() *static.Provider {
	p := static.New()

	p.DeclareKind(Service, Ann(Marker), Ann(Retention))
	p.DeclareKind(Hidden, Ann(Marker, "exclude", true))
	p.DeclareKind(Named, Ann(Qualifier), Ann(Document))
	p.DeclareKind(Loop, Ann(Loop))
	p.DeclareKind(Ping, Ann(Pong))
	p.DeclareKind(Pong, Ann(Ping))
	p.DeclareKind(Deep, Ann(Deeper))
	p.DeclareKind(Deeper, Ann(Deepest))

	p.MustAddType(static.Type{
		ID:          Entity,
		Annotations: []apis.Annotation{Ann(Tracked)},
	})
	p.MustAddType(static.Type{
		ID:          Base,
		Parent:      Entity,
		Annotations: []apis.Annotation{Ann(Audited, "level", "high")},
	})
	p.MustAddType(static.Type{
		ID:     Orders,
		Parent: Base,
		Annotations: []apis.Annotation{
			Ann(Service),
			Ann(Named, "value", "orders"),
			Ann(Document),
		},
		Fields: []apis.Member{
			{Name: "Repo", Exported: true, Annotations: []apis.Annotation{Ann(Inject)}},
			{Name: "secret", Exported: false, Annotations: []apis.Annotation{Ann(Secret)}},
		},
		Constructors: []apis.Executable{
			{
				Member: apis.Member{Name: "NewOrders", Exported: true, Annotations: []apis.Annotation{Ann(Inject)}},
				Parameters: []apis.Parameter{
					{Name: "dsn", Annotations: []apis.Annotation{Ann(Value, "key", "db.dsn")}},
				},
			},
			{
				Member: apis.Member{Name: "newOrders", Exported: false, Annotations: []apis.Annotation{Ann(Secret)}},
				Parameters: []apis.Parameter{
					{Name: "x", Annotations: []apis.Annotation{Ann(Secret)}},
				},
			},
		},
		Methods: []apis.Executable{
			{
				Member: apis.Member{Name: "Handle", Exported: true, Annotations: []apis.Annotation{Ann(Route, "path", "/orders")}},
				Parameters: []apis.Parameter{
					{Name: "ctx"},
					{Name: "req", Annotations: []apis.Annotation{Ann(Body)}},
				},
			},
			{
				Member: apis.Member{Name: "helper", Exported: false, Annotations: []apis.Annotation{Ann(Secret)}},
			},
		},
	})
	p.MustAddType(static.Type{ID: Plain})
	p.MustAddType(static.Type{
		ID:          Internal,
		Annotations: []apis.Annotation{Ann(Hidden)},
	})
	p.MustAddType(static.Type{
		ID:          Cyclic,
		Annotations: []apis.Annotation{Ann(Loop), Ann(Ping)},
	})
	p.MustAddType(static.Type{
		ID:          Chained,
		Annotations: []apis.Annotation{Ann(Deep)},
	})
	p.MustAddType(static.Type{
		ID:          Direct,
		Annotations: []apis.Annotation{Ann(Marker)},
	})
	return p
}

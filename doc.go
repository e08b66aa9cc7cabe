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

// Package discover finds the annotations a type carries and indexes types
// by the annotation kinds they carry.
//
// An annotation is a piece of metadata attached to a structural element of
// a type: the type itself, its ancestors, its fields, constructors, methods
// and their parameters. Annotation kinds may themselves be annotated
// ("meta-annotations"); discovery follows those one level deep.
//
// # Design
//
// Discovery is split into three layers, leaves first:
//
//   - Collector (package collector): given a type, runs the seven
//     structural passes of package strategy in fixed order (TYPE,
//     SUPER_TYPE, FIELD, CONSTRUCTOR, CONSTRUCTOR_PARAMETER, METHOD,
//     METHOD_PARAMETER) and returns every observation, each tagged with
//     the location of the pass that found it. Kinds listed in the ignore
//     set are dropped everywhere.
//
//   - Descriptor (package descriptor): the immutable snapshot of one type.
//     It keeps exactly one instance per kind; when a kind is found at more
//     than one location, the last pass wins. It also keeps the qualifier
//     annotations declared on the type.
//
//   - Registry (package registry): the index from kind to descriptors. It
//     is sealed exactly once with a batch of descriptors and read-only
//     afterwards.
//
// Type metadata reaches the collector only through apis.Provider. The
// module ships two providers: provider/static, fed with declarations (see
// package manifest for loading them from YAML, TOML or JSON files), and
// provider/reflection, which reads Go types through struct tags and
// optional interfaces.
//
// # Lifecycle
//
// A host decides which types to scan and when scanning ends. Package
// driver offers a ready-made host loop:
//
//	e := discover.New(provider)
//	reg, drv, err := e.Discover(ctx, candidates)
//	for _, d := range reg.Query("app.Handler") { ... }
//	for _, t := range drv.Vetoed() { ... }
//
// Types used outside any discovery lifecycle can be registered directly:
//
//	reg := e.Of(types) // every type is found under the marker kind
//
// # Concurrency model
//
// Collection and sealing are synchronous. Exactly one Seal per registry
// succeeds, even under concurrent calls; the others return
// registry.ErrAlreadySealed. After sealing, Query, QueryAny and Enumerate
// are lock-free and safe for any number of readers. Ordering discovery
// before Seal, and Seal before reads, is the host's job.
//
// # Scope
//
// discover is not a general reflection framework. It does not follow
// meta-annotations deeper than the configured bound, does not persist its
// index, and has no scheduling or retry policy.
package discover

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

// Package compose provides the mutable composition layer over the graphql type system: a Registry
// of named types, per-kind composers (ObjectComposer, EnumComposer, ...) with a rich mutator
// surface, an SDL fragment parser, and a normalizer that lowers permissive type references into
// materialized types.
//
// A composer holds the canonical, editable description of one named type. Fields, values and
// members reference other types through TypeRefs (wrapped name strings, other composers, thunks,
// or already-materialized types) that resolve lazily against the registry, so declaration order
// and reference cycles never matter. Reading Type() materializes an immutable snapshot through
// the registry's memoizing, cycle-safe engine; mutating the composer afterwards invalidates the
// snapshot and the next read builds a fresh one.
//
// A Registry and its composers are not safe for concurrent use; treat them as one
// single-threaded unit of work.
package compose

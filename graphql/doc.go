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

// Package graphql implements the immutable side of the type system: materialized Scalar, Enum,
// Object, Interface, Union, InputObject, List and NonNull types, and the machinery that builds
// them from TypeDefinitions.
//
// Types are created from config structs (e.g. ObjectConfig) through the New functions. A config
// references its dependent types through TypeDefinition values, which may be other configs, the T
// wrapper around an already-materialized type, or the Deferred thunk for references that can only
// be resolved lazily. Materialization memoizes on definition identity and publishes instances
// before their references resolve, so cyclic type graphs (an Object whose field yields the Object
// itself, or two types referencing each other) build into ordinary cyclic pointer structures.
//
// Once materialized, a type never changes. The mutable composition layer lives in the sibling
// compose package.
package graphql

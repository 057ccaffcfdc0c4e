// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envschema validates named configuration values, usually the process
// environment, against a declarative in-memory schema.
//
// A single call walks every field of the schema, coerces each raw string to the
// field's declared type, applies defaults, and collects every violation instead
// of stopping at the first one. The caller receives either a fully typed
// [Result] or a [*ValidationError] that lists every problem found.
//
// Basic usage:
//
//	schema := envschema.NewSchema().
//		Field("PORT", envschema.Number().Default(3000).Min(1).Max(65535)).
//		Field("API_KEY", envschema.String().Secret()).
//		Field("DEBUG", envschema.Boolean().Optional()).
//		MustBuild()
//
//	cfg, err := envschema.ValidateEnv(schema)
//	if err != nil {
//		log.Fatal(err) // "Environment validation failed:\n- Missing required ..."
//	}
//	port := cfg.Int("PORT")
//
// Fields are required unless marked [FieldSpec.Optional] or given a
// [FieldSpec.Default]. Defaults are type-checked once, when the schema is
// built, and are used as-is afterwards.
//
// Supported types:
//   - string:  any value, stored unchanged.
//   - number:  decimal or 0x/0o/0b integer literal, optional inclusive Min/Max.
//   - boolean: exactly "true" or "false".
//   - url:     absolute URL with a scheme, stored unchanged.
//   - email:   local@domain.tld shape, stored unchanged.
//
// Values may come from the environment ([Environ]), an explicit mapping
// ([Map]) or several mappings layered on top of each other ([Layered]).
package envschema

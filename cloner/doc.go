// Package cloner rewrites a Keycloak realm export into an independently
// importable copy.
//
// Import path: github.com/erraggy/realmtools/cloner
//
// A realm export references its own entities through opaque identifiers
// embedded as string values: roles point at their container, clients at
// their scopes, flows at their executions. Importing an unmodified export
// next to the original realm therefore collides on every one of those
// identifiers. The cloner walks the whole document and replaces each
// identifier with a freshly generated one while preserving every reference
// relationship: two fields that held the same identifier before the clone
// hold the same (new) identifier after it.
//
// Beyond identifiers, the realm name itself leaks through redirect URIs,
// generated default-role names, and display text. The cloner rewrites those
// occurrences to the new realm name and removes masked secret placeholders
// so that the importing server generates fresh secrets.
//
// # Basic Usage
//
//	result, err := cloner.CloneWithOptions(
//		cloner.WithFilePath("ajax-realm.json"),
//		cloner.WithNewName("ajax-dev"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Remapped %d identifiers, %d field rewrites\n", result.IDCount, result.RewriteCount)
//
// # Detection Model
//
// Identifier detection is deliberately heuristic: a string value is treated
// as an entity reference when it matches the 8-4-4-4-12 hexadecimal shape
// and its field name is not in the fixed exemption set (see [IsExemptField]).
// Configuration values that merely look like identifiers (external client
// IDs, claim names, attribute names) are protected only by that set; the
// cloner makes no attempt to resolve references against a schema.
//
// The document is mutated in place. Callers that need the original tree
// after cloning must re-parse the source.
package cloner

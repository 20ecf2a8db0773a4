// Package realmtools provides tools for working with Keycloak realm export documents.
//
// realmtools clones an exported realm into an independently importable copy:
// every entity identifier in the export is replaced with a freshly generated
// one while all reference relationships between entities are preserved, and
// every occurrence of the realm name that leaks through URLs, generated role
// names, or display text is rewritten to the new name.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - parser: Load and analyze realm export documents (JSON or YAML)
//   - cloner: Rewrite a parsed export into a collision-free copy
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/realmtools
//
// # Quick Start
//
// Parse a realm export:
//
//	import "github.com/erraggy/realmtools/parser"
//
//	p := parser.New()
//	result, err := p.Parse("ajax-realm.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Realm: %s\n", result.RealmName)
//
// Clone a realm export under a new name:
//
//	import "github.com/erraggy/realmtools/cloner"
//
//	result, err := cloner.CloneWithOptions(
//		cloner.WithFilePath("ajax-realm.json"),
//		cloner.WithNewName("ajax-dev"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Remapped %d identifiers\n", result.IDCount)
//
// # Command Line
//
// The realmtools binary wraps both packages:
//
//	realmtools clone -n ajax-dev ajax-realm.json
//	realmtools inspect ajax-realm.json
//	realmtools mcp
//
// Run 'realmtools help' for the full command reference.
package realmtools

// Package parser loads Keycloak realm export documents.
//
// Import path: github.com/erraggy/realmtools/parser
//
// A realm export is an arbitrarily nested tree of records and sequences.
// The parser keeps the document as a generic map[string]any so that the
// cloner package can rewrite fields the typed Keycloak model does not
// enumerate, including custom component configs and extension attributes.
//
// # Basic Usage
//
//	p := parser.New()
//	result, err := p.Parse("ajax-realm.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Realm: %s (%d clients)\n", result.RealmName, result.Stats.ClientCount)
//
// # Functional Options
//
//	result, err := parser.ParseWithOptions(
//		parser.WithReader(os.Stdin),
//		parser.WithValidateStructure(false),
//	)
//
// Both JSON and YAML input are supported. The source format is detected from
// the file extension first and the content as a fallback, and is preserved in
// [ParseResult.SourceFormat] so that output can match the input format.
package parser

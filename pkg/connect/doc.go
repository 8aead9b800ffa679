// Package connect provides types, request builders, and helpers for working
// with the Connect media-search API.
//
// # Overview
//
// The connect package defines the request builders (Search, SearchImages,
// SearchImagesEditorial, Images, Download, Collections, Countries), the filter
// vocabularies, the response models and the error taxonomy. A concrete
// Client, which wires credentials, token refresh and transport, is provided
// by the connectsdk package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/connect/pkg/connect"
//	  "github.com/fivetwenty-io/connect/pkg/connectsdk"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := connectsdk.NewWithClientCredentials(ctx, "key", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.SearchImagesEditorial().
//	    WithPhrase("cycling").
//	    WithEditorialSegment(connect.EditorialSegments.MustParse("sport")).
//	    WithPageSize(25).
//	    Execute(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Filters
//
// Enumerated filters take a FilterValue obtained from the family's
// Vocabulary. Parse rejects anything outside the vocabulary with a
// *ValidationError, so an invalid value never reaches a request:
//
//	seg, err := connect.EditorialSegments.Parse(userInput)
//	if err != nil { return err }
//	req.WithEditorialSegment(seg)
//
// Numeric setters (page, page size) record a *ValidationError on the builder
// instead of mutating it; Err reports it and Execute returns it without any
// network activity.
//
// # Errors
//
// Execute returns one of *ConfigurationError, *AuthenticationError or
// *TransportError from the token step, *TransportError or *RequestError from
// the resource call. Use errors.As or the Is* helpers to inspect them.
// Nothing is retried automatically.
package connect

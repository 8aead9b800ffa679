// Package connectsdk provides the entry point for constructing a Connect media
// search client that implements the connect.Client interface.
//
// It resolves endpoint defaults and wires the HTTP transport, OAuth2 token
// manager, optional response cache and Prometheus collectors behind the request
// builders defined in the connect package.
//
// Quick start
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
//
//	  cli, err := connectsdk.New(ctx, &connect.Config{
//	    ClientKey:    "key",
//	    ClientSecret: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := cli.SearchImagesEditorial().
//	    WithPhrase("regatta").
//	    WithEditorialSegment(connect.EditorialSegments.MustParse("sport")).
//	    WithPageSize(10).
//	    Execute(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  for _, image := range res.Images {
//	    log.Println(image.ID, image.Title)
//	  }
//	}
//
// Grant selection
//
// A refresh token takes precedence over username and password, which take
// precedence over the client secret alone. See connect.Config.
package connectsdk

// Package ascclient provides the primary entry point for constructing an
// App Store Connect API client that implements the asc.Client interface.
//
// It layers key loading, ES256 token signing and caching, HTTP transport and
// optional Prometheus metrics on top of the resource interfaces and types
// defined in the asc package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/asc/pkg/asc"
//	  "github.com/fivetwenty-io/asc/pkg/ascclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // The .p8 file downloaded from the Keys page of App Store Connect.
//	  cli, err := ascclient.NewFromKeyFile(
//	    "57246542-96fe-1a63-e053-0824d011072a",
//	    "2X9R4HXF34",
//	    "AuthKey_2X9R4HXF34.p8",
//	  )
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with every option spelled out:
//	  cli, err = ascclient.New(&asc.Config{
//	    Issuer:      "57246542-96fe-1a63-e053-0824d011072a",
//	    KeyID:       "2X9R4HXF34",
//	    PrivateKey:  keyBytes,
//	    HTTPTimeout: 30 * time.Second,
//	  })
//
//	  profiles, err := cli.Profiles().List(ctx, asc.NewProfileQuery().
//	    WithFilterProfileState(asc.ProfileStateActive))
//	  if err != nil { log.Fatal(err) }
//	  _ = profiles
//	}
//
// Tokens are signed once at construction and re-signed transparently when
// the cached token ages out, so construction fails fast on bad key material.
package ascclient

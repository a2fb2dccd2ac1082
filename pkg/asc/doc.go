// Package asc provides types, interfaces, and helpers for working with the
// App Store Connect API.
//
// # Overview
//
// The asc package defines the resource types (App, BundleID, Certificate,
// Profile, Device, User), their query and request payloads, and the
// interfaces for resource-oriented clients. A concrete implementation is
// provided by the ascclient package, which wires key material, token
// signing, and transport:
//
//	cli, err := ascclient.New(&asc.Config{
//	  Issuer:         "57246542-96fe-1a63-e053-0824d011072a",
//	  KeyID:          "2X9R4HXF34",
//	  PrivateKeyPath: "AuthKey_2X9R4HXF34.p8",
//	})
//	if err != nil { log.Fatal(err) }
//
//	devices, err := cli.Devices().List(ctx, asc.NewDeviceQuery().
//	  WithFilterPlatform(asc.BundleIDPlatformIOS).
//	  WithLimit(200))
//
// # Queries and pagination
//
// Query structs keep their parameters in a fixed order, so identical queries
// always produce identical URLs. Collections are paged through links.next,
// which every resource client accepts through ListByURL:
//
//	all, err := asc.FetchAllPages[asc.Device](ctx, cli.Devices(), devices, nil)
//
// # Errors
//
// Every failure is one of SigningError, TransportError, DecodeError,
// ServerError or ConfigurationError, each matching its sentinel through
// errors.Is. Helpers such as IsNotFound and IsConflict branch on common
// API error cases.
package asc

// Package ontraport defines the public types, interfaces, and errors for the
// Ontraport API client.
//
// The package contains no network code of its own. It declares the Client
// interface implemented by internal/client, the Config consumed at
// construction time, the generic Response value object returned by object
// operations, and the pluggable Cache used to hold object-schema metadata.
//
// Create clients through github.com/fivetwenty-io/ontraport-client/pkg/opclient:
//
//	client, err := opclient.New(&ontraport.Config{
//		AppID:  "2_APP_ID",
//		APIKey: "API_KEY",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Objects().Create(ctx, "contact", map[string]interface{}{
//		"email":     "foo@bar.com",
//		"firstname": "Foo",
//	})
//
// Every operation that addresses an object type ("contact", "company", ...)
// resolves the type's numeric id through the schema cache before any request
// is sent. The metadata backing the cache is fetched once per cache lifetime
// from /objects/meta and can be discarded with Meta().ClearCache.
//
// Errors are one of three kinds: ErrInvalidObjectType for malformed caller
// input, ErrObjectNotFound for a schema lookup miss, and *APIError for any
// non-2xx remote response. There are no retries and no local recovery unless
// retries are explicitly enabled in Config.
package ontraport

// Package httpclient provides the authenticated HTTP client layer used by
// the game client to talk to the backend API. It builds requests against a
// fixed base URL, attaches the standard header set including the current
// authorization credential, dispatches them asynchronously, and classifies
// the outcome before any response body is decoded.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "http://murk.dev/api/",
//	})
//
//	client.Send(ctx, httpclient.NewGetRequest("user/profile"), func(o httpclient.Outcome) {
//	    if !o.Valid() {
//	        return
//	    }
//	    // decode o.Body
//	})
//
// Only GET and POST are supported; the Method type is a closed enumeration so
// an unsupported verb cannot be expressed. The authorization credential lives
// in a process-wide CredentialStore seeded from the configuration and replaced
// by a successful login.
package httpclient

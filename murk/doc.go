// Package murk provides typed bindings for the murk.dev backend API.
//
// Every operation follows the same shape: encode the payload, build and send
// the request, validate the outcome, decode the body, deliver the typed
// result to the caller-supplied handler. Login additionally installs the
// session hash returned by the backend as the credential for all subsequent
// requests.
//
//	svc := murk.NewService(client, log)
//	svc.Login(ctx, murk.LoginRequest{Email: "a@b.com", Password: "pw"},
//	    func(resp *murk.LoginResponse, err error) {
//	        ...
//	    })
package murk

// Package clientip resolves the address of the client that sent a request.
//
// Forwarding headers are spoofable, so a Resolver trusts only the headers
// it was built with. Without any it falls back to RemoteAddr.
//
//	res := clientip.New(clientip.ProxyHeaders...)
//	r.Use(res.Middleware)
package clientip

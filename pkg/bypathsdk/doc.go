// Package bypathsdk is the caller-side kit for the Bypath authentication
// service: the canonical request-hash computation, the shared request and
// response types, and a small HTTP client for the public endpoints.
//
// The signed-request scheme proves possession of a client secret without
// transmitting it. Callers hash their business parameters together with the
// secret and send the digest in the reserved "token" field:
//
//	params := map[string]string{
//		"client_key": key,
//		"user_id":    userID,
//	}
//	params["token"] = bypathsdk.SignParams(params, secret)
//
// The server recomputes the digest from the received parameters and its copy
// of the secret and compares in constant time.
package bypathsdk

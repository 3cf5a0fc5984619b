// Package binder parses HTTP request bodies into generic values.
//
// Supported content types:
//
//   - application/json and */*+json: the top-level object becomes fields.
//     Numbers are kept exact; null members are absent.
//   - application/x-www-form-urlencoded: decoded with qs bracket notation.
//   - multipart/form-data: fields decoded like urlencoded forms, file parts
//     streamed to a per-request directory and exposed as value.File.
//   - text/*: kept verbatim in Body.Text.
//
// Each kind has its own size limit (see Config). Exceeding one yields
// ErrBodyTooLarge; StatusCode maps errors to HTTP statuses.
//
//	body, err := binder.Parse(r, binder.DefaultConfig())
//	if err != nil {
//		http.Error(w, err.Error(), binder.StatusCode(err))
//		return
//	}
//	defer body.Cleanup()
//
//	avatar, _ := body.Values().Get("avatar")
//	ref, _ := avatar.AsFile()
//
// File values only come from multipart uploads. A JSON object that looks
// like a file descriptor stays a plain mapping.
package binder

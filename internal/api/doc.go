// Package api exposes payload generation over HTTP.
//
// Both generation endpoints accept a JSON body {"url": ..., "secret_key": ...}
// of at most MaxBodyBytes and always validate it. POST /v1/payload answers
// with the payload string and a PNG data URI; POST /v1/qr answers with the PNG
// itself and sets X-Auth-Payload-Length.
//
// Errors are rendered as {"error":{"code","message","details"}}:
//
//	400 bad_request               malformed JSON or missing content type
//	413 request_entity_too_large  body over MaxBodyBytes
//	413 capacity_exceeded         payload does not fit in a QR code
//	415 unsupported_media_type    content type other than application/json
//	422 validation_error          invalid url or secret_key, with field details
//	500 internal_server_error     anything else
package api

/*
Package api implements the HTTP contract with the remote anonymization
service and the typed result model it returns.

# Contract

The service exposes two endpoints:

	POST /api/v1/anonymize   {"text": string, "document_id": string|omitted}
	GET  /health

A successful anonymize response is the AnonymizeResult shape: the anonymized
text, the original-to-placeholder mapping table, the validation verdict, the
privacy-risk assessment, and workflow metadata (iterations, provider, model).

# Error Handling

Every failure surfaces as *RequestError with one user-facing message:

  - non-2xx with a parseable {"detail": ...} body: the detail verbatim
  - non-2xx otherwise: "API error: <status>"
  - transport failures (DNS, TLS, timeout): the transport error text
  - 2xx bodies that do not decode to a structurally valid result: a generic
    invalid-response message; a partially-built result is never returned

# Single Attempt

The client performs exactly one network call per invocation. Retry, backoff,
and caching policies are deliberately out of scope; the service itself runs
the iterative anonymize/validate/repair loop server-side.
*/
package api

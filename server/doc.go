// Package server exposes the closest-pair and Karatsuba cores as a small
// JSON-over-HTTP API.
//
// Routes:
//
//	POST /api/closest-pair        multipart field "file", points format
//	POST /api/karatsuba           multipart field "file", integers format
//	POST /api/generate-datasets   writes the standard suite (optional "seed")
//	POST /api/apply-algorithms    runs the batch over the dataset directory
//	GET  /api/list-files          lists the dataset files
//	POST /api/visualize-file      JSON {"filename": ...}, a bare dataset name
//	POST /api/upload-and-visualize multipart field "file", either format
//
// Every response is JSON. Failures carry {"error": "..."} with 400 for bad
// uploads, malformed datasets or names that are not dataset names, 404 for
// missing datasets, 413 for bodies above the upload cap and 500 otherwise. Traces in responses keep at most 100 steps; steps_total tells
// how many were recorded.
//
// Each request runs the cores on its own input, so handlers are safe for
// concurrent use. Routes that write into the dataset directory are
// serialized.
package server

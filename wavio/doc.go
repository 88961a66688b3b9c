// Package wavio reads and writes mono 16-bit WAV files for the
// preprocessing tooling.
//
// The preprocessing core operates on in-memory sample buffers; wavio is the
// thin ingest/export layer the command-line examples use to get capture
// buffers in and preprocessed audio out. Only mono 16-bit PCM is accepted,
// matching the core's mono-only contract.
package wavio

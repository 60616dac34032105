// Package utils provides shared low-level helpers used throughout the
// bedrockgo internals. It covers the SigV4-signed HTTP round trip against
// the Bedrock runtime endpoint, generic pointer and string utilities, and a
// simple elapsed-time timer.
//
// Key entry points: [DoPostSigned] for signed JSON round-trips, [Ptr] for
// converting values to pointers, and [Timer] for measuring latency.
package utils

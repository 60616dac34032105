// Package content prepares source documents for use as prompt context with
// Bedrock text models: HTML-to-Markdown conversion and simple size clamping.
package content

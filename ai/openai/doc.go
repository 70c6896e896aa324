// Package openai implements the ai service interfaces against
// OpenAI-compatible HTTP APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// The embedder and generator share a single ai.Config; hosts are normalized
// to end in /v1 as required by the OpenAI wire protocol.
package openai

// Package respond produces the natural-language answer for a staffing
// query. A configured generative model gets one attempt; on any failure the
// deterministic template takes over, so callers always receive usable text.
package respond

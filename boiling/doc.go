// Package boiling provides heat transfer coefficient and critical heat flux
// correlations for nucleate pool boiling, flow boiling in tubes, and boiling
// in plate exchangers. The pool boiling correlations accept either an excess
// wall temperature or a heat flux; dispatchers select among them by method
// name or by which inputs are available.
package boiling

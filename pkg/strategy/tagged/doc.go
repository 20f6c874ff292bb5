// Package tagged reports file-read failures through a closed set of error
// variants.
//
// Every failure maps to exactly one of IoFailure, InvalidHeader or Wrapped.
// Consumers dispatch with Match, whose Handler interface has one method per
// variant: adding a variant stops every handler from compiling until it is
// updated. The price is that each new failure source means extending the set
// and revisiting every handler.
package tagged

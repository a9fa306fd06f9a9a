// Package likelihood ships ready-made likelihood oracles for common
// segmentation tasks.
//
// An oracle here is a pure function of the segment's data and safe for
// concurrent evaluation, as required by the engines. Custom oracles
// are first-class: anything satisfying model.Oracle works the same.
package likelihood

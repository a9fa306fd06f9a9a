// Package model defines the shared data types of the seggo
// segmentation engine: segments, segmentations, results, and the
// likelihood oracle capability.
//
// The data matrix itself is any gonum mat.Matrix with rows as
// observation channels and columns as ordered positions. All public
// positions are 1-based and inclusive, matching how segmentation
// results are usually reported.
package model

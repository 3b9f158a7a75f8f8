// Package kernel holds the primitives shared by every aggregate of the order desk:
// the UUID identifier value object and the Clock used to stamp lifecycle transitions.
package kernel

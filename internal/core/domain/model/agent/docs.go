// Package agent models the delivery agents a vendor can hand a ready order to.
package agent

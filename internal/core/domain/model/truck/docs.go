// Package truck implements the Truck Registry: the trucks registered by truckers and
// their availability.
//
// A truck moves Standby -> Reserved -> Loaded -> InTransit -> Standby following the
// load it carries. The Standby status and an empty occupying bid always go together,
// which is what makes the "one truck, one active assignment" rule checkable with a
// single status read.
package truck

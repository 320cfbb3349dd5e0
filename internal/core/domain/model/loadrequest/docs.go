// Package loadrequest implements the Load Request Store domain: the client's freight
// request, its route and cargo, and the status machine
//
//	Open -> Accepted -> Loaded -> InTransit -> Delivered
//
// A LoadRequest records a kernel.Event for every status it enters; the unit of work
// copies those events into the notification outbox.
package loadrequest

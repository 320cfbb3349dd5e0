// Package bid implements the Bid Ledger domain: trucker bids on load requests and the
// per-trucker rejections that hide a load from one trucker.
//
// Bids are never deleted. A losing bid ends as Superseded, a withdrawn one as Rejected,
// so the full negotiation of a load stays auditable.
package bid

// Package services contains the domain services that coordinate several aggregates:
//   - LifecycleCoordinator: accepts a bid and advances a load with its bid and trucks
//   - BidAdmission: the Bid Ledger rules a new bid must pass
//   - RatingPolicy: who may rate whom, and when
//
// The services are stateless and never touch storage. Callers load the aggregates
// (locking them where needed), call the service and persist the result.
package services

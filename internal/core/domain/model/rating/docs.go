// Package rating implements the Rating Service domain: post-delivery feedback between
// the client and the trucker of a load.
package rating
